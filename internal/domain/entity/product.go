package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationStatus is the consultant's cultural-authenticity attestation,
// independent of admin approval.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// Valid reports whether s is one of the known verification states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// Product is an artisan listing. It becomes publicly visible once an admin
// approves it, and stays visible unless a consultant rejects its
// verification. Admin rejection deletes the row outright.
type Product struct {
	ID          string
	ArtisanID   string // references a User with RoleArtisan
	Name        string
	Description string
	Price       decimal.Decimal // non-negative
	ImageRef    string          // media path relative to the upload dir
	IsApproved  bool
	CreatedAt   time.Time

	// Cultural provenance captured at upload.
	Region        string
	CulturalStory string
	CraftProcess  string
	ImpactScore   int // artisan empowerment score, 0-100

	// Consultant attestation.
	VerificationStatus VerificationStatus
	VerifiedBy         *string // consultant user ID, nil until reviewed
	VerificationNote   string
	VerifiedAt         *time.Time
}

// PubliclyVisible reports whether the product may appear in the public
// catalog: approved by an admin and not verification-rejected.
func (p *Product) PubliclyVisible() bool {
	return p.IsApproved && p.VerificationStatus != VerificationRejected
}
