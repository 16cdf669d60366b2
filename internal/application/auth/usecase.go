package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// hasher abstracts password hashing so the login path is testable.
type hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// UseCase registration and login.
type UseCase struct {
	users repository.UserRepository
	h     hasher
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users, h: bcryptHasher{}}
}

// Register creates an account: checks email uniqueness case-insensitively,
// bcrypt-hashes the password and persists. The role must be one of the
// publicly registrable roles; ADMIN accounts come only from cmd/seed.
// Returns domain.ErrEmailTaken on a duplicate email.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterForm) (*entity.User, error) {
	role := entity.Role(in.Role)
	if !role.Valid() || role == entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	taken, err := uc.users.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}
	hash, err := uc.h.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		IsStaff:      false,
		DateJoined:   time.Now(),
	}
	// The unique index still backstops a concurrent duplicate registration.
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate maps (email, password) to an identity. All failure modes
// collapse into domain.ErrInvalidCredentials so the response never reveals
// whether the email exists or the account is disabled.
//
// TODO: lookup here is case-sensitive while registration dedupes emails
// case-insensitively; align the two once product decides which way.
func (uc *UseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Hash the supplied password anyway so the unknown-email path costs
		// the same as a real comparison (timing equalization).
		_, _ = uc.h.Hash(password)
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.h.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
