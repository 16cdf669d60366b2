package entity

import "time"

// ArtisanStory is a narrative post on an artisan's public profile,
// written only by the owning artisan.
type ArtisanStory struct {
	ID        string
	ArtisanID string
	Title     string
	Content   string
	ImageRef  string
	CreatedAt time.Time
}
