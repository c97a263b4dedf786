package user

import "time"

// User mirrors a profile held by the external identity provider. The ID is
// the provider-issued identifier, never generated locally, and the row is
// written exactly once per verified "user.created" notification.
type User struct {
	ID           string    `gorm:"primary_key;type:varchar(64)"`
	Email        string    `gorm:"not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	ProfileImage *string   `gorm:"type:varchar(512)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
