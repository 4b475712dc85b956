package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	YoutubeHandle *string    `json:"youtubeHandle"`
	Picked        bool       `json:"picked"`
	PickedAt      *time.Time `json:"pickedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Eligible reports whether the user can be drawn by a random pick.
func (u *User) Eligible() bool {
	return u.YoutubeHandle != nil && *u.YoutubeHandle != ""
}

// Profile is the user-editable part of a User. Nil fields are left unchanged
// when an existing record is updated, unless the matching Clear flag is set.
type Profile struct {
	Name          string
	Phone         *string
	YoutubeHandle *string

	ClearPhone         bool
	ClearYoutubeHandle bool
}
