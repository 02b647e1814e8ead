package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is the self-reported gender of a user.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// MembershipStatus represents the standing of a user's membership.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "Active"
	MembershipInactive  MembershipStatus = "Inactive"
	MembershipSuspended MembershipStatus = "Suspended"
)

// User represents a registered identity. Users are created through signup
// only; there is no update or delete path for identities.
type User struct {
	ID               uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string           `json:"name" gorm:"size:255;not null"`
	// Binary collation keeps email lookups and the unique index
	// case-sensitive, matching exact-match duplicate detection.
	Email            string           `json:"email" gorm:"type:varchar(255) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	PasswordHash     string           `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	PhoneNumber      string           `json:"phone_number" gorm:"size:32;not null"`
	Gender           Gender           `json:"gender" gorm:"type:varchar(10);not null"`
	DateOfBirth      time.Time        `json:"date_of_birth" gorm:"not null"`
	MembershipStatus MembershipStatus `json:"membership_status" gorm:"type:varchar(10);not null"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
