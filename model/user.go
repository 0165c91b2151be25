package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

/*

User is a data model for a careernet member

Id: primary key, use to identify a user
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

FirstName/LastName: legal name, display name is derived from both
Headline: short free-text line shown under the name
AvatarUrl: user's profile image URL
Industry: free-text industry tag, may be empty
Email: unique login identifier, managed by the auth collaborator

*/

type User struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt
	FirstName string
	LastName  string
	Headline  string
	AvatarUrl string
	Industry  string `gorm:"index"`
	Email     string `gorm:"uniqueIndex"`
}

// DisplayName joins first and last name, tolerating either being empty.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
