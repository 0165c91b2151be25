package model

import (
	"time"

	"gorm.io/gorm"
)

/*

Experience is a data model for one entry of a user's job history

UserId: owner of this entry, "belongs-to" relation
Title: job title, free text. Current titles are matched by substring when
composing the "same field" feed tier
IsCurrent: whether this is the user's present occupation. A user is expected
to have at most one current entry; if more exist the most recently started
one wins

*/

type Experience struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt
	UserId    string `gorm:"index"`
	Title     string
	Company   string
	IsCurrent bool `gorm:"index"`
	StartedAt time.Time
	EndedAt   *time.Time
}
