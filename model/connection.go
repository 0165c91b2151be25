package model

import (
	"time"

	"gorm.io/gorm"
)

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

/*

Connection is a data model for a social edge between two users

RequesterId: user who sent the connection request
RecipientId: user who received it
Status: lifecycle state, only ACCEPTED edges participate in feed composition

The edge is undirected once accepted; requester/recipient only record who
initiated it. Created and mutated by the connection-request collaborator,
read-only in this service.

*/

type Connection struct {
	Id          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	RequesterId string           `gorm:"index"`
	RecipientId string           `gorm:"index"`
	Status      ConnectionStatus `gorm:"index;default:'PENDING'"`
}

// CounterpartId returns the id on the other end of the edge from the given
// user. Returns empty string if the user is on neither end.
func (c Connection) CounterpartId(userId string) string {
	if c.RequesterId == userId {
		return c.RecipientId
	}
	if c.RecipientId == userId {
		return c.RequesterId
	}
	return ""
}
