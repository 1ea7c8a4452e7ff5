package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// UserProfile is the account document, one per authenticated principal.
// Role starts as CUSTOMER and is only ever changed by the elevation flow.
type UserProfile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	Role         UserRole           `bson:"role" json:"role"`
	ElevatedAt   *time.Time         `bson:"elevatedAt,omitempty" json:"elevatedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
