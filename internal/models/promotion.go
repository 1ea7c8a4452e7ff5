package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PromotionType string

const (
	PromotionPercent PromotionType = "PERCENT"
	PromotionFixed   PromotionType = "FIXED"
)

type PromotionTarget string

const (
	TargetStore    PromotionTarget = "STORE"
	TargetCategory PromotionTarget = "CATEGORY"
	TargetProduct  PromotionTarget = "PRODUCT"
)

type Promotion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code        string             `bson:"code" json:"code"`
	Description string             `bson:"description" json:"description"`
	Type        PromotionType      `bson:"type" json:"type"`
	Value       float64            `bson:"value" json:"value"`
	TargetType  PromotionTarget    `bson:"targetType" json:"targetType"`
	TargetID    string             `bson:"targetId,omitempty" json:"targetId,omitempty"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     time.Time          `bson:"endDate" json:"endDate"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ActiveAt reports whether the promotion's date window covers t. A zero
// start or end date leaves that side of the window open.
func (p Promotion) ActiveAt(t time.Time) bool {
	if !p.StartDate.IsZero() && t.Before(p.StartDate) {
		return false
	}
	if !p.EndDate.IsZero() && t.After(p.EndDate) {
		return false
	}
	return true
}
