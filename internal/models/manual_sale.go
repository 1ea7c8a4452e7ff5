package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ManualSale records an offline sale entered by staff so that dashboard
// revenue reflects business done outside the storefront.
type ManualSale struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	RecordedBy  string             `bson:"recordedBy" json:"recordedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
