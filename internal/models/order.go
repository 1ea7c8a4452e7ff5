package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPendingPayment      OrderStatus = "PENDING_PAYMENT"
	StatusPendingVerification OrderStatus = "PENDING_VERIFICATION"
	StatusProcessing          OrderStatus = "PROCESSING"
	StatusShipped             OrderStatus = "SHIPPED"
	StatusDelivered           OrderStatus = "DELIVERED"
	StatusCancelled           OrderStatus = "CANCELLED"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPendingPayment:      true,
	StatusPendingVerification: true,
	StatusProcessing:          true,
	StatusShipped:             true,
	StatusDelivered:           true,
	StatusCancelled:           true,
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	if !orderStatuses[status] {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return status, nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo implements the staff transition policy: a terminal order
// never moves again; any non-terminal order may be set to any other status,
// including CANCELLED. Forward-only ordering is deliberately not enforced.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if !orderStatuses[next] {
		return false
	}
	return next != s
}

// OrderItem is a frozen snapshot of one cart line, priced at order time.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	VariantID string  `bson:"variantId" json:"variantId"`
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is the persisted order document. Items are a snapshot of the cart at
// checkout, never a live reference. After creation only status changes.
type Order struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            string             `bson:"userId" json:"userId"`
	Items             []OrderItem        `bson:"items" json:"items"`
	Subtotal          float64            `bson:"subtotal" json:"subtotal"`
	Discount          float64            `bson:"discount" json:"discount"`
	TotalAmount       float64            `bson:"totalAmount" json:"totalAmount"`
	PromoCode         string             `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	Status            OrderStatus        `bson:"status" json:"status"`
	MomoTransactionID string             `bson:"momoTransactionId,omitempty" json:"momoTransactionId,omitempty"`
	CustomerName      string             `bson:"customerName" json:"customerName"`
	CustomerPhone     string             `bson:"customerPhone" json:"customerPhone"`
	DeliveryAddress   string             `bson:"deliveryAddress" json:"deliveryAddress"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// GuestUserID marks orders placed without an account.
const GuestUserID = "guest"
