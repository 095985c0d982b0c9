package main

import (
	"time"

	"github.com/casualjim/hoot/pkg/uuidx"
	"github.com/go-openapi/strfmt"
)

// OrderEvent is implemented by every order message, so a single handler can follow them all.
type OrderEvent interface {
	OrderID() strfmt.UUID
}

type OrderPlaced struct {
	ID       strfmt.UUID     `json:"id"`
	Customer string          `json:"customer"`
	Items    int             `json:"items"`
	PlacedAt strfmt.DateTime `json:"placed_at"`
}

func (o OrderPlaced) OrderID() strfmt.UUID { return o.ID }

type OrderCancelled struct {
	ID          strfmt.UUID     `json:"id"`
	Reason      string          `json:"reason"`
	CancelledAt strfmt.DateTime `json:"cancelled_at"`
}

func (o OrderCancelled) OrderID() strfmt.UUID { return o.ID }

// ShipmentRequested is returned by the warehouse and routed through the result hook.
type ShipmentRequested struct {
	OrderID     strfmt.UUID     `json:"order_id"`
	Parcels     int             `json:"parcels"`
	RequestedAt strfmt.DateTime `json:"requested_at"`
}

// StockChecked is published on the UI loop once an order has been looked at.
type StockChecked struct {
	OrderID   strfmt.UUID `json:"order_id"`
	Available bool        `json:"available"`
}

func newOrderID() strfmt.UUID {
	return strfmt.UUID(uuidx.NewString())
}

func now() strfmt.DateTime {
	return strfmt.DateTime(time.Now().UTC())
}
