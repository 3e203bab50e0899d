package order

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/google/uuid"
)

const EventTypeOrderPlaced = "OrderPlaced"

type OrderPlacedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID        string             `json:"id"`
	SessionID string             `json:"session_id"`
	PromoCode string             `json:"promo_code,omitempty"`
	Items     []OrderItemPayload `json:"items"`
	Totals    OrderTotals        `json:"totals"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
}

type OrderTotals struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// NewOrderPlaced builds the event for a settled order. Amounts keep full precision.
func NewOrderPlaced(orderID, sessionID string, q pricing.Quote, at time.Time) OrderPlacedEvent {
	items := make([]OrderItemPayload, 0, len(q.Lines))
	for _, l := range q.Lines {
		items = append(items, OrderItemPayload{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Amount:    l.Amount.String(),
		})
	}

	return OrderPlacedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderPlaced,
		Payload: OrderPayload{
			ID:        orderID,
			SessionID: sessionID,
			PromoCode: q.PromoCode,
			Items:     items,
			Totals: OrderTotals{
				Subtotal: q.Subtotal.String(),
				Discount: q.DiscountAmount.String(),
				Shipping: q.Shipping.String(),
				Tax:      q.Tax.String(),
				Total:    q.Total.String(),
			},
		},
		Timestamp: at.UTC(),
	}
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
	Close() error
}
