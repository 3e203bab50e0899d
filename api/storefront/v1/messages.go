package storefrontv1

import "time"

// Catalog

type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           string  `json:"price"`
	OriginalPrice   string  `json:"original_price,omitempty"`
	DiscountPercent int64   `json:"discount_percent,omitempty"`
	Category        string  `json:"category"`
	Rating          float64 `json:"rating"`
	ReviewCount     int32   `json:"review_count"`
	IsOnSale        bool    `json:"is_on_sale"`
	IsBestSeller    bool    `json:"is_best_seller"`
	ImageURL        string  `json:"image_url,omitempty"`
}

type Category struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProductCount int32  `json:"product_count"`
}

type ListProductsRequest struct {
	Category string `json:"category"`
	SortBy   string `json:"sort_by"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
	Total    int32      `json:"total"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

// Cart

type CartLine struct {
	Product   *Product `json:"product"`
	Quantity  int32    `json:"quantity"`
	LineTotal string   `json:"line_total"`
}

type CartResponse struct {
	SessionID  string      `json:"session_id"`
	Lines      []*CartLine `json:"lines"`
	TotalUnits int32       `json:"total_units"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type AddItemsRequest struct {
	ProductIDs []string `json:"product_ids"`
}

type SetQuantityRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type RemoveItemRequest struct {
	ProductID string `json:"product_id"`
}

type QuoteRequest struct {
	PromoCode string `json:"promo_code"`
}

type QuoteLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int32  `json:"quantity"`
	Amount    string `json:"amount"`
}

// Totals holds amounts either exact or fixed to two decimals.
type Totals struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type QuoteResponse struct {
	Lines        []*QuoteLine `json:"lines"`
	PromoCode    string       `json:"promo_code,omitempty"`
	DiscountRate string       `json:"discount_rate"`
	FreeShipping bool         `json:"free_shipping"`
	Exact        *Totals      `json:"exact"`
	Display      *Totals      `json:"display"`

	// AmountToFreeShipping is fixed to two decimals, "0.00" when shipping is free.
	AmountToFreeShipping string `json:"amount_to_free_shipping"`
}

// Wishlist

type WishlistItemRequest struct {
	ProductID string `json:"product_id"`
}

type WishlistResponse struct {
	SessionID string     `json:"session_id"`
	Products  []*Product `json:"products"`
	Count     int32      `json:"count"`
}

// Payment

type StartPaymentRequest struct {
	PromoCode string `json:"promo_code"`
}

type PaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

type PaymentResponse struct {
	PaymentID   string     `json:"payment_id"`
	Status      string     `json:"status"`
	OrderNumber string     `json:"order_number,omitempty"`
	Total       string     `json:"total"`
	SecondsLeft int64      `json:"seconds_left"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
}

// Assistant

type SendMessageRequest struct {
	Text string `json:"text"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Topic     string    `json:"topic"`
	FromBot   bool      `json:"from_bot"`
	Timestamp time.Time `json:"timestamp"`
}
