package dto

import "github.com/fekuna/omnipos-storefront-service/internal/model"

type CartLine struct {
	Product  model.Product
	Quantity int
}

type CartView struct {
	SessionID  string
	Lines      []CartLine
	TotalUnits int
}
