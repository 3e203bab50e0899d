package dto

import "github.com/fekuna/omnipos-storefront-service/internal/model"

type WishlistView struct {
	SessionID string
	Products  []model.Product
}

func (v *WishlistView) Contains(productID string) bool {
	for _, p := range v.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}
