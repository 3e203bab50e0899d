package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Repository supplies the ordered product list. The catalog treats it as read-only.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
}
