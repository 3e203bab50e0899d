package grpcerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/payment"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{nil, codes.OK},
		{fmt.Errorf("get product 9: %w", catalog.ErrProductNotFound), codes.NotFound},
		{catalog.ErrCategoryNotFound, codes.NotFound},
		{cart.ErrEmptyCart, codes.FailedPrecondition},
		{fmt.Errorf("%w: completed", payment.ErrPaymentSettled), codes.FailedPrecondition},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{status.Error(codes.ResourceExhausted, "slow"), codes.ResourceExhausted},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), "%v", tt.err)
	}
}

func TestStatus_HidesInternal(t *testing.T) {
	s, _ := status.FromError(Status(errors.New("dial tcp 10.0.0.1: refused")))
	assert.Equal(t, codes.Internal, s.Code())
	assert.Equal(t, "internal error", s.Message())

	s, _ = status.FromError(Status(catalog.ErrProductNotFound))
	assert.Equal(t, catalog.ErrProductNotFound.Error(), s.Message())

	assert.NoError(t, Status(nil))
}
