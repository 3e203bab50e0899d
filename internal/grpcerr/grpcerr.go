// Package grpcerr maps domain errors onto gRPC status codes.
package grpcerr

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-storefront-service/internal/assistant"
	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/payment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var mapping = []struct {
	target error
	code   codes.Code
}{
	{catalog.ErrProductNotFound, codes.NotFound},
	{catalog.ErrCategoryNotFound, codes.NotFound},
	{payment.ErrPaymentNotFound, codes.NotFound},
	{payment.ErrPaymentSettled, codes.FailedPrecondition},
	{cart.ErrEmptyCart, codes.FailedPrecondition},
	{assistant.ErrEmptyMessage, codes.InvalidArgument},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// Code returns the status code for err, codes.Internal when nothing matches.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	for _, m := range mapping {
		if errors.Is(err, m.target) {
			return m.code
		}
	}
	return codes.Internal
}

// Status converts err to a status error. Internal errors hide their detail.
func Status(err error) error {
	if err == nil {
		return nil
	}
	code := Code(err)
	if code == codes.Internal {
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
