package storefrontv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_PlainMessages(t *testing.T) {
	var c Codec

	data, err := c.Marshal(&SetQuantityRequest{ProductID: "2", Quantity: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_id":"2","quantity":3}`, string(data))

	var got SetQuantityRequest
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, SetQuantityRequest{ProductID: "2", Quantity: 3}, got)

	// an empty frame decodes to the zero value
	var empty QuoteRequest
	require.NoError(t, c.Unmarshal(nil, &empty))
	assert.Equal(t, QuoteRequest{}, empty)

	assert.Error(t, c.Unmarshal([]byte("{"), &got))
}

func TestCodec_ProtoMessages(t *testing.T) {
	var c Codec

	data, err := c.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))

	data, err = c.Marshal(wrapperspb.String("student10"))
	require.NoError(t, err)
	assert.JSONEq(t, `"student10"`, string(data))

	got := &wrapperspb.StringValue{}
	require.NoError(t, c.Unmarshal(data, got))
	assert.Equal(t, "student10", got.GetValue())

	// unknown fields are tolerated
	require.NoError(t, c.Unmarshal([]byte(`{"extra":1}`), &emptypb.Empty{}))
}
