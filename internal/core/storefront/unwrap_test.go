package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID string `json:"id"`
}

// TestUnwrapList_BareArray verifies a top-level JSON array decodes directly.
func TestUnwrapList_BareArray(t *testing.T) {
	var out []item
	err := UnwrapList([]byte(`[{"id":"a"},{"id":"b"}]`), &out)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
}

// TestUnwrapList_DataEnvelope verifies the {"data": [...]} envelope shape.
func TestUnwrapList_DataEnvelope(t *testing.T) {
	var out []item
	err := UnwrapList([]byte(`{"data":[{"id":"a"}]}`), &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

// TestUnwrapList_OrdersEnvelope verifies the {"orders": [...]} envelope shape.
func TestUnwrapList_OrdersEnvelope(t *testing.T) {
	var out []item
	err := UnwrapList([]byte(`{"orders":[{"id":"x"}]}`), &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "x", out[0].ID)
}

// TestUnwrapList_DataWinsOverOrders verifies envelope key precedence.
func TestUnwrapList_DataWinsOverOrders(t *testing.T) {
	var out []item
	err := UnwrapList([]byte(`{"orders":[{"id":"o"}],"data":[{"id":"d"}]}`), &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "d", out[0].ID)
}

// TestUnwrapList_UnknownShape verifies unrecognized envelopes yield an empty list.
func TestUnwrapList_UnknownShape(t *testing.T) {
	var out []item
	err := UnwrapList([]byte(`{"results":[{"id":"a"}]}`), &out)

	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestUnwrapList_EmptyAndNull verifies empty and null payloads are no-ops.
func TestUnwrapList_EmptyAndNull(t *testing.T) {
	var out []item
	require.NoError(t, UnwrapList(nil, &out))
	assert.Nil(t, out)

	require.NoError(t, UnwrapList([]byte(`null`), &out))
	assert.Nil(t, out)
}

// TestUnwrapList_Garbage verifies malformed JSON surfaces an error.
func TestUnwrapList_Garbage(t *testing.T) {
	var out []item
	err := UnwrapList([]byte(`{{not json`), &out)
	assert.Error(t, err)
}
