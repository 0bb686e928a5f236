package cart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLines(t *testing.T) {
	records := []Line{
		{ProductID: "a", Name: "A", UnitPrice: 10, Quantity: 2, StockCeiling: 5},
		{ProductID: "", Name: "no id", UnitPrice: 10, Quantity: 1, StockCeiling: 5},
		{ProductID: "b", Name: "B", UnitPrice: 5, Quantity: 0, StockCeiling: 5},
		{ProductID: "c", Name: "C", UnitPrice: 5, Quantity: 6, StockCeiling: 5},
		{ProductID: "a", Name: "A again", UnitPrice: 10, Quantity: 1, StockCeiling: 5},
		{ProductID: "d", Name: "D", UnitPrice: -1, Quantity: 1, StockCeiling: 5},
		{ProductID: "e", Name: "E", UnitPrice: 3, Quantity: 1, StockCeiling: 1},
	}

	c, err := FromLines(records)

	require.NotNil(t, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedState)

	var ids []string
	for _, l := range c.Lines() {
		ids = append(ids, l.ProductID)
	}
	assert.Equal(t, []string{"a", "e"}, ids)

	var mse *MalformedStateError
	require.True(t, errors.As(err, &mse))
	assert.Equal(t, "line", mse.Piece)
	assert.Equal(t, 1, mse.Index)
}

func TestFromLines_ValidRecordsRoundTrip(t *testing.T) {
	c := New()
	_, _ = c.Add("a", snap("a", 20), 3)
	_, _ = c.Add("b", snap("b", 5), 9)
	_, _ = c.UpdateQuantity("b", 4, 9)

	restored, err := FromLines(c.Records())

	require.NoError(t, err)
	assert.Equal(t, c.Lines(), restored.Lines())
	assert.Equal(t, c.Totals(DefaultPricing()), restored.Totals(DefaultPricing()))
}

func TestDecodeLinesJSON(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "valid array",
			raw:       `[{"productId":"a","name":"A","unitPrice":1.5,"quantity":1,"stockCeiling":2}]`,
			wantCount: 1,
		},
		{
			name:      "bad element is skipped",
			raw:       `[{"productId":"a","quantity":1,"stockCeiling":2},{"productId":7},"oops"]`,
			wantCount: 1,
			wantErr:   true,
		},
		{
			name:    "not an array",
			raw:     `{"productId":"a"}`,
			wantErr: true,
		},
		{
			name: "null",
			raw:  `null`,
		},
		{
			name: "empty",
			raw:  ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := DecodeLinesJSON(json.RawMessage(tt.raw))

			assert.Len(t, lines, tt.wantCount)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMalformedStateError_Message(t *testing.T) {
	indexed := &MalformedStateError{Piece: "line", Index: 2, Err: errors.New("bad")}
	assert.Equal(t, "malformed line record 2: bad", indexed.Error())

	piece := Malformed("shipping", errors.New("bad"))
	assert.Equal(t, "malformed shipping: bad", piece.Error())
	assert.ErrorIs(t, piece, ErrMalformedState)
}
