package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ecommerce/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSnapshot_JSONLayout(t *testing.T) {
	pid := uuid.MustParse("7b0f5b1c-2c1d-4a53-9d6f-1f2c3d4e5f60")
	c := &cart.Cart{
		UserID: "u1",
		Items: []cart.CartItem{{
			ProductID: pid,
			Price:     decimal.RequireFromString("12.50"),
			Quantity:  2,
		}},
		LastModified: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(NewCartSnapshot(c))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"schema_version": 1,
		"user_id": "u1",
		"items": [{"product_id": "7b0f5b1c-2c1d-4a53-9d6f-1f2c3d4e5f60", "price": "12.5", "quantity": 2}],
		"last_modified": "2026-01-02T03:04:05Z"
	}`, string(data))
}

func TestCartSnapshot_Tolerance(t *testing.T) {
	pid := uuid.New()

	t.Run("ignores unknown fields and accepts numeric prices", func(t *testing.T) {
		payload := `{"user_id":"u1","coupon":"X","items":[{"product_id":"` + pid.String() + `","price":9.99,"quantity":3,"gift_wrap":true}]}`

		var s CartSnapshot
		require.NoError(t, json.Unmarshal([]byte(payload), &s))
		c := s.ToDomain("u1")

		require.Len(t, c.Items, 1)
		assert.True(t, decimal.RequireFromString("9.99").Equal(c.Items[0].Price))
		assert.Equal(t, 3, c.Items[0].Quantity)
		assert.Equal(t, 0, s.SchemaVersion)
	})

	t.Run("drops malformed lines", func(t *testing.T) {
		s := CartSnapshot{Items: []CartItemSnapshot{
			{ProductID: pid, Quantity: 0, Price: decimal.NewFromInt(1)},
			{ProductID: uuid.Nil, Quantity: 2, Price: decimal.NewFromInt(1)},
			{ProductID: pid, Quantity: -4, Price: decimal.NewFromInt(1)},
		}}
		c := s.ToDomain("u1")
		assert.Equal(t, "u1", c.UserID)
		assert.True(t, c.IsEmpty())
	})

	t.Run("folds duplicate lines", func(t *testing.T) {
		s := CartSnapshot{UserID: "u1", Items: []CartItemSnapshot{
			{ProductID: pid, Quantity: 1, Attributes: map[string]string{"size": "M"}},
			{ProductID: pid, Quantity: 2, Attributes: map[string]string{"size": "M"}},
		}}
		c := s.ToDomain("u1")
		require.Len(t, c.Items, 1)
		assert.Equal(t, 3, c.Items[0].Quantity)
	})
}

func TestCartSnapshot_RoundTripKeepsAttributes(t *testing.T) {
	pid := uuid.New()
	c, err := cart.NewCart("u1")
	require.NoError(t, err)
	attrs := cart.NewAttributes(map[string]string{"size": "M", "color": "red"})
	require.NoError(t, c.AddItem(pid, attrs, 1, cart.Snapshot{Name: "Tee", Price: decimal.NewFromInt(5)}))

	data, err := json.Marshal(NewCartSnapshot(c))
	require.NoError(t, err)

	var s CartSnapshot
	require.NoError(t, json.Unmarshal(data, &s))
	restored := s.ToDomain("")

	require.NotNil(t, restored.FindItem(pid, attrs))
	assert.Equal(t, "Tee", restored.Items[0].ProductName)
}
