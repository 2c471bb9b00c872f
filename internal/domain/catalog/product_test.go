package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProduct_IsActive(t *testing.T) {
	assert.True(t, (&Product{Status: ProductStatusActive}).IsActive())
	assert.True(t, (&Product{}).IsActive())
	assert.False(t, (&Product{Status: ProductStatusDiscontinued}).IsActive())
}

func TestProduct_HasStock(t *testing.T) {
	p := &Product{Stock: 3}
	assert.True(t, p.HasStock(3))
	assert.False(t, p.HasStock(4))
}

func TestIndexByID(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	index := IndexByID([]Product{{ID: a, Name: "a"}, {ID: b, Name: "b"}})
	assert.Len(t, index, 2)
	assert.Equal(t, "b", index[b].Name)
}
