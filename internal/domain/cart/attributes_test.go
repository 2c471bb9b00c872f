package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	t.Run("equality ignores insertion order", func(t *testing.T) {
		a := Attributes{{Name: "size", Value: "M"}, {Name: "color", Value: "red"}}
		b := NewAttributes(map[string]string{"color": "red", "size": "M"})
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("different values are not equal", func(t *testing.T) {
		a := NewAttributes(map[string]string{"size": "M"})
		b := NewAttributes(map[string]string{"size": "L"})
		assert.False(t, a.Equal(b))
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("nil and empty are equal", func(t *testing.T) {
		assert.True(t, Attributes(nil).Equal(NewAttributes(map[string]string{})))
		assert.Equal(t, "", Attributes(nil).Key())
	})

	t.Run("blank names dropped and values trimmed", func(t *testing.T) {
		a := NewAttributes(map[string]string{" ": "x", " size ": " M "})
		assert.Equal(t, 1, a.Len())
		v, ok := a.Get("size")
		assert.True(t, ok)
		assert.Equal(t, "M", v)
	})

	t.Run("separators in values do not collide", func(t *testing.T) {
		a := NewAttributes(map[string]string{"a": "1;b=2"})
		b := NewAttributes(map[string]string{"a": "1", "b": "2"})
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("map round trip", func(t *testing.T) {
		m := map[string]string{"size": "M", "color": "red"}
		assert.Equal(t, m, NewAttributes(m).Map())
		assert.Nil(t, Attributes(nil).Map())
	})
}

func TestGuestOwnerID(t *testing.T) {
	id := GuestOwnerID(uuid.New())
	assert.True(t, IsGuestOwner(id))
	assert.False(t, IsGuestOwner("3f1c"))
}
