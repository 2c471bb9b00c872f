package cart

import (
	"strings"

	"github.com/google/uuid"
)

// GuestPrefix marks carts owned by anonymous visitors.
const GuestPrefix = "guest:"

// GuestOwnerID returns the cart owner key for a guest session id.
func GuestOwnerID(guestID uuid.UUID) string {
	return GuestPrefix + guestID.String()
}

// IsGuestOwner reports whether ownerID belongs to a guest cart.
func IsGuestOwner(ownerID string) bool {
	return strings.HasPrefix(ownerID, GuestPrefix)
}
