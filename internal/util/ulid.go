package util

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string for the given instant.
// ulid.DefaultEntropy is monotonic and safe for concurrent use, so IDs minted
// within the same millisecond still sort in creation order.
func NewULID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
