// Package pagination pages already ordered in-memory lists with opaque
// cursors.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 5
	MaxLimit     = 100
)

var (
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrCursorNotFound means the cursor names an item that is not in the
	// list.
	ErrCursorNotFound = errors.New("cursor does not match any item")
)

// Cursor marks the last item of the previous page.
type Cursor struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"ts"`
}

// Encode returns the cursor as unpadded URL-safe base64 JSON.
func (c Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses an encoded cursor. An empty string means the first
// page and yields nil.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if c.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidCursor)
	}
	return &c, nil
}

// NormalizeLimit clamps limit to (0, MaxLimit], using DefaultLimit for
// non-positive values.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Page returns up to limit items that follow cursor in an already ordered
// slice, plus the cursor for the next page when more items remain.
func Page[T any](items []T, key func(T) Cursor, cursor *Cursor, limit int) ([]T, *Cursor, error) {
	limit = NormalizeLimit(limit)

	start := 0
	if cursor != nil {
		start = -1
		for i, it := range items {
			if key(it).ID == cursor.ID {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, nil, ErrCursorNotFound
		}
	}

	end := start + limit
	if end >= len(items) {
		return items[start:], nil, nil
	}
	next := key(items[end-1])
	return items[start:end], &next, nil
}
