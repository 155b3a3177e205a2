// Package codec centralizes the conversion between UUID text and the canonical
// 16-byte binary encoding.
//
// The binary form is the RFC4122 byte order (big-endian). Text is parsed
// case-insensitively and always formatted lowercase and hyphenated.
package codec

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Size is the length in bytes of the canonical binary encoding.
const Size = 16

// TextSize is the length of the canonical hyphenated text form.
const TextSize = 36

var (
	// ErrInvalidText is returned when a string is not a syntactically valid UUID.
	ErrInvalidText = errors.New("invalid UUID text")

	// ErrInvalidLength is returned when a binary value is not exactly Size bytes.
	ErrInvalidLength = errors.New("invalid UUID length")
)

// UUID is a 128-bit value in RFC4122 byte order.
type UUID [Size]byte

// Nil is the all-zero UUID.
var Nil UUID

// Parse decodes s into a UUID.
//
// Accepted forms:
//
//	xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//	xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx
//	urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//	{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//
// Hex digits may be upper or lower case.
func Parse(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w %q: %w", ErrInvalidText, s, err)
	}
	return UUID(u), nil
}

// FromBytes returns the UUID stored in b.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, Size, len(b))
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// String returns the lowercase hyphenated form.
func (u UUID) String() string { return uuid.UUID(u).String() }

// Bytes returns a copy of the binary encoding.
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// Version returns the RFC4122 version field (the high nibble of byte 6).
//
// Values 1-8 denote defined versions; 0 is returned for the nil UUID and for
// values with an unspecified version.
func (u UUID) Version() uint8 { return uint8(uuid.UUID(u).Version()) }

// IsNil reports whether u is the all-zero UUID.
func (u UUID) IsNil() bool { return u == Nil }
