// Package dealid generates identifiers for deals. An ID is a UUIDv7 encoded
// as 26 characters of Crockford base32, so IDs sort by creation time.
package dealid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the size of an encoded ID.
const Length = 26

// New creates a new deal ID from the system random source.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate deal id: %w", err)
	}
	return Encode(id), nil
}

// NewFromReader creates a new deal ID whose random bits come from r.
func NewFromReader(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate deal id: %w", err)
	}
	return Encode(id), nil
}

// Encode renders the 128 UUID bits as 26 base32 characters. The value is
// treated as 130 bits with two leading zero bits, which is why the first
// character is always 0-7.
func Encode(id uuid.UUID) string {
	var out [Length]byte
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			v <<= 1
			p := i*5 + b - 2
			if p >= 0 {
				v |= (id[p/8] >> (7 - p%8)) & 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

// Parse decodes an ID back into its UUID.
func Parse(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}
	for i := 0; i < Length; i++ {
		v := byte(strings.IndexByte(alphabet, s[i]))
		for b := 0; b < 5; b++ {
			p := i*5 + b - 2
			if p < 0 {
				continue
			}
			if v&(1<<(4-b)) != 0 {
				id[p/8] |= 1 << (7 - p%8)
			}
		}
	}
	return id, nil
}

// Validate checks if a deal ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("deal ID must be exactly %d characters, got %d", Length, len(id))
	}

	// The two padding bits must be zero.
	if id[0] > '7' {
		return fmt.Errorf("deal ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
