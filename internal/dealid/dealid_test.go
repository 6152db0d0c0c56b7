package dealid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}

	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}

	parsed, err := Parse(id)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", parsed.Version())
	}
}

func TestNewFromReaderUsesReader(t *testing.T) {
	id, err := NewFromReader(bytes.NewReader(bytes.Repeat([]byte{0xff}, 64)))
	if err != nil {
		t.Fatalf("NewFromReader: %v", err)
	}
	parsed, err := Parse(id)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Only the last byte is untouched by the timestamp, version and variant.
	if parsed[15] != 0xff {
		t.Errorf("expected random tail from reader, got %x", parsed[15])
	}
}

func TestNewUnique(t *testing.T) {
	ids := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := New()
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestNewTimeSorted(t *testing.T) {
	var ids []string

	for i := 0; i < 10; i++ {
		id, err := New()
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		ids = append(ids, id)
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestEncodeBoundaries(t *testing.T) {
	var zero uuid.UUID
	if got := Encode(zero); got != "00000000000000000000000000" {
		t.Errorf("zero UUID encoded as %s", got)
	}

	var ones uuid.UUID
	for i := range ones {
		ones[i] = 0xff
	}
	if got := Encode(ones); got != "7zzzzzzzzzzzzzzzzzzzzzzzzz" {
		t.Errorf("all-ones UUID encoded as %s", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	want := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	got, err := Parse(Encode(want))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: %s != %s", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{
			name:    "valid ID",
			id:      "01h5n0et5q6mt3v7ms1234abcd",
			wantErr: false,
		},
		{
			name:    "too short",
			id:      "01h5n0et5q6mt3v7ms123",
			wantErr: true,
		},
		{
			name:    "too long",
			id:      "01h5n0et5q6mt3v7ms1234abcdef",
			wantErr: true,
		},
		{
			name:    "first char too high",
			id:      "81h5n0et5q6mt3v7ms1234abcd",
			wantErr: true,
		},
		{
			name:    "excluded letter",
			id:      "01h5n0et5q6mt3v7ms1234abcu",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
