package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	got, err := NewUUIDGenerator("team").NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if !strings.HasPrefix(got, "team_") {
		t.Fatalf("expected prefix, got %s", got)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(got, "team_")); err != nil {
		t.Fatalf("expected uuid suffix: %v", err)
	}

	bare, err := NewUUIDGenerator("").NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if _, err := uuid.Parse(bare); err != nil {
		t.Fatalf("expected bare uuid: %v", err)
	}
}
