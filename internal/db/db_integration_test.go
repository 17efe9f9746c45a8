package db

import (
	"context"
	"testing"
)

func TestDBPing_Integration(t *testing.T) {
	wrapper := New(testDB)

	if err := wrapper.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
