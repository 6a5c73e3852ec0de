package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "entities.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	ok, err := st.Exists(ctx, NamespaceSighting, "VIN123")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("Exists = true before any Put")
	}

	got, err := st.Get(ctx, NamespaceSighting, "VIN123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %s, want nil", got)
	}

	value := json.RawMessage(`{"date_from_epoch": 1700000000}`)
	if _, err := st.Put(ctx, NamespaceSighting, "VIN123", value); err != nil {
		t.Fatalf("Put: %v", err)
	}

	ok, err = st.Exists(ctx, NamespaceSighting, "VIN123")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v, want true", ok, err)
	}

	got, err = st.Get(ctx, NamespaceSighting, "VIN123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(value, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}

	// Idempotent replace: second Put wins completely.
	replacement := json.RawMessage(`{"date_from_epoch": 1800000000}`)
	if _, err := st.Put(ctx, NamespaceSighting, "VIN123", replacement); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err = st.Get(ctx, NamespaceSighting, "VIN123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(replacement, got); diff != "" {
		t.Errorf("Get after replace (-want +got):\n%s", diff)
	}
}
