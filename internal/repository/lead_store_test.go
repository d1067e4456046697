package repository

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"scorecast/internal/models"
)

func testLead(name string) models.Lead {
	return models.Lead{
		Name:      name,
		Phone:     "9876543210",
		Score:     "72.5",
		Interest:  "Coaching",
		Timestamp: "2026-09-01 10:00:00",
	}
}

func checkRoundTrip(t *testing.T, store LeadStore) {
	t.Helper()
	ctx := context.Background()

	if res := store.Append(ctx, testLead("First")); !res.Saved {
		t.Fatalf("append failed: %+v", res)
	}
	if res := store.Append(ctx, testLead("Test")); !res.Saved {
		t.Fatalf("append failed: %+v", res)
	}

	leads := store.ListAll(ctx)
	if len(leads) != 2 {
		t.Fatalf("got %d leads, want 2", len(leads))
	}
	if leads[0].Name != "First" || leads[1].Name != "Test" {
		t.Fatalf("append order not preserved: %q then %q", leads[0].Name, leads[1].Name)
	}
	got := leads[1]
	want := testLead("Test")
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	checkRoundTrip(t, NewMemoryStore())
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "leads.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	checkRoundTrip(t, store)
}

func TestSQLiteStoreAllowsDuplicateRows(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "leads.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	ctx := context.Background()
	store.Append(ctx, testLead("Dup"))
	store.Append(ctx, testLead("Dup"))
	if got := len(store.ListAll(ctx)); got != 2 {
		t.Fatalf("duplicate submission must produce duplicate rows, got %d", got)
	}
}

func TestUnavailableStoreDegradesGracefully(t *testing.T) {
	store := NewUnavailableStore("sheets credentials not configured", zap.NewNop())

	res := store.Append(context.Background(), testLead("Lost"))
	if res.Saved {
		t.Fatal("unavailable store must not report saved")
	}
	if res.Reason == "" {
		t.Fatal("unavailable store must carry a reason")
	}

	leads := store.ListAll(context.Background())
	if leads == nil || len(leads) != 0 {
		t.Fatalf("unreachable store must list an empty sequence, got %v", leads)
	}
}

func TestSheetsStoreWithoutCredentialsIsUnavailable(t *testing.T) {
	store := NewSheetsStore(context.Background(), "", "", "Leads", zap.NewNop())
	if res := store.Append(context.Background(), testLead("Lost")); res.Saved {
		t.Fatal("missing credentials must disable writes, not crash")
	}
}
