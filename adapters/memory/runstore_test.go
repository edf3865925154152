package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/cortexscaffold/cortexscaffold/adapters/memory"
	"github.com/cortexscaffold/cortexscaffold/ports"
)

func TestRunStore_RecordAndRecent(t *testing.T) {
	store := memory.NewRunStore()
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-1", "run-2", "run-3"} {
		err := store.Record(ctx, ports.Run{
			ID:        id,
			Name:      "Demo",
			Slug:      "demo",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record(%s) error: %v", id, err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].ID != "run-3" || runs[1].ID != "run-2" {
		t.Errorf("order = [%s %s], want [run-3 run-2]", runs[0].ID, runs[1].ID)
	}
}

func TestRunStore_RecentEmpty(t *testing.T) {
	store := memory.NewRunStore()

	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}

func TestRunStore_DefaultLimit(t *testing.T) {
	store := memory.NewRunStore()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if err := store.Record(ctx, ports.Run{ID: "run"}); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("len(runs) = %d, want 20 (default limit)", len(runs))
	}
}
