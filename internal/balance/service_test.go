package balance

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestRefreshSeedsMissingRecord(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, err := svc.Refresh(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.AutomaticBalance != 275_000 || rec.LockedBalance != 1_500_000 {
		t.Fatalf("unexpected seed: %+v", rec)
	}

	stored, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("seed was not persisted: %v", err)
	}
	if !stored.LastUpdated.Equal(now) {
		t.Fatalf("persisted last_updated mismatch: %v", stored.LastUpdated)
	}
}

func TestRefreshAccruesAndPersists(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	if _, err := svc.Refresh(ctx, "user-1", start); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}
	rec, err := svc.Refresh(ctx, "user-1", start.Add(10*time.Second))
	if err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	want := 275_000 + 10*3.1731
	if math.Abs(rec.AutomaticBalance-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, rec.AutomaticBalance)
	}

	stored, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.AutomaticBalance != rec.AutomaticBalance {
		t.Fatalf("persisted balance %v differs from returned %v", stored.AutomaticBalance, rec.AutomaticBalance)
	}
}

func TestPeekDoesNotPersist(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	if _, err := svc.Refresh(ctx, "user-1", start); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}
	peeked, err := svc.Peek(ctx, "user-1", start.Add(time.Minute))
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if peeked.AutomaticBalance <= 275_000 {
		t.Fatalf("peek did not extrapolate: %v", peeked.AutomaticBalance)
	}

	stored, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.AutomaticBalance != 275_000 {
		t.Fatalf("peek mutated the stored record: %v", stored.AutomaticBalance)
	}
}

func TestPeekMissingRecordReturnsSeed(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	rec, err := svc.Peek(context.Background(), "ghost", time.Now())
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if rec.AutomaticBalance != 275_000 {
		t.Fatalf("expected default seed, got %+v", rec)
	}
	if _, err := repo.Get(context.Background(), "ghost"); err == nil {
		t.Fatal("peek persisted a record for an unknown user")
	}
}
