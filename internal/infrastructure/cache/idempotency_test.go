package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStore(t *testing.T) (*miniredis.Miniredis, *IdempotencyStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewIdempotencyStore(rdb, time.Minute)
}

func TestIdempotencyStore_ReserveOnce(t *testing.T) {
	mr, s := newStore(t)
	ctx := context.Background()

	ok, err := s.Reserve(ctx, "k", Entry{InProgress: true, BodySHA256: "abc"})
	if err != nil || !ok {
		t.Fatalf("first Reserve = %v, %v", ok, err)
	}
	ok, err = s.Reserve(ctx, "k", Entry{InProgress: true})
	if err != nil || ok {
		t.Fatalf("second Reserve = %v, %v", ok, err)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Fatalf("lock ttl = %v", ttl)
	}

	got, err := s.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.InProgress || got.BodySHA256 != "abc" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestIdempotencyStore_SaveAndRelease(t *testing.T) {
	mr, s := newStore(t)
	ctx := context.Background()

	final := Entry{Code: 201, Body: []byte(`{"ok":true}`), RequestID: "r1"}
	if err := s.Save(ctx, "k", final, 5*time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ttl := mr.TTL("k"); ttl != 5*time.Minute {
		t.Fatalf("final ttl = %v", ttl)
	}
	got, err := s.Load(ctx, "k")
	if err != nil || got.Code != 201 || string(got.Body) != `{"ok":true}` {
		t.Fatalf("Load = %+v, %v", got, err)
	}

	if err := s.Release(ctx, "k"); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := s.Load(ctx, "k"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}
