package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected user ID to be present")
	}
	if got != id {
		t.Errorf("user ID: got %v, want %v", got, id)
	}
}

func TestUserID_Missing(t *testing.T) {
	t.Parallel()

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Errorf("expected uuid.Nil, got %v", got)
	}
}

func TestUserID_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), uuid.Nil)
	if _, ok := UserIDFromCtx(ctx); ok {
		t.Error("expected ok=false for nil UUID")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("request ID: got %q, want %q", got, "req-123")
	}
}

func TestRequestID_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}
