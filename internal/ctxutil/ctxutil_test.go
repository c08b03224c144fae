package ctxutil

import (
	"context"
	"testing"
	"time"
)

func TestRequestIDAndOp(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestID(ctx); ok {
		t.Fatal("empty context must not carry a request id")
	}
	ctx = WithOp(WithRequestID(ctx, "abc"), "GetStudent")
	if id, ok := RequestID(ctx); !ok || id != "abc" {
		t.Fatalf("RequestID = %q, %v", id, ok)
	}
	if op, ok := Op(ctx); !ok || op != "GetStudent" {
		t.Fatalf("Op = %q, %v", op, ok)
	}
}

func TestWithDBTimeout(t *testing.T) {
	t.Run("default_deadline", func(t *testing.T) {
		ctx, cancel := WithDBTimeout(context.Background())
		defer cancel()
		dl, ok := ctx.Deadline()
		if !ok {
			t.Fatal("expected a deadline")
		}
		if time.Until(dl) > DefaultDBTimeout {
			t.Fatalf("deadline too far: %v", time.Until(dl))
		}
	})

	t.Run("shorter_parent_wins", func(t *testing.T) {
		parent, pcancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer pcancel()
		ctx, cancel := WithDBTimeout(parent)
		defer cancel()
		dl, _ := ctx.Deadline()
		if time.Until(dl) > 50*time.Millisecond {
			t.Fatalf("parent deadline ignored: %v", time.Until(dl))
		}
	})

	t.Run("no_timeout_when_non_positive", func(t *testing.T) {
		ctx, cancel := WithTimeout(context.Background(), 0)
		defer cancel()
		if _, ok := ctx.Deadline(); ok {
			t.Fatal("d<=0 must not set a deadline")
		}
	})
}
