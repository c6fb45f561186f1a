package net_test

import (
	"context"
	"testing"

	pnet "watchdog/internal/platform/net"
)

func TestWithRequest_And_Getter(t *testing.T) {
	t.Parallel()

	ctx := pnet.WithRequest(context.Background(), "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	// empty id leaves the context untouched
	base := context.Background()
	ctx = pnet.WithRequest(base, "")
	if ctx != base {
		t.Fatalf("empty request id should not annotate the context")
	}
	if got := pnet.RequestID(ctx); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}
