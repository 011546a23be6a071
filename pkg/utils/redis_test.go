package utils

import (
	"context"
	"testing"
	"time"
)

func TestAttemptScriptCompiles(t *testing.T) {
	// Compile-time smoke test: the script should be initialized.
	if attemptWindowScript == nil {
		t.Fatalf("expected script to be initialized")
	}
}

func TestAllowAttempt_RejectsBadArguments(t *testing.T) {
	ctx := context.Background()
	if _, err := AllowAttempt(ctx, nil, "k", 5, time.Minute); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
