package utils

import (
	"testing"
	"time"
)

func TestPoolDefaults(t *testing.T) {
	got := PoolConfig{}.withDefaults()
	if got.MaxOpenConns != 10 || got.MaxIdleConns != 5 {
		t.Fatalf("conn defaults = %d/%d, want 10/5", got.MaxOpenConns, got.MaxIdleConns)
	}
	if got.ConnMaxLifetime != time.Hour || got.ConnMaxIdleTime != 10*time.Minute {
		t.Fatalf("lifetime defaults = %v/%v", got.ConnMaxLifetime, got.ConnMaxIdleTime)
	}
	if got.PingTimeout != 3*time.Second {
		t.Fatalf("ping timeout default = %v", got.PingTimeout)
	}
}

func TestPoolDefaultsKeepExplicitValues(t *testing.T) {
	in := PoolConfig{MaxOpenConns: 2, MaxIdleConns: 1, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: time.Second, PingTimeout: time.Second}
	if got := in.withDefaults(); got != in {
		t.Fatalf("explicit config changed: %+v", got)
	}
}
