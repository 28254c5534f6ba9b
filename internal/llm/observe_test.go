package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestObserve(t *testing.T) {
	boom := errors.New("boom")
	inner := GatewayFunc(func(ctx context.Context, system, user string, tier Tier) (string, error) {
		if user == "fail" {
			return "", boom
		}
		return "ok", nil
	})

	var tiers []Tier
	var errs []error
	g := Observe(inner, func(tier Tier, elapsed time.Duration, err error) {
		tiers = append(tiers, tier)
		errs = append(errs, err)
	})

	if out, err := g.Complete(context.Background(), "s", "u", TierFast); err != nil || out != "ok" {
		t.Fatalf("got %q, %v", out, err)
	}
	if _, err := g.Complete(context.Background(), "s", "fail", TierBalanced); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if len(tiers) != 2 || tiers[0] != TierFast || tiers[1] != TierBalanced {
		t.Errorf("unexpected tiers: %v", tiers)
	}
	if errs[0] != nil || !errors.Is(errs[1], boom) {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestObserveNil(t *testing.T) {
	inner := GatewayFunc(func(ctx context.Context, system, user string, tier Tier) (string, error) {
		return "ok", nil
	})
	if Observe(inner, nil) == nil {
		t.Fatal("expected gateway")
	}
}
