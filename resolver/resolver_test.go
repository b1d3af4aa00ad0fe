package resolver

import (
	"context"
	"testing"

	"github.com/kbukum/grantkit/config"
	"github.com/kbukum/grantkit/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Rules: []config.Rule{
			{
				Description: "profile fields for any user target",
				Targets:     []string{"user", "user:*"},
				Grant: map[string]any{
					"name": true,
				},
			},
			{
				Description: "owner sees contact details",
				Targets:     []string{"user:owner"},
				Grant: map[string]any{
					"email": true,
				},
			},
			{
				Description: "spawn energy budget",
				Targets:     []string{"structure:spawn"},
				Grant: map[string]any{
					"energy": 50,
				},
			},
			{
				Description: "wider spawn energy budget",
				Targets:     []string{"structure:*"},
				Grant: map[string]any{
					"energy": map[string]any{"grantNumber": true, "min": 0, "max": 100},
				},
			},
		},
	}
	cfg.ApplyDefaults()
	cfg.Normalize()
	return cfg
}

func TestResolve_SingleRule(t *testing.T) {
	r := New(testConfig())
	g := r.Resolve(context.Background(), "user", "viewer")
	if !g.HasPath("name") {
		t.Error("expected name to be granted")
	}
	if g.HasPath("email") {
		t.Error("expected email to stay denied for non-owner")
	}
	if g.Target() != "user" {
		t.Errorf("expected target 'user', got %q", g.Target())
	}
	if g.Match() != "viewer" {
		t.Errorf("expected match 'viewer', got %v", g.Match())
	}
}

func TestResolve_UnionAcrossRules(t *testing.T) {
	r := New(testConfig())
	g := r.Resolve(context.Background(), "user:owner", "owner")
	if !g.HasPath("name") {
		t.Error("expected name from the wildcard rule")
	}
	if !g.HasPath("email") {
		t.Error("expected email from the owner rule")
	}
}

func TestResolve_NumericRangeUnion(t *testing.T) {
	r := New(testConfig())
	g := r.Resolve(context.Background(), "structure:spawn", nil)
	// The shorthand rule grants exactly 50; the wildcard rule grants
	// [0, 100]. The union covers both.
	if err := g.CheckNumber("energy", 75); err != nil {
		t.Errorf("expected 75 to fall in the union, got %v", err)
	}
	if err := g.CheckNumber("energy", 101); err == nil {
		t.Error("expected 101 to exceed the union")
	}
}

func TestResolve_NoMatchDeniesEverything(t *testing.T) {
	r := New(testConfig())
	g := r.Resolve(context.Background(), "unknown", nil)
	if g.HasPath("name") {
		t.Error("expected nothing to be granted")
	}
	err := g.CheckPath("name")
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected a denial")
	}
	if appErr.Details[errors.DetailTarget] != "unknown" {
		t.Errorf("expected target context in the denial, got %v", appErr.Details)
	}
}

func TestResolveRaw_RuleOrder(t *testing.T) {
	r := New(testConfig())
	raws := r.ResolveRaw("structure:spawn")
	if len(raws) != 2 {
		t.Fatalf("expected 2 matching rules, got %d", len(raws))
	}
	if _, ok := raws[0]["energy"]; !ok {
		t.Error("expected the shorthand rule first")
	}
}

func TestResolveSubgrant(t *testing.T) {
	cfg := &config.Config{
		Rules: []config.Rule{
			{
				Targets: []string{"doc"},
				Grant: map[string]any{
					"meta": map[string]any{"title": true, "secret": false},
				},
			},
		},
	}
	cfg.ApplyDefaults()
	cfg.Normalize()

	r := New(cfg)
	sub := r.ResolveSubgrant(context.Background(), "doc", nil, "meta")
	if !sub.HasPath("title") {
		t.Error("expected title in the sub-grant")
	}
	if sub.HasPath("secret") {
		t.Error("expected secret to stay denied")
	}
	if sub.Target() != "doc" {
		t.Errorf("expected provenance to survive derivation, got %q", sub.Target())
	}
}

func TestResolve_RepeatedResolutionStable(t *testing.T) {
	r := New(testConfig())
	for i := 0; i < 3; i++ {
		g := r.Resolve(context.Background(), "user", nil)
		if !g.HasPath("name") {
			t.Fatalf("resolution %d: expected name to stay granted", i)
		}
		if g.HasPath("email") {
			t.Fatalf("resolution %d: expected email to stay denied", i)
		}
	}
}
