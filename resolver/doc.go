// Package resolver turns permission configuration into grants.
//
// A Resolver holds the loaded permission rules. Resolving a target collects
// the raw grant masks of every rule whose target pattern matches, combines
// them into the union of their authorizations, and wraps the result as a
// Grant carrying the target and matching context for diagnostics.
//
// Target patterns use a "type:qualifier" format with wildcard support
// (e.g. "structure:*" matches "structure:spawn").
//
// Usage:
//
//	cfg, err := config.Load("grants.yml")
//	r := resolver.New(cfg)
//	g := r.Resolve(ctx, "structure:spawn", creep)
//	err = g.CheckNumber("energy", 50)
package resolver
