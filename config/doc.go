// Package config loads and validates permission configuration for grantkit.
//
// Configuration is a YAML document listing permission rules, each binding a
// set of target patterns to a raw grant mask. Viper loads the file (with
// environment variable overrides under the GRANTS_ prefix) and godotenv
// loads an optional .env file first.
//
// Numeric shorthand leaves in raw grants ("energy: 50" meaning "authorize
// exactly 50") are normalized to numeric-range leaves at load time, before
// any combination or checking sees them.
//
//	rules:
//	  - description: owners read their own profile
//	    targets: ["user", "user:*"]
//	    grant:
//	      name: true
//	      email: true
//	      karma: { grantNumber: true, min: 0, max: 100 }
package config
