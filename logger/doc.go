// Package logger provides structured logging for grantkit built on zerolog.
//
// It wraps zerolog.Logger with configuration, component tagging, and the
// field key constants used across the module so authorization decisions are
// logged with consistent keys (target, match, grant_key, ...).
//
// Usage:
//
//	log := logger.NewDefault("grantkit")
//	log.Info("grants resolved", logger.Fields(
//	    logger.FieldTarget, "user",
//	    logger.FieldRuleCount, 3,
//	))
package logger
