// Package config loads and validates application configuration for
// WorldForge from environment variables.
//
// Every setting carries a default suitable for local development; only
// DB_PASSWORD has no default. Validate() reports all problems at once so a
// misconfigured deployment fails with the full list instead of one error per
// restart.
package config
