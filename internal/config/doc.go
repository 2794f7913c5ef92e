// Package config resolves the CLI's configuration from flags,
// environment variables, and defaults, in that priority order.
package config
