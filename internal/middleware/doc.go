// Package middleware provides HTTP middleware for the WorldForge API:
// request ID propagation, structured request logging, and panic recovery.
package middleware
