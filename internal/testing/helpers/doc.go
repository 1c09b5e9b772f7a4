// Package helpers provides test utility functions for the WorldForge API.
//
// The helpers package contains common test utilities for assertions,
// pointer creation, and HTTP request handling.
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//	flag := helpers.BoolPtr(true)
//
// # HTTP Helpers
//
// Build JSON requests and decode responses:
//
//	req := helpers.JSONRequest(t, http.MethodPost, "/v1/areas", area)
//	helpers.DecodeResponse(t, rr.Body, &resp)
//
// # Assertion Helpers
//
// Common test assertions:
//
//	helpers.AssertRecordExists(t, db, "area:123")
//	helpers.AssertRecordNotExists(t, db, "area:456")
//
// # Time Helpers
//
// Time manipulation for tests:
//
//	past := helpers.TimeAgo(24 * time.Hour)
//	future := helpers.TimeFromNow(1 * time.Hour)
package helpers
