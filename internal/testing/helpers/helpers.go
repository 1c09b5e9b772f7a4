package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forgo/worldforge/api/internal/database"
)

// ============================================================================
// Pointer Helpers
// ============================================================================

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to the given int
func IntPtr(i int) *int { return &i }

// BoolPtr returns a pointer to the given bool
func BoolPtr(b bool) *bool { return &b }

// ============================================================================
// HTTP Helpers
// ============================================================================

// JSONRequest builds an httptest request with a JSON-encoded body
func JSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("helpers: failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeResponse decodes a JSON response body into the given struct
func DecodeResponse(t *testing.T, body io.Reader, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		t.Fatalf("helpers: failed to decode response body: %v", err)
	}
}

// ============================================================================
// Assertion Helpers
// ============================================================================

// AssertRecordExists fails the test if no record with the given ID exists
func AssertRecordExists(t *testing.T, db database.Database, id string) {
	t.Helper()

	_, err := db.QueryOne(t.Context(), "SELECT * FROM type::record($id)", map[string]interface{}{"id": id})
	if errors.Is(err, database.ErrNotFound) {
		t.Fatalf("helpers: expected record %s to exist", id)
	}
	if err != nil {
		t.Fatalf("helpers: lookup of %s failed: %v", id, err)
	}
}

// AssertRecordNotExists fails the test if a record with the given ID exists
func AssertRecordNotExists(t *testing.T, db database.Database, id string) {
	t.Helper()

	_, err := db.QueryOne(t.Context(), "SELECT * FROM type::record($id)", map[string]interface{}{"id": id})
	if err == nil {
		t.Fatalf("helpers: expected record %s to be gone", id)
	}
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("helpers: lookup of %s failed: %v", id, err)
	}
}

// ============================================================================
// Time Helpers
// ============================================================================

// TimeAgo returns a time the given duration in the past
func TimeAgo(d time.Duration) time.Time { return time.Now().Add(-d) }

// TimeFromNow returns a time the given duration in the future
func TimeFromNow(d time.Duration) time.Time { return time.Now().Add(d) }
