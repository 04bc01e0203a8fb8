// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/rapid-raffle/draw"
	"github.com/danielhkuo/rapid-raffle/normalize"
	"github.com/danielhkuo/rapid-raffle/session"
)

// SetupTestStore creates a fresh in-memory session store. The reaper is not
// started; tests that exercise reaping start it themselves.
func SetupTestStore(t *testing.T) *session.Store {
	t.Helper()

	store := session.NewStore(time.Hour)
	t.Cleanup(store.Close)
	return store
}

// SeededSource returns a deterministic draw source so sampled winners are
// reproducible across runs.
func SeededSource(seed uint64) draw.Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// CreateTestSession creates a session pre-loaded with candidate text.
func CreateTestSession(t *testing.T, store *session.Store, text string, opts normalize.Options) *session.Session {
	t.Helper()

	sess := store.Create()
	if text != "" {
		if _, err := sess.SetCandidates(text, opts); err != nil {
			t.Fatalf("Failed to set candidates: %v", err)
		}
	}
	return sess
}

// DrawTestWinners runs one committed draw and returns the winner names.
func DrawTestWinners(t *testing.T, sess *session.Session, k int, seed uint64) []string {
	t.Helper()

	records, err := sess.Draw(k, true, SeededSource(seed))
	if err != nil {
		t.Fatalf("Failed to draw: %v", err)
	}

	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	return names
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
