// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/rapid-raffle/models"
	"github.com/danielhkuo/rapid-raffle/testutil"
)

// TestFullRaffleWorkflow tests the complete end-to-end workflow:
// 1. Create a session
// 2. Paste the candidate list
// 3. Draw two winners (begin + commit)
// 4. Draw again with past winners excluded
// 5. Check the history
// 6. Clear winners and confirm the pool is restored
func TestFullRaffleWorkflow(t *testing.T) {
	store := testutil.SetupTestStore(t)
	sessionHandler := NewSessionHandler(store, nil)
	drawHandler := NewDrawHandler(store, nil, testutil.SeededSource(21))

	// Step 1: Create a session
	req := testutil.MakeRequest("POST", "/sessions", nil, nil)
	w := httptest.NewRecorder()
	sessionHandler.CreateSession(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateSessionResponse
	testutil.AssertJSON(t, w, &created)
	id := created.SessionID

	// Step 2: Paste the candidate list, with dedupe on
	updateBody := models.UpdateCandidatesRequest{
		Text:   "Alice\nBob\nbob\nCarol\n\n  Dave  ",
		Dedupe: true,
	}
	req = testutil.MakeRequest("PUT", "/sessions/"+id+"/candidates", updateBody, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	sessionHandler.UpdateCandidates(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var updated models.UpdateCandidatesResponse
	testutil.AssertJSON(t, w, &updated)
	if updated.CandidateCount != 4 {
		t.Fatalf("expected 4 unique candidates, got %d", updated.CandidateCount)
	}

	// Step 3: Draw two winners
	drawBody := models.DrawRequest{Count: 2, IgnoreWinners: true}
	req = testutil.MakeRequest("POST", "/sessions/"+id+"/draws", drawBody, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	drawHandler.BeginDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var begun models.BeginDrawResponse
	testutil.AssertJSON(t, w, &begun)

	req = testutil.MakeRequest("POST", "/sessions/"+id+"/draws/"+begun.Token+"/commit", nil, nil)
	req.SetPathValue("id", id)
	req.SetPathValue("token", begun.Token)
	w = httptest.NewRecorder()
	drawHandler.CommitDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 4: Draw again; past winners are out of the pool
	req = testutil.MakeRequest("POST", "/sessions/"+id+"/draws", drawBody, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	drawHandler.BeginDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var second models.BeginDrawResponse
	testutil.AssertJSON(t, w, &second)
	if second.PoolSize != 2 {
		t.Errorf("expected pool of 2 on the second draw, got %d", second.PoolSize)
	}
	for _, name := range second.Winners {
		for _, prev := range begun.Winners {
			if name == prev {
				t.Errorf("previous winner %q drawn again", name)
			}
		}
	}

	req = testutil.MakeRequest("POST", "/sessions/"+id+"/draws/"+second.Token+"/commit", nil, nil)
	req.SetPathValue("id", id)
	req.SetPathValue("token", second.Token)
	w = httptest.NewRecorder()
	drawHandler.CommitDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 5: History holds all four in draw order
	req = testutil.MakeRequest("GET", "/sessions/"+id+"/history", nil, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	sessionHandler.GetHistory(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var history models.HistoryResponse
	testutil.AssertJSON(t, w, &history)
	if len(history.Winners) != 4 {
		t.Fatalf("expected 4 history entries, got %d", len(history.Winners))
	}
	expectedOrder := append(append([]string{}, begun.Winners...), second.Winners...)
	for i, entry := range history.Winners {
		if entry.Name != expectedOrder[i] {
			t.Errorf("history entry %d: expected %q, got %q", i, expectedOrder[i], entry.Name)
		}
	}

	// Everyone has won; the next draw has nothing left
	req = testutil.MakeRequest("POST", "/sessions/"+id+"/draws", drawBody, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	drawHandler.BeginDraw(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 6: Clear winners restores the pool without touching candidates
	req = testutil.MakeRequest("POST", "/sessions/"+id+"/clear-winners", nil, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	sessionHandler.ClearWinners(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/sessions/"+id, nil, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	sessionHandler.GetSession(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap struct {
		CandidateCount int `json:"candidate_count"`
		PoolSize       int `json:"pool_size"`
		WinnerCount    int `json:"winner_count"`
	}
	testutil.AssertJSON(t, w, &snap)
	if snap.CandidateCount != 4 || snap.PoolSize != 4 || snap.WinnerCount != 0 {
		t.Errorf("unexpected state after clear: %+v", snap)
	}
}
