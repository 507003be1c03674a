package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"example.com/enrollment/internal/catalog"
	"example.com/enrollment/internal/domain"
)

func newTestMux() *http.ServeMux {
	store := catalog.NewStore(catalog.DefaultSeed())
	service := domain.NewService(store, nil)
	handler := NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestListActivitiesReturnsFullCatalog(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodGet, "/activities")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]ActivityView
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp) != 9 {
		t.Fatalf("expected 9 activities got %d", len(resp))
	}

	chess, ok := resp["Chess Club"]
	if !ok {
		t.Fatalf("expected Chess Club in catalog")
	}
	if chess.MaxParticipants != 12 {
		t.Fatalf("expected max_participants 12 got %d", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 {
		t.Fatalf("expected 2 participants got %d", len(chess.Participants))
	}
	if chess.Participants[0] != "michael@mergington.edu" {
		t.Fatalf("unexpected first participant %s", chess.Participants[0])
	}
}

func TestSignupSuccess(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp ConfirmationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "Signed up") {
		t.Fatalf("expected confirmation message got %q", resp.Message)
	}

	list := doRequest(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	if err := json.Unmarshal(list.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	participants := activities["Chess Club"].Participants
	if len(participants) != 3 {
		t.Fatalf("expected 3 participants got %d", len(participants))
	}
	found := false
	for _, p := range participants {
		if p == "newstudent@mergington.edu" {
			found = true
		}
	}
	if !found {
		t.Fatalf("new student missing from participants: %v", participants)
	}
}

func TestSignupDuplicateStudent(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp["detail"], "already signed up") {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}

	list := doRequest(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	if err := json.Unmarshal(list.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if got := len(activities["Chess Club"].Participants); got != 2 {
		t.Fatalf("participant set changed on conflict, got %d", got)
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Fake%20Activity/signup?email=newstudent@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp["detail"], "not found") {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}
}

func TestSignupMissingEmail(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/signup")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestUnregisterSuccess(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp ConfirmationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "Removed") {
		t.Fatalf("expected removal message got %q", resp.Message)
	}

	list := doRequest(t, mux, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	if err := json.Unmarshal(list.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	participants := activities["Chess Club"].Participants
	if len(participants) != 1 || participants[0] != "daniel@mergington.edu" {
		t.Fatalf("unexpected participants after unregister: %v", participants)
	}
}

func TestUnregisterNotRegistered(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/unregister?email=nonexistent@mergington.edu")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp["detail"], "not registered") {
		t.Fatalf("unexpected detail %q", resp["detail"])
	}
}

func TestUnregisterUnknownActivity(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Fake%20Activity/unregister?email=michael@mergington.edu")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestUnregisterTwiceConflicts(t *testing.T) {
	mux := newTestMux()

	first := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", first.Code)
	}

	second := doRequest(t, mux, http.MethodPost, "/activities/Chess%20Club/unregister?email=michael@mergington.edu")
	if second.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", second.Code)
	}
}

func TestSignupThenUnregisterRestoresCount(t *testing.T) {
	mux := newTestMux()

	countParticipants := func() int {
		list := doRequest(t, mux, http.MethodGet, "/activities")
		var activities map[string]ActivityView
		if err := json.Unmarshal(list.Body.Bytes(), &activities); err != nil {
			t.Fatalf("failed to decode list: %v", err)
		}
		return len(activities["Basketball Team"].Participants)
	}

	initial := countParticipants()

	rr := doRequest(t, mux, http.MethodPost, "/activities/Basketball%20Team/signup?email=integration@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("signup failed with %d", rr.Code)
	}
	if got := countParticipants(); got != initial+1 {
		t.Fatalf("expected %d participants got %d", initial+1, got)
	}

	rr = doRequest(t, mux, http.MethodPost, "/activities/Basketball%20Team/unregister?email=integration@mergington.edu")
	if rr.Code != http.StatusOK {
		t.Fatalf("unregister failed with %d", rr.Code)
	}
	if got := countParticipants(); got != initial {
		t.Fatalf("expected %d participants got %d", initial, got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux()

	rr := doRequest(t, mux, http.MethodGet, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}
