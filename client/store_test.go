package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bugtrack-simple/dto"
	"github.com/bugtrack-simple/models"
)

// testServer fakes the API with the server's JSON envelopes and counts the
// bug list fetches per project.
type testServer struct {
	*httptest.Server
	bugFetches int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "invalid username or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data": dto.AuthResponse{
				Token: "token-123",
				User:  models.User{ID: "u1", Username: req.Username, Role: models.RoleManager},
			},
		})
	})
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   []models.Project{{ID: "p1", Name: "Tracker"}},
		})
	})
	mux.HandleFunc("GET /projects/{id}/bugs", func(w http.ResponseWriter, r *http.Request) {
		ts.bugFetches++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   []models.Bug{{ID: "b1", ProjectID: r.PathValue("id"), Title: "NPE on save"}},
		})
	})
	mux.HandleFunc("POST /projects/{id}/bugs", func(w http.ResponseWriter, r *http.Request) {
		var req dto.BugRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "bug title must be 1-60 characters"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   models.Bug{ID: "b2", ProjectID: r.PathValue("id"), Title: req.Title, Priority: req.Priority},
		})
	})
	mux.HandleFunc("POST /projects/{id}/bugs/{bugId}/close", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   models.Bug{ID: r.PathValue("bugId"), ProjectID: r.PathValue("id"), Title: "NPE on save", IsResolved: true},
		})
	})
	mux.HandleFunc("DELETE /projects/{id}/bugs/{bugId}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "message": "Bug deleted successfully"})
	})

	ts.Server = httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestStore_LoginAndSessionResume(t *testing.T) {
	server := newTestServer(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(New(server.URL), NewSessionAt(sessionPath))
	if store.Resume() {
		t.Fatal("resumed without a persisted session")
	}

	if err := store.Login("mona", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
	if store.User != nil {
		t.Error("failed login changed the user")
	}
	if store.LastError == "" {
		t.Error("failed login did not record the message")
	}

	if err := store.Login("mona", "hunter22"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.User == nil || store.User.Username != "mona" {
		t.Fatal("login did not set the user")
	}
	if store.LastError != "" {
		t.Error("successful login left a stale error")
	}

	// A fresh store resumes from the persisted session without logging in.
	fresh := NewStore(New(server.URL), NewSessionAt(sessionPath))
	if !fresh.Resume() {
		t.Fatal("expected to resume from the persisted session")
	}
	if fresh.User == nil || fresh.User.ID != "u1" {
		t.Error("resume did not restore the user summary")
	}

	fresh.Logout()
	emptied := NewStore(New(server.URL), NewSessionAt(sessionPath))
	if emptied.Resume() {
		t.Error("logout did not clear the persisted session")
	}
}

func TestStore_SessionSaveFailureIsVisible(t *testing.T) {
	server := newTestServer(t)

	// The session path sits under a regular file, so saving cannot work.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	store := NewStore(New(server.URL), NewSessionAt(filepath.Join(blocker, "session.json")))

	if err := store.Login("mona", "hunter22"); err != nil {
		t.Fatalf("login must not fail on a persistence problem: %v", err)
	}
	if store.User == nil {
		t.Error("login did not set the user")
	}
	if store.LastError == "" {
		t.Error("failed session save was not recorded")
	}
}

func TestStore_BugCacheAndMutations(t *testing.T) {
	server := newTestServer(t)
	store := NewStore(New(server.URL), nil)

	if err := store.LoadProjects(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(store.Projects))
	}

	// First view fetches, later views serve the cache.
	if err := store.LoadBugs("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.LoadBugs("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server.bugFetches != 1 {
		t.Errorf("expected a single fetch, got %d", server.bugFetches)
	}

	// Failed create leaves the cached list untouched.
	if err := store.CreateBug("p1", dto.BugRequest{Description: "no title"}); err == nil {
		t.Fatal("expected a validation failure")
	}
	if len(store.Bugs["p1"]) != 1 {
		t.Error("failed create changed the cached bugs")
	}
	if store.LastError == "" {
		t.Error("failed create did not record the message")
	}

	if err := store.CreateBug("p1", dto.BugRequest{Title: "new bug", Description: "d", Priority: models.PriorityHigh}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Bugs["p1"]) != 2 {
		t.Fatalf("confirmed create did not extend the cache")
	}

	if err := store.CloseBug("p1", "b1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.Bugs["p1"][0].IsResolved {
		t.Error("close result was not merged into the cache")
	}

	if err := store.DeleteBug("p1", "b2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Bugs["p1"]) != 1 {
		t.Error("delete did not remove the cached bug")
	}
}
