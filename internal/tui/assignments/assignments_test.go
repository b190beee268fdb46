// ABOUTME: Tests for the assignments screen
// ABOUTME: Covers fetch rendering, stale-response guarding, and mutation flow

package assignments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/campus-companion/cli/internal/client"
)

type staticTokens struct{}

func (staticTokens) Get() (string, bool) { return "test-token", true }

func newScreen(serverURL string) *Model {
	api := client.New(serverURL, staticTokens{})
	return New(client.NewResources(api).Assignments)
}

func listServer(t *testing.T, items []client.Assignment) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}))
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestFetchAndRender(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	server := listServer(t, []client.Assignment{
		{ID: "1", Title: "Essay", Subject: "English", Priority: "high", Status: client.StatusPending, DueDate: due},
		{ID: "2", Title: "Lab report", Subject: "Physics", Priority: "low", Status: client.StatusCompleted, DueDate: due},
	})
	defer server.Close()

	m := newScreen(server.URL)
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected Init to issue a fetch")
	}
	if !m.loading {
		t.Error("expected loading state while the fetch is in flight")
	}

	model, _ := m.Update(cmd())
	m = model.(*Model)

	if m.loading {
		t.Error("expected loading to clear after the list arrives")
	}
	view := m.View()
	if !strings.Contains(view, "Essay") || !strings.Contains(view, "Lab report") {
		t.Errorf("expected both items rendered, got %q", view)
	}
}

func TestStaleListIgnored(t *testing.T) {
	server := listServer(t, nil)
	defer server.Close()

	m := newScreen(server.URL)
	m.seq = 2
	m.items = []client.Assignment{{ID: "1", Title: "Current"}}
	m.loading = false

	// A response from an older fetch must not overwrite the newer list.
	model, _ := m.Update(listMsg{seq: 1, items: []client.Assignment{{ID: "9", Title: "Stale"}}})
	m = model.(*Model)

	if len(m.items) != 1 || m.items[0].Title != "Current" {
		t.Errorf("expected stale response to be dropped, got %+v", m.items)
	}
}

func TestListFailureShowsErrorState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Server error"})
	}))
	defer server.Close()

	m := newScreen(server.URL)
	cmd := m.Init()
	model, toastCmd := m.Update(cmd())
	m = model.(*Model)

	if !m.failed {
		t.Error("expected failed state")
	}
	if m.items != nil {
		t.Error("expected no items after a failed fetch")
	}
	if toastCmd == nil {
		t.Error("expected an error toast command")
	}
	if !strings.Contains(m.View(), "Failed to load assignments") {
		t.Errorf("expected error state rendered, got %q", m.View())
	}
}

func TestEmptyListRendersEmptyState(t *testing.T) {
	server := listServer(t, []client.Assignment{})
	defer server.Close()

	m := newScreen(server.URL)
	cmd := m.Init()
	model, _ := m.Update(cmd())
	m = model.(*Model)

	if !strings.Contains(m.View(), "No assignments found") {
		t.Errorf("expected empty state, got %q", m.View())
	}
}

func TestCreateResolvesBeforeRefetch(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, r.Method)
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode([]client.Assignment{})
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	m := newScreen(server.URL)
	input := client.AssignmentInput{
		Title: "Essay", Description: "Five pages", Subject: "English",
		DueDate: time.Now().Add(24 * time.Hour), Priority: client.PriorityHigh,
	}

	msg := m.create(input)()
	mutated, ok := msg.(mutatedMsg)
	if !ok {
		t.Fatalf("expected mutatedMsg, got %T", msg)
	}
	if !mutated.refetch {
		t.Error("expected a successful create to request a re-fetch")
	}
	if mutated.sig.Message != "Assignment added successfully" {
		t.Errorf("unexpected signal %q", mutated.sig.Message)
	}
	if len(order) != 1 || order[0] != http.MethodPost {
		t.Errorf("expected only the POST before the mutatedMsg, got %v", order)
	}

	// The re-fetch is issued only after the mutation resolved.
	model, cmd := m.Update(mutated)
	m = model.(*Model)
	if cmd == nil {
		t.Fatal("expected toast plus fetch commands")
	}
	if !m.loading {
		t.Error("expected re-fetch to put the screen back into loading")
	}
}

func TestCreateFailureDoesNotRefetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Title is required"})
	}))
	defer server.Close()

	m := newScreen(server.URL)
	msg := m.create(client.AssignmentInput{})()
	mutated := msg.(mutatedMsg)

	if mutated.refetch {
		t.Error("expected no re-fetch after a rejected create")
	}
	if mutated.sig.Message != "Title is required" {
		t.Errorf("expected the server reason, got %q", mutated.sig.Message)
	}
}

func TestToggleStatusPatchesAction(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := newScreen(server.URL)
	msg := m.toggleStatus("abc123")()
	mutated := msg.(mutatedMsg)

	if method != http.MethodPatch || path != "/api/assignments/abc123/status" {
		t.Errorf("expected PATCH /api/assignments/abc123/status, got %s %s", method, path)
	}
	if mutated.sig.Message != "Assignment status updated" {
		t.Errorf("unexpected signal %q", mutated.sig.Message)
	}
}

func TestBackKeyEmitsBackMsg(t *testing.T) {
	server := listServer(t, nil)
	defer server.Close()

	m := newScreen(server.URL)
	m.loading = false

	_, cmd := m.Update(keyMsg('b'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Error("expected BackMsg")
	}
}
