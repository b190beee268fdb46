// ABOUTME: Tests for the notes screen
// ABOUTME: Covers summary regeneration and tag parsing

package notes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/campus-companion/cli/internal/client"
)

type staticTokens struct{}

func (staticTokens) Get() (string, bool) { return "test-token", true }

func newScreen(serverURL string) *Model {
	api := client.New(serverURL, staticTokens{})
	return New(client.NewResources(api).Notes)
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"calc, exam", []string{"calc", "exam"}},
		{"  one ,, two  ", []string{"one", "two"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := splitTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelectedNoteShowsSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.Note{
			{ID: "1", Title: "Integrals", Subject: "Math", Content: "Long form notes.",
				Summary: "Area under curves.", Tags: []string{"calc"}},
		})
	}))
	defer server.Close()

	m := newScreen(server.URL)
	model, _ := m.Update(m.Init()())
	m = model.(*Model)

	view := m.View()
	if !strings.Contains(view, "Area under curves.") {
		t.Errorf("expected summary in detail panel, got %q", view)
	}
	if !strings.Contains(view, "#calc") {
		t.Errorf("expected tag rendered, got %q", view)
	}
}

func TestSummarizePatchesAction(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := newScreen(server.URL)
	msg := m.summarize("n9")()
	mutated := msg.(mutatedMsg)

	if method != http.MethodPatch || path != "/api/notes/n9/summarize" {
		t.Errorf("expected PATCH /api/notes/n9/summarize, got %s %s", method, path)
	}
	if mutated.sig.Message != "Summary regenerated successfully" || !mutated.refetch {
		t.Errorf("unexpected mutation result %+v", mutated)
	}
}

func TestDeleteNote(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := newScreen(server.URL)
	msg := m.remove("n9")()
	mutated := msg.(mutatedMsg)

	if method != http.MethodDelete || path != "/api/notes/n9" {
		t.Errorf("expected DELETE /api/notes/n9, got %s %s", method, path)
	}
	if mutated.sig.Message != "Note deleted successfully" {
		t.Errorf("unexpected signal %q", mutated.sig.Message)
	}
}
