// ABOUTME: Tests for the timetable screen
// ABOUTME: Covers day-grouped rendering and cursor order over grouped entries

package timetable

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campus-companion/cli/internal/client"
)

type staticTokens struct{}

func (staticTokens) Get() (string, bool) { return "test-token", true }

func newScreen(serverURL string) *Model {
	api := client.New(serverURL, staticTokens{})
	return New(client.NewResources(api).Timetable)
}

func TestRenderGroupsByDayInTimeOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.TimetableEntry{
			{ID: "1", Day: "Tuesday", StartTime: "9:00", EndTime: "10:00", Subject: "Math", Room: "A1", Instructor: "Das"},
			{ID: "2", Day: "Monday", StartTime: "14:00", EndTime: "15:00", Subject: "History", Room: "C3", Instructor: "Iyer"},
			{ID: "3", Day: "Monday", StartTime: "9:00", EndTime: "10:00", Subject: "Physics", Room: "B2", Instructor: "Rao"},
		})
	}))
	defer server.Close()

	m := newScreen(server.URL)
	model, _ := m.Update(m.Init()())
	m = model.(*Model)

	view := m.View()
	monday := strings.Index(view, "Monday")
	tuesday := strings.Index(view, "Tuesday")
	if monday < 0 || tuesday < 0 || monday > tuesday {
		t.Errorf("expected Monday section before Tuesday, got %q", view)
	}

	physics := strings.Index(view, "Physics")
	history := strings.Index(view, "History")
	if physics < 0 || history < 0 || physics > history {
		t.Error("expected the 9:00 class before the 14:00 class within Monday")
	}
}

func TestSelectedFollowsDisplayOrder(t *testing.T) {
	m := &Model{items: []client.TimetableEntry{
		{ID: "1", Day: "Tuesday", StartTime: "09:00"},
		{ID: "2", Day: "Monday", StartTime: "09:00"},
	}}

	// Cursor 0 is the first displayed entry, which is Monday's class even
	// though it was fetched second.
	entry, ok := m.selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if entry.ID != "2" {
		t.Errorf("expected the Monday entry first, got %s", entry.ID)
	}
}

func TestDeleteHitsEntryEndpoint(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := newScreen(server.URL)
	msg := m.remove("tt42")()
	mutated := msg.(mutatedMsg)

	if method != http.MethodDelete || path != "/api/timetable/tt42" {
		t.Errorf("expected DELETE /api/timetable/tt42, got %s %s", method, path)
	}
	if mutated.sig.Message != "Class deleted successfully" || !mutated.refetch {
		t.Errorf("unexpected mutation result %+v", mutated)
	}
}

func TestEmptyState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.TimetableEntry{})
	}))
	defer server.Close()

	m := newScreen(server.URL)
	model, _ := m.Update(m.Init()())
	m = model.(*Model)

	if !strings.Contains(m.View(), "No classes scheduled") {
		t.Errorf("expected empty state, got %q", m.View())
	}
}
