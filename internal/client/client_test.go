// ABOUTME: Tests for the record store client
// ABOUTME: Uses httptest to fake collection and auth endpoints

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens string

func (s staticTokens) Get() (string, bool) { return string(s), s != "" }

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("expected path /api/auth/login, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "sam@campus.edu" {
			t.Errorf("expected email in body, got %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "signed.jwt.token"})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	token, err := c.Login(context.Background(), "sam@campus.edu", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "signed.jwt.token" {
		t.Errorf("expected token, got %q", token)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.Login(context.Background(), "sam@campus.edu", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Kind != KindRemote {
		t.Errorf("expected remote rejection, got kind %d", apiErr.Kind)
	}
	if apiErr.UserMessage() != "Invalid credentials" {
		t.Errorf("expected server reason, got %q", apiErr.UserMessage())
	}
}

func TestLogin_MissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.Login(context.Background(), "sam@campus.edu", "secret")
	if err == nil {
		t.Fatal("expected error for response without token")
	}
}

func TestLogin_ConnectionError(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	_, err := c.Login(context.Background(), "sam@campus.edu", "secret")
	if err == nil {
		t.Fatal("expected connection error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Kind != KindTransport {
		t.Errorf("expected transport failure, got kind %d", apiErr.Kind)
	}
	if apiErr.UserMessage() != "Network error. Please check your internet connection." {
		t.Errorf("expected connectivity message, got %q", apiErr.UserMessage())
	}
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("expected path /api/auth/register, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "User registered"})
	}))
	defer server.Close()

	c := New(server.URL, nil)
	err := c.Register(context.Background(), RegisterInput{Name: "Sam", Email: "sam@campus.edu", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("expected bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode([]Assignment{})
	}))
	defer server.Close()

	col := NewResources(New(server.URL, staticTokens("tok123"))).Assignments
	if _, err := col.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_Failure_ReturnsNilList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "server error"})
	}))
	defer server.Close()

	col := NewResources(New(server.URL, staticTokens("tok"))).Notes
	items, err := col.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if items != nil {
		t.Errorf("expected nil list on failure, got %v", items)
	}
}

func TestPatch_ActionPath(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer server.Close()

	col := NewResources(New(server.URL, staticTokens("tok"))).Attendance
	err := col.Patch(context.Background(), "abc123", ActionUpdate, AttendanceMark{Attended: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/attendance/abc123/update" {
		t.Errorf("expected patch sub-path, got %s", gotPath)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("expected PATCH, got %s", gotMethod)
	}
}

// fakeStore is a minimal in-memory record store for round-trip tests.
type fakeStore struct {
	mu     []Assignment
	nextID int
}

func (f *fakeStore) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.mu)
		case r.Method == http.MethodPost:
			var input AssignmentInput
			json.NewDecoder(r.Body).Decode(&input)
			f.nextID++
			f.mu = append(f.mu, Assignment{
				ID:          "id-" + string(rune('0'+f.nextID)),
				Title:       input.Title,
				Description: input.Description,
				Subject:     input.Subject,
				DueDate:     input.DueDate,
				Priority:    input.Priority,
				Status:      StatusPending,
			})
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"message": "created"})
		case r.Method == http.MethodDelete:
			id := r.URL.Path[len("/api/assignments/"):]
			kept := f.mu[:0]
			for _, a := range f.mu {
				if a.ID != id {
					kept = append(kept, a)
				}
			}
			f.mu = kept
			json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	store := &fakeStore{}
	server := httptest.NewServer(store.handler())
	defer server.Close()

	col := NewResources(New(server.URL, staticTokens("tok"))).Assignments
	ctx := context.Background()

	input := AssignmentInput{
		Title:       "Essay",
		Description: "Five pages on the Restoration",
		Subject:     "English",
		Priority:    PriorityHigh,
	}
	if err := col.Create(ctx, input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := col.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item after create, got %d", len(items))
	}
	got := items[0]
	if got.ID == "" {
		t.Error("expected server-assigned identifier")
	}
	if got.Title != "Essay" || got.Subject != "English" || got.Priority != PriorityHigh {
		t.Errorf("created fields not round-tripped: %+v", got)
	}
	if got.Status != StatusPending {
		t.Errorf("expected new assignment to be pending, got %q", got.Status)
	}

	if err := col.Remove(ctx, got.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err = col.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, a := range items {
		if a.ID == got.ID {
			t.Errorf("expected %s to be gone after remove", got.ID)
		}
	}
}
