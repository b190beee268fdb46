// ABOUTME: Generic CRUD adapter over one resource collection endpoint
// ABOUTME: Implemented once and instantiated for each of the five resource kinds

package client

import (
	"context"
	"net/http"
)

// Patch actions exposed by the record store.
const (
	ActionStatus    = "status"    // assignments: flip pending/completed
	ActionUpdate    = "update"    // attendance: record present/absent
	ActionSummarize = "summarize" // notes: regenerate the summary
)

// Collection is the uniform adapter for one resource collection. Every
// mutation must be followed by a List call; the adapter never patches a
// local copy.
type Collection[T any] struct {
	client *Client
	path   string
}

// NewCollection creates an adapter for the collection at the given path.
func NewCollection[T any](c *Client, path string) *Collection[T] {
	return &Collection[T]{client: c, path: path}
}

// List fetches the full collection. On failure the caller receives a nil
// slice and must render an explicit error state, never a previous list.
func (col *Collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create posts a new item. The store assigns the identifier; observe the
// item by re-running List.
func (col *Collection[T]) Create(ctx context.Context, payload interface{}) error {
	return col.client.do(ctx, http.MethodPost, col.path, payload, nil)
}

// Remove deletes an item by identifier.
func (col *Collection[T]) Remove(ctx context.Context, id string) error {
	return col.client.do(ctx, http.MethodDelete, col.path+"/"+id, nil, nil)
}

// Patch invokes an action sub-path on one item. payload may be nil for
// zero-body actions such as the note summarize.
func (col *Collection[T]) Patch(ctx context.Context, id, action string, payload interface{}) error {
	return col.client.do(ctx, http.MethodPatch, col.path+"/"+id+"/"+action, payload, nil)
}

// Resources bundles the five collection adapters so views receive their
// dependencies explicitly instead of reaching into shared state.
type Resources struct {
	Timetable   *Collection[TimetableEntry]
	Assignments *Collection[Assignment]
	Attendance  *Collection[AttendanceSubject]
	Notes       *Collection[Note]
	Events      *Collection[Event]
}

// NewResources creates the adapter set for one record store client.
func NewResources(c *Client) *Resources {
	return &Resources{
		Timetable:   NewCollection[TimetableEntry](c, "/api/timetable"),
		Assignments: NewCollection[Assignment](c, "/api/assignments"),
		Attendance:  NewCollection[AttendanceSubject](c, "/api/attendance"),
		Notes:       NewCollection[Note](c, "/api/notes"),
		Events:      NewCollection[Event](c, "/api/events"),
	}
}
