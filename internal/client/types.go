// ABOUTME: Resource item and create-payload types for the five collections
// ABOUTME: Identifiers are server-assigned; the client never fabricates one

package client

import "time"

// Assignment priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Assignment status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Event type values.
const (
	EventExam    = "exam"
	EventFest    = "fest"
	EventHoliday = "holiday"
	EventOther   = "other"
)

// TimetableEntry is one scheduled class.
type TimetableEntry struct {
	ID         string `json:"_id"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Subject    string `json:"subject"`
	Room       string `json:"room"`
	Instructor string `json:"instructor"`
}

// TimetableInput is the create payload for a timetable entry.
type TimetableInput struct {
	Day        string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime  string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime    string `json:"endTime" validate:"required,datetime=15:04"`
	Subject    string `json:"subject" validate:"required,notblank"`
	Room       string `json:"room" validate:"required,notblank"`
	Instructor string `json:"instructor" validate:"required,notblank"`
}

// Assignment is one tracked piece of coursework.
type Assignment struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

// AssignmentInput is the create payload for an assignment. Status is
// server-assigned (new assignments start pending).
type AssignmentInput struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description" validate:"required,notblank"`
	Subject     string    `json:"subject" validate:"required,notblank"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Priority    string    `json:"priority" validate:"required,oneof=low medium high"`
}

// AttendanceSubject is one subject's attendance record. Percentage is
// derived server-side from the two counters.
type AttendanceSubject struct {
	ID              string  `json:"_id"`
	Subject         string  `json:"subject"`
	TotalClasses    int     `json:"totalClasses"`
	AttendedClasses int     `json:"attendedClasses"`
	Percentage      float64 `json:"percentage"`
}

// AttendanceInput is the create payload for an attendance subject. The
// attended count can never exceed the total; the rule is enforced here, at
// the capture boundary, not merely trusted to the store.
type AttendanceInput struct {
	Subject         string `json:"subject" validate:"required,notblank"`
	TotalClasses    int    `json:"totalClasses" validate:"min=0"`
	AttendedClasses int    `json:"attendedClasses" validate:"min=0,ltefield=TotalClasses"`
}

// AttendanceMark is the patch payload for recording one class.
type AttendanceMark struct {
	Attended bool `json:"attended"`
}

// Note is one saved note with its server-generated summary.
type Note struct {
	ID        string    `json:"_id"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoteInput is the create payload for a note.
type NoteInput struct {
	Subject string   `json:"subject" validate:"required,notblank"`
	Title   string   `json:"title" validate:"required,notblank"`
	Content string   `json:"content" validate:"required,notblank"`
	Tags    []string `json:"tags"`
}

// Event is one campus event.
type Event struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
}

// EventInput is the create payload for an event.
type EventInput struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description" validate:"required,notblank"`
	Date        time.Time `json:"date" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=exam fest holiday other"`
	Location    string    `json:"location" validate:"required,notblank"`
}
