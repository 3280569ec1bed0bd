package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyDescription  = errors.New("model: task description is required")
	ErrInvalidDate       = errors.New("model: invalid date")
	ErrEventRangeInverse = errors.New("model: event starts after it ends")
)

// Kind is the variant tag of a task. Its value doubles as the type field of a
// persisted line.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindTodo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}

// Task is one trackable item. Kind and description are fixed at construction;
// only the done flag changes afterwards.
type Task struct {
	kind        Kind
	description string
	done        bool

	// KindDeadline
	due time.Time

	// KindEvent
	from string
	to   string
}

func NewTodo(description string) (*Task, error) {
	desc, err := checkDescription(description)
	if err != nil {
		return nil, err
	}
	return &Task{kind: KindTodo, description: desc}, nil
}

// NewDeadline expects due to already be a valid calendar date; only the date
// part is kept.
func NewDeadline(description string, due time.Time) (*Task, error) {
	desc, err := checkDescription(description)
	if err != nil {
		return nil, err
	}
	y, m, d := due.Date()
	return &Task{kind: KindDeadline, description: desc, due: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}, nil
}

func NewEvent(description, from, to string) (*Task, error) {
	desc, err := checkDescription(description)
	if err != nil {
		return nil, err
	}
	return &Task{kind: KindEvent, description: desc, from: strings.TrimSpace(from), to: strings.TrimSpace(to)}, nil
}

func checkDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", ErrEmptyDescription
	}
	return trimmed, nil
}

func (t *Task) Kind() Kind          { return t.kind }
func (t *Task) Description() string { return t.description }
func (t *Task) Done() bool          { return t.done }
func (t *Task) Due() time.Time      { return t.due }
func (t *Task) From() string        { return t.from }
func (t *Task) To() string          { return t.to }

func (t *Task) MarkDone() { t.done = true }
func (t *Task) Unmark()   { t.done = false }

// StatusIcon is "X" for a done task and a single space otherwise.
func (t *Task) StatusIcon() string {
	if t.done {
		return "X"
	}
	return " "
}

// String renders the task the way it is shown to the user.
func (t *Task) String() string {
	head := fmt.Sprintf("[%s][%s] %s", t.kind, t.StatusIcon(), t.description)
	switch t.kind {
	case KindDeadline:
		return fmt.Sprintf("%s (by: %s)", head, DisplayDate(t.due))
	case KindEvent:
		return fmt.Sprintf("%s (from: %s to: %s)", head, t.from, t.to)
	default:
		return head
	}
}

// Equal reports whether two tasks carry the same kind, description, done flag
// and variant fields.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.kind == other.kind &&
		t.description == other.description &&
		t.done == other.done &&
		t.due.Equal(other.due) &&
		t.from == other.from &&
		t.to == other.to
}
