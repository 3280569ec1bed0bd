// Package tasklist holds the ordered, index-addressable task collection.
package tasklist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sandeepkv93/candy/internal/codec"
	"github.com/sandeepkv93/candy/internal/model"
)

var ErrIndexOutOfRange = errors.New("tasklist: index out of range")

// IndexError is returned by every index-based operation when the index does
// not address an existing task. Its message is meant for the user.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "Task number does not exist."
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

type List struct {
	tasks []*model.Task
}

func New(tasks ...*model.Task) *List {
	return &List{tasks: append([]*model.Task(nil), tasks...)}
}

func (l *List) Add(t *model.Task) {
	l.tasks = append(l.tasks, t)
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) Get(i int) (*model.Task, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	return l.tasks[i], nil
}

// Remove deletes the task at i and returns it.
func (l *List) Remove(i int) (*model.Task, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	removed := l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return removed, nil
}

func (l *List) Mark(i int) (*model.Task, error) {
	t, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	t.MarkDone()
	return t, nil
}

func (l *List) Unmark(i int) (*model.Task, error) {
	t, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	t.Unmark()
	return t, nil
}

// Tasks returns the tasks in order. The slice is a copy; the tasks are not.
func (l *List) Tasks() []*model.Task {
	return slices.Clone(l.tasks)
}

// Find returns the tasks whose description contains keyword, ignoring case.
// An empty keyword matches every task.
func (l *List) Find(keyword string) *List {
	needle := strings.ToLower(keyword)
	out := New()
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Description()), needle) {
			out.Add(t)
		}
	}
	return out
}

// Lines encodes every task for a full rewrite of the store.
func (l *List) Lines() []string {
	lines := make([]string, 0, len(l.tasks))
	for _, t := range l.tasks {
		lines = append(lines, codec.Encode(t))
	}
	return lines
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return &IndexError{Index: i, Len: len(l.tasks)}
	}
	return nil
}

// Groups is the sort view of a list.
type Groups struct {
	PendingDeadlines []*model.Task
	DoneDeadlines    []*model.Task
	Todos            []*model.Task
	Events           []*model.Task
}

// Grouped partitions the tasks by kind. Deadlines are ordered by due date,
// ties keep list order; todos and events keep list order.
func (l *List) Grouped() Groups {
	var g Groups
	for _, t := range l.tasks {
		switch t.Kind() {
		case model.KindDeadline:
			if t.Done() {
				g.DoneDeadlines = append(g.DoneDeadlines, t)
			} else {
				g.PendingDeadlines = append(g.PendingDeadlines, t)
			}
		case model.KindTodo:
			g.Todos = append(g.Todos, t)
		case model.KindEvent:
			g.Events = append(g.Events, t)
		}
	}
	byDue := func(a, b *model.Task) int { return a.Due().Compare(b.Due()) }
	slices.SortStableFunc(g.PendingDeadlines, byDue)
	slices.SortStableFunc(g.DoneDeadlines, byDue)
	return g
}

// FormatGrouped renders the sort view. Empty sections are left out.
func (l *List) FormatGrouped() string {
	if l.Len() == 0 {
		return EmptyMessage
	}
	g := l.Grouped()
	sections := []struct {
		title string
		tasks []*model.Task
	}{
		{"Deadlines (not done):", g.PendingDeadlines},
		{"Deadlines (done):", g.DoneDeadlines},
		{"Todos:", g.Todos},
		{"Events:", g.Events},
	}
	var b strings.Builder
	b.WriteString("Here are your tasks, grouped:")
	for _, s := range sections {
		if len(s.tasks) == 0 {
			continue
		}
		b.WriteString("\n" + s.title)
		for _, t := range s.tasks {
			b.WriteString("\n  " + t.String())
		}
	}
	return b.String()
}

const EmptyMessage = "Your task list is empty."

// Format numbers the tasks from 1 under header.
func (l *List) Format(header string) string {
	var b strings.Builder
	b.WriteString(header)
	for i, t := range l.tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return b.String()
}
