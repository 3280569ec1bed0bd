// Package executor applies parsed commands to the task list and keeps the
// persisted file in step with it.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sandeepkv93/candy/internal/codec"
	"github.com/sandeepkv93/candy/internal/commands"
	"github.com/sandeepkv93/candy/internal/model"
	"github.com/sandeepkv93/candy/internal/storage"
	"github.com/sandeepkv93/candy/internal/tasklist"
)

const (
	Greeting   = "Hello! I'm Candy\nWhat can I do for you?"
	ByeMessage = "Bye. Hope to see you again soon!"

	listHeader = "Here are your tasks:"
	findHeader = "Here are the matching tasks in your list:"
)

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithParseOptions(opts commands.Options) Option {
	return func(s *Session) { s.parseOpts = opts }
}

// Session owns the task list for the lifetime of the process. It is not safe
// for concurrent use.
type Session struct {
	tasks     *tasklist.List
	store     storage.Gateway
	logger    *log.Logger
	parseOpts commands.Options
	handlers  commands.Handlers
}

func New(store storage.Gateway, opts ...Option) *Session {
	s := &Session{
		tasks:  tasklist.New(),
		store:  store,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = s.buildHandlers()
	return s
}

func (s *Session) Tasks() *tasklist.List { return s.tasks }

// Load replaces the in-memory list with the persisted one. The returned
// warnings are non-fatal: an unreadable store yields a *storage.Warning and an
// empty list, and every line with a corrupt date is reported once and skipped.
func (s *Session) Load(ctx context.Context) []error {
	s.tasks = tasklist.New()
	if s.store == nil {
		return nil
	}
	lines, err := s.store.LoadLines(ctx)
	if err != nil {
		w := &storage.Warning{Op: storage.OpLoad, Err: err}
		s.logger.Printf("%v", w)
		return []error{w}
	}
	loaded, errs := codec.DecodeAll(lines)
	for _, t := range loaded {
		s.tasks.Add(t)
	}
	for _, e := range errs {
		s.logger.Printf("skipping corrupted line: %v", e)
	}
	return errs
}

// Respond parses and executes one line of user input and always produces
// something to display.
func (s *Session) Respond(ctx context.Context, line string) commands.Result {
	cmd, err := commands.ParseWith(line, s.parseOpts)
	if err != nil {
		return commands.Result{Message: commands.Describe(err)}
	}
	res, err := s.Execute(ctx, cmd)
	if err != nil {
		return commands.Result{Message: commands.Describe(err)}
	}
	return res
}

func (s *Session) Execute(ctx context.Context, cmd commands.Command) (commands.Result, error) {
	res, err := commands.Execute(cmd, s.handlers)
	if err != nil {
		return res, err
	}
	if mutates(cmd.Type) {
		if warn := s.save(ctx); warn != nil {
			res.Warning = warn.Message()
		}
	}
	return res, nil
}

func mutates(t commands.Type) bool {
	switch t {
	case commands.TypeMark, commands.TypeUnmark, commands.TypeDelete,
		commands.TypeTodo, commands.TypeDeadline, commands.TypeEvent, commands.TypeBye:
		return true
	default:
		return false
	}
}

func (s *Session) save(ctx context.Context) *storage.Warning {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveLines(ctx, s.tasks.Lines()); err != nil {
		w := &storage.Warning{Op: storage.OpSave, Err: err}
		s.logger.Printf("%v", w)
		return w
	}
	return nil
}

func (s *Session) buildHandlers() commands.Handlers {
	return commands.Handlers{
		Bye: func() (commands.Result, error) {
			return commands.Result{Message: ByeMessage, Exit: true}, nil
		},
		List: func() (commands.Result, error) {
			if s.tasks.Len() == 0 {
				return commands.Result{Message: tasklist.EmptyMessage}, nil
			}
			return commands.Result{Message: s.tasks.Format(listHeader)}, nil
		},
		Help: func() (commands.Result, error) {
			return commands.Result{Message: HelpText()}, nil
		},
		Sort: func() (commands.Result, error) {
			return commands.Result{Message: s.tasks.FormatGrouped()}, nil
		},
		Find: func(a commands.FindArgs) (commands.Result, error) {
			matches := s.tasks.Find(a.Keyword)
			if matches.Len() == 0 {
				return commands.Result{Message: "No matching tasks found for: " + a.Keyword}, nil
			}
			return commands.Result{Message: matches.Format(findHeader)}, nil
		},
		Mark: func(a commands.IndexArgs) (commands.Result, error) {
			t, err := s.tasks.Mark(a.Index)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "Nice! I've marked this task as done:\n" + t.String()}, nil
		},
		Unmark: func(a commands.IndexArgs) (commands.Result, error) {
			t, err := s.tasks.Unmark(a.Index)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "OK, I've marked this task as not done yet:\n" + t.String()}, nil
		},
		Delete: func(a commands.IndexArgs) (commands.Result, error) {
			t, err := s.tasks.Remove(a.Index)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("Noted. I've removed this task:\n%s\nNow you have %d tasks in the list.", t, s.tasks.Len())}, nil
		},
		Todo: func(a commands.TodoArgs) (commands.Result, error) {
			return s.add(model.NewTodo(a.Description))
		},
		Deadline: func(a commands.DeadlineArgs) (commands.Result, error) {
			return s.add(model.NewDeadline(a.Description, a.Due))
		},
		Event: func(a commands.EventArgs) (commands.Result, error) {
			return s.add(model.NewEvent(a.Description, a.From, a.To))
		},
	}
}

func (s *Session) add(t *model.Task, err error) (commands.Result, error) {
	if err != nil {
		if errors.Is(err, model.ErrEmptyDescription) {
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidFormat, Message: "The description of a task cannot be empty."}
		}
		return commands.Result{}, err
	}
	s.tasks.Add(t)
	return commands.Result{Message: fmt.Sprintf("Got it. I've added this task:\n%s\nNow you have %d tasks in the list.", t, s.tasks.Len())}, nil
}

// HelpText lists every command with its usage.
func HelpText() string {
	lines := make([]string, 0, len(commands.Usage)+1)
	lines = append(lines, "Available commands:")
	for _, u := range commands.Usage {
		lines = append(lines, u.Form)
	}
	return strings.Join(lines, "\n")
}

// DescribeLoadWarning turns an error returned by Load into display text.
func DescribeLoadWarning(err error) string {
	var w *storage.Warning
	if errors.As(err, &w) {
		return w.Message()
	}
	var le *codec.LineError
	if errors.As(err, &le) {
		return "Warning: skipped a saved task with an invalid date: " + le.Line
	}
	return "Warning: " + err.Error()
}
