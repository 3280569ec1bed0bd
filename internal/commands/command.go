package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/candy/internal/model"
)

type Type string

const (
	TypeBye      Type = "bye"
	TypeList     Type = "list"
	TypeHelp     Type = "help"
	TypeSort     Type = "sort"
	TypeMark     Type = "mark"
	TypeUnmark   Type = "unmark"
	TypeDelete   Type = "delete"
	TypeTodo     Type = "todo"
	TypeDeadline Type = "deadline"
	TypeEvent    Type = "event"
	TypeFind     Type = "find"
)

type ErrorCode string

const (
	ErrCodeEmptyInput     ErrorCode = "empty_input"
	ErrCodeUnknownCommand ErrorCode = "unknown_command"
	ErrCodeInvalidFormat  ErrorCode = "invalid_format"
	ErrCodeInvalidDate    ErrorCode = "invalid_date"
	ErrCodeHandlerMissing ErrorCode = "handler_missing"
)

// CommandError is a parse or dispatch failure. Message is shown to the user
// as is; for invalid_format it carries the usage hint.
type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	msgEmptyInput     = "Please enter a command. Type 'help' to see available commands."
	msgUnknownCommand = "Unknown command. Type 'help' to see available commands."
	msgInvalidDate    = "Date must be yyyy-mm-dd (example: 2019-10-15)"
	msgNoIndex        = "Please provide a task number."
	msgBadIndex       = "Please enter a valid task number."
	msgIndexTooSmall  = "Task number must be >= 1."
	msgEventOrder     = "Event start date must be before end date."
	msgDelimiter      = "Task fields cannot contain the '|' character or line breaks."
)

const (
	sepBy   = " /by "
	sepFrom = " /from "
	sepTo   = " /to "
)

// Usage lists the accepted form of every command, in help order.
var Usage = []struct {
	Type Type
	Form string
}{
	{TypeList, "list"},
	{TypeTodo, "todo <task>"},
	{TypeDeadline, "deadline <task> /by <yyyy-mm-dd>"},
	{TypeEvent, "event <task> /from <start> /to <end>"},
	{TypeMark, "mark <task number>"},
	{TypeUnmark, "unmark <task number>"},
	{TypeDelete, "delete <task number>"},
	{TypeFind, "find <keyword>"},
	{TypeSort, "sort"},
	{TypeHelp, "help"},
	{TypeBye, "bye"},
}

func usageOf(t Type) string {
	for _, u := range Usage {
		if u.Type == t {
			return u.Form
		}
	}
	return string(t)
}

func formatError(t Type) *CommandError {
	return &CommandError{Code: ErrCodeInvalidFormat, Message: "Please use format: " + usageOf(t)}
}

// IndexArgs addresses a task by its zero-based position.
type IndexArgs struct {
	Index int
}

type TodoArgs struct {
	Description string
}

type DeadlineArgs struct {
	Description string
	By          string
	Due         time.Time
}

type EventArgs struct {
	Description string
	From        string
	To          string
}

type FindArgs struct {
	Keyword string
}

type Command struct {
	Type     Type
	Raw      string
	Target   *IndexArgs
	Todo     *TodoArgs
	Deadline *DeadlineArgs
	Event    *EventArgs
	Find     *FindArgs
}

type Options struct {
	// StrictEvents requires event times to be yyyy-mm-dd dates with from <= to.
	StrictEvents bool
}

func Parse(input string) (Command, error) {
	return ParseWith(input, Options{})
}

func ParseWith(input string, opts Options) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: msgEmptyInput}
	}

	head, args := splitHead(raw)
	switch Type(head) {
	case TypeBye, TypeList, TypeHelp, TypeSort:
		if args != "" {
			return Command{}, formatError(Type(head))
		}
		return Command{Type: Type(head), Raw: input}, nil
	case TypeMark, TypeUnmark, TypeDelete:
		return parseIndex(input, Type(head), raw)
	case TypeTodo:
		return parseTodo(input, args)
	case TypeDeadline:
		return parseDeadline(input, args)
	case TypeEvent:
		return parseEvent(input, args, opts)
	case TypeFind:
		return parseFind(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: msgUnknownCommand}
	}
}

// splitHead separates the command word from the trimmed remainder.
func splitHead(raw string) (string, string) {
	i := strings.IndexFunc(raw, isSpace)
	if i < 0 {
		return raw, ""
	}
	return raw[:i], strings.TrimSpace(raw[i:])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func parseIndex(input string, t Type, raw string) (Command, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidFormat, Message: msgNoIndex}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidFormat, Message: msgBadIndex}
	}
	if n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidFormat, Message: msgIndexTooSmall}
	}
	return Command{Type: t, Raw: input, Target: &IndexArgs{Index: n - 1}}, nil
}

func parseTodo(input, args string) (Command, error) {
	if args == "" {
		return Command{}, formatError(TypeTodo)
	}
	if err := checkDelimiter(args); err != nil {
		return Command{}, err
	}
	return Command{Type: TypeTodo, Raw: input, Todo: &TodoArgs{Description: args}}, nil
}

func parseDeadline(input, args string) (Command, error) {
	desc, by, found := strings.Cut(args, sepBy)
	if !found {
		return Command{}, formatError(TypeDeadline)
	}
	desc, by = strings.TrimSpace(desc), strings.TrimSpace(by)
	if desc == "" || by == "" {
		return Command{}, formatError(TypeDeadline)
	}
	if err := checkDelimiter(desc); err != nil {
		return Command{}, err
	}
	due, err := model.ParseDate(by)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidDate, Message: msgInvalidDate}
	}
	return Command{Type: TypeDeadline, Raw: input, Deadline: &DeadlineArgs{Description: desc, By: by, Due: due}}, nil
}

func parseEvent(input, args string, opts Options) (Command, error) {
	desc, times, found := strings.Cut(args, sepFrom)
	if !found {
		return Command{}, formatError(TypeEvent)
	}
	from, to, found := strings.Cut(times, sepTo)
	if !found {
		return Command{}, formatError(TypeEvent)
	}
	desc, from, to = strings.TrimSpace(desc), strings.TrimSpace(from), strings.TrimSpace(to)
	if desc == "" || from == "" || to == "" {
		return Command{}, formatError(TypeEvent)
	}
	for _, field := range []string{desc, from, to} {
		if err := checkDelimiter(field); err != nil {
			return Command{}, err
		}
	}
	if opts.StrictEvents {
		if _, _, err := model.ParseDateRange(from, to); err != nil {
			if errors.Is(err, model.ErrEventRangeInverse) {
				return Command{}, &CommandError{Code: ErrCodeInvalidFormat, Message: msgEventOrder}
			}
			return Command{}, &CommandError{Code: ErrCodeInvalidDate, Message: msgInvalidDate}
		}
	}
	return Command{Type: TypeEvent, Raw: input, Event: &EventArgs{Description: desc, From: from, To: to}}, nil
}

func parseFind(input, args string) (Command, error) {
	if args == "" {
		return Command{}, formatError(TypeFind)
	}
	return Command{Type: TypeFind, Raw: input, Find: &FindArgs{Keyword: args}}, nil
}

// checkDelimiter rejects text that would split or corrupt a persisted line.
func checkDelimiter(field string) error {
	if strings.ContainsAny(field, "|\r\n") {
		return &CommandError{Code: ErrCodeInvalidFormat, Message: msgDelimiter}
	}
	return nil
}

// Describe turns any error from Parse, Execute or a handler into the text
// shown to the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
