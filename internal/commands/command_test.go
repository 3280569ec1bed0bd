package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"bye", TypeBye},
		{"  list  ", TypeList},
		{"help", TypeHelp},
		{"sort", TypeSort},
		{"mark 2", TypeMark},
		{"unmark 1", TypeUnmark},
		{"delete 3", TypeDelete},
		{"todo read book", TypeTodo},
		{"deadline submit /by 2024-01-05", TypeDeadline},
		{"event trip /from mon /to fri", TypeEvent},
		{"find milk", TypeFind},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParsePayloads(t *testing.T) {
	cmd, err := Parse("todo read book")
	if err != nil || cmd.Todo == nil || cmd.Todo.Description != "read book" {
		t.Fatalf("todo payload = %+v, err %v", cmd.Todo, err)
	}

	cmd, err = Parse("deadline submit /by 2024-01-05")
	if err != nil || cmd.Deadline == nil {
		t.Fatalf("deadline parse failed: %v", err)
	}
	if cmd.Deadline.Description != "submit" || cmd.Deadline.By != "2024-01-05" {
		t.Fatalf("unexpected deadline payload: %+v", cmd.Deadline)
	}
	if cmd.Deadline.Due.Day() != 5 || cmd.Deadline.Due.Month() != 1 {
		t.Fatalf("unexpected due date: %v", cmd.Deadline.Due)
	}

	cmd, err = Parse("event trip /from mon /to fri")
	if err != nil || cmd.Event == nil {
		t.Fatalf("event parse failed: %v", err)
	}
	if cmd.Event.Description != "trip" || cmd.Event.From != "mon" || cmd.Event.To != "fri" {
		t.Fatalf("unexpected event payload: %+v", cmd.Event)
	}

	cmd, err = Parse("mark 1")
	if err != nil || cmd.Target == nil || cmd.Target.Index != 0 {
		t.Fatalf("mark payload = %+v, err %v", cmd.Target, err)
	}

	cmd, err = Parse("find MILK")
	if err != nil || cmd.Find.Keyword != "MILK" {
		t.Fatalf("find payload = %+v, err %v", cmd.Find, err)
	}
}

func TestParseSplitsOnFirstSeparator(t *testing.T) {
	cmd, err := Parse("deadline a /by 2024-01-05 /by 2024-02-01")
	if err == nil {
		t.Fatalf("expected trailing text to make the date invalid, got %+v", cmd.Deadline)
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidDate {
		t.Fatalf("expected invalid date, got %v", err)
	}

	cmd, err = Parse("event party /from 7pm /to 9pm /to midnight")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Event.From != "7pm" || cmd.Event.To != "9pm /to midnight" {
		t.Fatalf("unexpected split: %+v", cmd.Event)
	}
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
		msg  string
	}{
		{"", ErrCodeEmptyInput, msgEmptyInput},
		{"   ", ErrCodeEmptyInput, msgEmptyInput},
		{"foo", ErrCodeUnknownCommand, msgUnknownCommand},
		{"LIST", ErrCodeUnknownCommand, msgUnknownCommand},
		{"deadline buy milk", ErrCodeInvalidFormat, "Please use format: deadline <task> /by <yyyy-mm-dd>"},
		{"deadline /by 2024-01-05", ErrCodeInvalidFormat, "Please use format: deadline <task> /by <yyyy-mm-dd>"},
		{"deadline pay /by tomorrow", ErrCodeInvalidDate, msgInvalidDate},
		{"event trip /from mon", ErrCodeInvalidFormat, "Please use format: event <task> /from <start> /to <end>"},
		{"event trip /to fri", ErrCodeInvalidFormat, "Please use format: event <task> /from <start> /to <end>"},
		{"todo", ErrCodeInvalidFormat, "Please use format: todo <task>"},
		{"todo   ", ErrCodeInvalidFormat, "Please use format: todo <task>"},
		{"todo a | b", ErrCodeInvalidFormat, msgDelimiter},
		{"todo first\nsecond half", ErrCodeInvalidFormat, msgDelimiter},
		{"todo first\rsecond", ErrCodeInvalidFormat, msgDelimiter},
		{"deadline pay\nrent /by 2024-01-05", ErrCodeInvalidFormat, msgDelimiter},
		{"event trip /from mon\nday /to fri", ErrCodeInvalidFormat, msgDelimiter},
		{"find", ErrCodeInvalidFormat, "Please use format: find <keyword>"},
		{"mark", ErrCodeInvalidFormat, msgNoIndex},
		{"mark abc", ErrCodeInvalidFormat, msgBadIndex},
		{"delete 0", ErrCodeInvalidFormat, msgIndexTooSmall},
		{"unmark -4", ErrCodeInvalidFormat, msgIndexTooSmall},
		{"list all", ErrCodeInvalidFormat, "Please use format: list"},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) {
			t.Fatalf("parse %q: expected CommandError, got %v", tc.in, err)
		}
		if ce.Code != tc.code || ce.Message != tc.msg {
			t.Fatalf("parse %q = %s/%q, want %s/%q", tc.in, ce.Code, ce.Message, tc.code, tc.msg)
		}
	}
}

func TestParseStrictEvents(t *testing.T) {
	opts := Options{StrictEvents: true}
	if _, err := ParseWith("event trip /from 2024-01-01 /to 2024-01-03", opts); err != nil {
		t.Fatalf("strict event with dates failed: %v", err)
	}

	_, err := ParseWith("event trip /from mon /to fri", opts)
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidDate {
		t.Fatalf("expected invalid date, got %v", err)
	}

	_, err = ParseWith("event trip /from 2024-01-03 /to 2024-01-01", opts)
	if !errors.As(err, &ce) || ce.Message != msgEventOrder {
		t.Fatalf("expected order error, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	_, err := Parse("foo")
	if got := Describe(err); got != msgUnknownCommand {
		t.Fatalf("Describe = %q", got)
	}
	if got := Describe(errors.New("boom")); got != "boom" {
		t.Fatalf("Describe plain = %q", got)
	}
	if Describe(nil) != "" {
		t.Fatal("Describe(nil) should be empty")
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("todo write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Todo: func(a TodoArgs) (Result, error) {
			called = true
			if a.Description != "write docs" {
				t.Fatalf("unexpected description: %q", a.Description)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("list")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
