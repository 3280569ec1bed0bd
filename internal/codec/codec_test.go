package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/candy/internal/model"
)

func mustTodo(t *testing.T, desc string) *model.Task {
	t.Helper()
	task, err := model.NewTodo(desc)
	if err != nil {
		t.Fatalf("new todo: %v", err)
	}
	return task
}

func TestEncode(t *testing.T) {
	todo := mustTodo(t, "read book")
	deadline, _ := model.NewDeadline("submit", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	deadline.MarkDone()
	event, _ := model.NewEvent("trip", "mon", "fri")

	cases := []struct {
		task *model.Task
		want string
	}{
		{todo, "T | 0 | read book"},
		{deadline, "D | 1 | submit | 2024-01-05"},
		{event, "E | 0 | trip | mon | fri"},
	}
	for _, tc := range cases {
		if got := Encode(tc.task); got != tc.want {
			t.Fatalf("Encode = %q, want %q", got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	done := mustTodo(t, "done todo")
	done.MarkDone()
	deadline, _ := model.NewDeadline("pay bill", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	event, _ := model.NewEvent("conference", "2024-05-01 9am", "2024-05-03")
	event.MarkDone()

	for _, task := range []*model.Task{mustTodo(t, "plain"), done, deadline, event} {
		line := Encode(task)
		got, ok, err := Decode(line)
		if err != nil || !ok {
			t.Fatalf("decode %q: ok=%v err=%v", line, ok, err)
		}
		if !got.Equal(task) {
			t.Fatalf("round trip mismatch for %q: got %v", line, got)
		}
	}
}

func TestDecodeToleratesWhitespace(t *testing.T) {
	got, ok, err := Decode("  D|1|   pay bill   |2024-03-01  ")
	if err != nil || !ok {
		t.Fatalf("decode failed: ok=%v err=%v", ok, err)
	}
	if got.Kind() != model.KindDeadline || !got.Done() || got.Description() != "pay bill" {
		t.Fatalf("unexpected task: %v", got)
	}
}

func TestDecodeDropsSilently(t *testing.T) {
	cases := []string{
		"",
		"T | 1",
		"T | 0 | ",
		"X | 0 | something",
		"t | 0 | lowercase tag",
		"TD | 0 | two letters | 2024-01-05",
		"D | 0 | no date",
		"E | 0 | trip | mon",
	}
	for _, line := range cases {
		task, ok, err := Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q) unexpected error: %v", line, err)
		}
		if ok || task != nil {
			t.Fatalf("Decode(%q) expected drop, got %v", line, task)
		}
	}
}

func TestDecodeReportsBadDate(t *testing.T) {
	_, ok, err := Decode("D | 0 | pay bill | someday")
	if ok {
		t.Fatal("expected not ok")
	}
	if !errors.Is(err, model.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestDecodeDoneFlag(t *testing.T) {
	for line, want := range map[string]bool{
		"T | 1 | a": true,
		"T | 0 | a": false,
		"T | y | a": false,
	} {
		task, ok, err := Decode(line)
		if err != nil || !ok {
			t.Fatalf("decode %q: ok=%v err=%v", line, ok, err)
		}
		if task.Done() != want {
			t.Fatalf("decode %q done = %v, want %v", line, task.Done(), want)
		}
	}
}

func TestDecodeAll(t *testing.T) {
	lines := []string{
		"T | 0 | first",
		"garbage",
		"D | 0 | broken | 2024-13-01",
		"E | 1 | second | a | b",
		"Q | 0 | unknown",
	}
	tasks, errs := DecodeAll(lines)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description() != "first" || tasks[1].Description() != "second" {
		t.Fatalf("unexpected order: %v, %v", tasks[0], tasks[1])
	}
	if len(errs) != 1 || !errors.Is(errs[0], model.ErrInvalidDate) {
		t.Fatalf("expected one date error, got %v", errs)
	}
}
