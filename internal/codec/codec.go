// Package codec converts tasks to and from the one-line-per-task persisted
// form: TYPE | doneFlag | description [| extra1 [| extra2]].
package codec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sandeepkv93/candy/internal/model"
)

const (
	Delimiter = "|"

	flagDone    = "1"
	flagPending = "0"
)

var fieldSplitter = regexp.MustCompile(`\s*\|\s*`)

// LineError reports a structurally valid line that could not be decoded.
type LineError struct {
	Line string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("codec: line %q: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

func Encode(t *model.Task) string {
	done := flagPending
	if t.Done() {
		done = flagDone
	}
	fields := []string{string(t.Kind()), done, t.Description()}
	switch t.Kind() {
	case model.KindDeadline:
		fields = append(fields, model.FormatDate(t.Due()))
	case model.KindEvent:
		fields = append(fields, t.From(), t.To())
	}
	return strings.Join(fields, " "+Delimiter+" ")
}

// Decode parses one persisted line. ok is false for lines that are dropped
// silently: too few fields, an unknown type tag or a missing variant field.
// A deadline whose date does not parse is reported as an error instead.
func Decode(line string) (task *model.Task, ok bool, err error) {
	fields := splitFields(line)
	if len(fields) < 3 {
		return nil, false, nil
	}
	kind := model.Kind(fields[0])
	if !kind.IsValid() {
		return nil, false, nil
	}
	done := fields[1] == flagDone
	description := fields[2]

	switch kind {
	case model.KindTodo:
		task, err = model.NewTodo(description)
	case model.KindDeadline:
		if len(fields) < 4 {
			return nil, false, nil
		}
		due, dateErr := model.ParseDate(fields[3])
		if dateErr != nil {
			return nil, false, &LineError{Line: line, Err: dateErr}
		}
		task, err = model.NewDeadline(description, due)
	case model.KindEvent:
		if len(fields) < 5 {
			return nil, false, nil
		}
		task, err = model.NewEvent(description, fields[3], fields[4])
	}
	if err != nil {
		return nil, false, nil
	}
	if done {
		task.MarkDone()
	}
	return task, true, nil
}

// DecodeAll applies the load policy to a whole file: dropped lines vanish,
// lines with a corrupt date are skipped and reported once each.
func DecodeAll(lines []string) ([]*model.Task, []error) {
	tasks := make([]*model.Task, 0, len(lines))
	var errs []error
	for _, line := range lines {
		task, ok, err := Decode(line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, errs
}

func splitFields(line string) []string {
	parts := fieldSplitter.Split(line, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	// Trailing empty fields carry no information and are not counted.
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
