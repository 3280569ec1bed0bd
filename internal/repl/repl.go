package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandeepkv93/candy/internal/executor"
)

// REPL is the plain console loop. It reads one command per line from In and
// writes each response to Out.
type REPL struct {
	Session *executor.Session
	In      io.Reader
	Out     io.Writer
	Prompt  string
}

func New(session *executor.Session) *REPL {
	return &REPL{Session: session, In: os.Stdin, Out: os.Stdout}
}

// Run loops until bye, end of input or ctx is done. Startup warnings are
// printed once before the greeting.
func (r *REPL) Run(ctx context.Context, warnings []error) error {
	if r.In == nil {
		r.In = os.Stdin
	}
	if r.Out == nil {
		r.Out = os.Stdout
	}
	for _, w := range warnings {
		fmt.Fprintln(r.Out, executor.DescribeLoadWarning(w))
	}
	fmt.Fprintln(r.Out, executor.Greeting)

	// Lines of any length are accepted.
	reader := bufio.NewReader(r.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Prompt != "" {
			fmt.Fprint(r.Out, r.Prompt)
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
		res := r.Session.Respond(ctx, strings.TrimRight(line, "\r\n"))
		fmt.Fprintln(r.Out, res.Message)
		if res.Warning != "" {
			fmt.Fprintln(r.Out, res.Warning)
		}
		if res.Exit || errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}
