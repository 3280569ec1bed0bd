// Package cli wires configuration, storage and the two front-ends behind a
// cobra root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/candy/internal/commands"
	"github.com/sandeepkv93/candy/internal/config"
	"github.com/sandeepkv93/candy/internal/executor"
	"github.com/sandeepkv93/candy/internal/repl"
	"github.com/sandeepkv93/candy/internal/storage"
	"github.com/sandeepkv93/candy/internal/update"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// Execute runs the CLI with the given arguments and writers and returns the
// process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(stdin, stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candy",
		Short:   "A personal task tracker",
		Long:    "candy keeps todos, deadlines and events in a plain text file and talks to you one command at a time.",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			session, warnings, closeStore, err := openSession(cmd.Context(), cfg, stderr)
			if err != nil {
				return err
			}
			defer closeStore()

			if cfg.Plain {
				r := repl.New(session)
				r.In = stdin
				r.Out = stdout
				return r.Run(cmd.Context(), warnings)
			}
			model := update.NewModelWithConfig(cmd.Context(), session, cfg, warnings)
			program := tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stdout), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("candy failed: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("file", "f", "", "Data file path (default "+config.DefaultDataFile+")")
	cmd.PersistentFlags().String("store", "", "Storage backend: file or sqlite")
	cmd.PersistentFlags().Bool("strict-events", false, "Require yyyy-mm-dd event dates with start before end")
	cmd.PersistentFlags().BoolP("verbose", "V", false, "Log storage problems to stderr")
	cmd.Flags().Bool("plain", false, "Use the plain line loop instead of the terminal UI")

	cmd.AddCommand(newExecCmd(stdout, stderr))
	return cmd
}

// newExecCmd runs a single command line, prints the response and exits.
// Flags must come before the command words so task text is passed through
// untouched.
func newExecCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run one command against the task list and print the response",
		Example: `  candy exec todo buy milk
  candy exec deadline return book /by 2019-10-15
  candy exec list`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			session, warnings, closeStore, err := openSession(cmd.Context(), cfg, stderr)
			if err != nil {
				return err
			}
			defer closeStore()

			for _, w := range warnings {
				_, _ = fmt.Fprintln(stderr, executor.DescribeLoadWarning(w))
			}
			res := session.Respond(cmd.Context(), strings.Join(args, " "))
			_, _ = fmt.Fprintln(stdout, res.Message)
			if res.Warning != "" {
				_, _ = fmt.Fprintln(stderr, res.Warning)
			}
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// resolveConfig layers flags over the environment over the defaults.
func resolveConfig(cmd *cobra.Command) (config.RuntimeConfig, error) {
	cfg := config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
	flags := cmd.Flags()

	if flags.Changed("file") {
		v, _ := flags.GetString("file")
		if strings.TrimSpace(v) == "" {
			return cfg, fmt.Errorf("--file must not be empty")
		}
		cfg.DataFile = v
	}
	if flags.Changed("store") {
		v, _ := flags.GetString("store")
		kind := storage.Kind(strings.ToLower(strings.TrimSpace(v)))
		if !kind.IsValid() {
			return cfg, fmt.Errorf("unknown store %q (want file or sqlite)", v)
		}
		cfg.Store = kind
	}
	if flags.Changed("strict-events") {
		cfg.StrictEvents, _ = flags.GetBool("strict-events")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Lookup("plain") != nil && flags.Changed("plain") {
		cfg.Plain, _ = flags.GetBool("plain")
	}
	return cfg, nil
}

// openSession opens the configured store and loads it. Load problems are
// returned as warnings; only a store that cannot be opened at all is an error.
func openSession(ctx context.Context, cfg config.RuntimeConfig, stderr io.Writer) (*executor.Session, []error, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := storage.Open(cfg.Store, cfg.DataFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	opts := []executor.Option{
		executor.WithParseOptions(commands.Options{StrictEvents: cfg.StrictEvents}),
	}
	if cfg.Verbose {
		if stderr == nil {
			stderr = os.Stderr
		}
		opts = append(opts, executor.WithLogger(log.New(stderr, "candy: ", log.LstdFlags)))
	}
	session := executor.New(store, opts...)
	warnings := session.Load(ctx)
	return session, warnings, func() { _ = store.Close() }, nil
}
