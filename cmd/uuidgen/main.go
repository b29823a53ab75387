// Command uuidgen generates and decodes RFC 4122 UUIDs.
//
// Generated identifiers go to stdout by default, or in batches to a SQLite
// or MySQL table or a Redis list (--sink).
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TomRegan/uuid"
	"github.com/TomRegan/uuid/internal/config"
	"github.com/TomRegan/uuid/internal/logging"
	"github.com/TomRegan/uuid/internal/sink"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cancel()
		os.Exit(1)
	}
}

// app carries state resolved once per invocation by the root command.
type app struct {
	cfg        config.Config
	logger     *slog.Logger
	closer     io.Closer
	prevLogger *slog.Logger
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) close() {
	if a.prevLogger != nil {
		slog.SetDefault(a.prevLogger)
	}
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "uuidgen",
		Short:             "Generate and inspect RFC 4122 UUIDs",
		Long:              "uuidgen creates version 1, 3, 4 and 5 UUIDs and decodes existing ones.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := rootCmd.PersistentFlags()
	pf.String("config", os.Getenv("UUIDGEN_CONFIG"), "Config file (.toml, .yaml or .yml)")
	pf.String("sink", "", "Where generated UUIDs go: stdout|sqlite|mysql|redis")
	pf.String("dsn", "", "Data source for the sqlite, mysql or redis sink")
	pf.String("log-level", "", "Log level: debug|info|warn|error")
	pf.String("log-file", "", "Write logs to this file, rotated by size (default stderr)")

	rootCmd.AddCommand(
		a.countCmd("v1", "Generate time-based UUIDs", uuid.NewV1),
		a.countCmd("v4", "Generate random UUIDs", uuid.NewV4),
		a.nameCmd("v3", "Generate name-based UUIDs using MD5", uuid.NewV3),
		a.nameCmd("v5", "Generate name-based UUIDs using SHA-1", uuid.NewV5),
		nilCmd(),
		inspectCmd(),
		sortCmd(),
	)
	return rootCmd
}

// setup resolves configuration in order defaults, file, environment, flags
// and installs the logger before any UUID is generated.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.FromEnv(&cfg)

	flags := cmd.Flags()
	if flags.Changed("sink") {
		cfg.Sink.Kind, _ = flags.GetString("sink")
	}
	if flags.Changed("dsn") {
		cfg.Sink.DSN, _ = flags.GetString("dsn")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.closer = cfg, logger, closer
	a.prevLogger = slog.Default()
	slog.SetDefault(logger)
	return nil
}

// emit delivers n identifiers from next to the configured sink.
func (a *app) emit(cmd *cobra.Command, n int, next func() uuid.UUID) error {
	ctx := cmd.Context()
	s, err := sink.Open(ctx, a.cfg.Sink, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := sink.Emit(ctx, s, n, a.cfg.Sink.BatchSize, next); err != nil {
		return err
	}
	a.logger.Debug("uuids written", "count", n, "sink", a.cfg.Sink.Kind)
	return s.Close()
}

func (a *app) countCmd(use, short string, gen func() uuid.UUID) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("count")
			if n < 0 {
				return fmt.Errorf("invalid --count %d", n)
			}
			return a.emit(cmd, n, gen)
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of UUIDs to generate")
	return cmd
}

func (a *app) nameCmd(use, short string, gen func(uuid.UUID, string) uuid.UUID) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " NAME...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := a.cfg.Namespace
			if cmd.Flags().Changed("namespace") {
				ns, _ = cmd.Flags().GetString("namespace")
			}
			space, err := parseNamespace(ns)
			if err != nil {
				return err
			}
			i := 0
			return a.emit(cmd, len(args), func() uuid.UUID {
				u := gen(space, args[i])
				i++
				return u
			})
		},
	}
	cmd.Flags().String("namespace", "", "dns|url|oid|x500 or a namespace UUID (default from config)")
	return cmd
}

// parseNamespace accepts a well-known namespace name or any UUID.
func parseNamespace(s string) (uuid.UUID, error) {
	if space, ok := uuid.LookupNamespace(s); ok {
		return space, nil
	}
	space, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("namespace %q: %w", s, err)
	}
	return space, nil
}

func nilCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nil",
		Short: "Print the nil UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), uuid.Nil)
			return err
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect UUID...",
		Short: "Decode the fields of UUIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, arg := range args {
				u, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				describe(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}

func describe(w io.Writer, u uuid.UUID) {
	fmt.Fprintf(w, "uuid:      %s\n", u)
	fmt.Fprintf(w, "version:   %d (%s)\n", u.Version(), u.Version())
	fmt.Fprintf(w, "variant:   %s\n", u.Variant())
	ts, err := u.Timestamp()
	if err != nil {
		return
	}
	seq, _ := u.ClockSequence()
	node, _ := u.NodeID()
	fmt.Fprintf(w, "time:      %s\n", ts.Time().Format("2006-01-02T15:04:05.0000000Z07:00"))
	fmt.Fprintf(w, "timestamp: %d\n", ts)
	fmt.Fprintf(w, "clock seq: %d\n", seq)
	fmt.Fprintf(w, "node:      %s", node)
	if node.IsRandom() {
		fmt.Fprint(w, " (random)")
	}
	fmt.Fprintln(w)
}

func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort UUID...",
		Short: "Print UUIDs in unsigned byte order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uuid.UUID, 0, len(args))
			for _, arg := range args {
				u, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				ids = append(ids, u)
			}
			slices.SortFunc(ids, uuid.Compare)
			for _, u := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
