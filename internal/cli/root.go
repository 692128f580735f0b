package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Joseda-hg/todo/internal/config"
	"github.com/Joseda-hg/todo/internal/session"
	"github.com/Joseda-hg/todo/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	verbose    bool
	useTUI     bool
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "todo",
		Short: "A small interactive to-do list",
		Long: `todo keeps a list of tasks in a local SQLite file.

Run it without arguments for the interactive menu: view, add, delete and
modify tasks. Tasks due within the reminder window are listed at startup.`,
		RunE:          runSession,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite db path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "run the session in a full-screen terminal UI")

	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	fullScreen := cfg.UI == config.UITUI && isTerminal(in)
	logOut := cmd.ErrOrStderr()
	if fullScreen {
		logOut = io.Discard
	}
	logger, closeLog, err := newLogger(cfg, logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	run := func(ctx context.Context, console session.Console) error {
		sess := session.New(store, console, sessionOptions(cfg, logger))
		stop, err := startReminders(cfg, sess, logger)
		if err != nil {
			return err
		}
		defer stop()
		return sess.Run(ctx)
	}

	if fullScreen {
		return tui.Run(cmd.Context(), run)
	}
	if cfg.UI == config.UITUI {
		logger.Printf("stdin is not a terminal, using line mode")
	}
	return run(cmd.Context(), session.NewLineConsole(in, cmd.OutOrStdout()))
}
