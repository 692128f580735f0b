package cli

import (
	"fmt"

	"github.com/Joseda-hg/todo/internal/session"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Print tasks due soon and exit",
	Long: `Print the tasks due within the reminder window and exit.

Useful from cron or a login script.`,
	Args: cobra.NoArgs,
	RunE: runRemind,
}

func runRemind(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	console := session.NewLineConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	sess := session.New(store, console, sessionOptions(cfg, logger))
	count, err := sess.Remind(cmd.Context())
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing due soon.")
	}
	return nil
}
