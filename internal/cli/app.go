package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Joseda-hg/todo/internal/config"
	"github.com/Joseda-hg/todo/internal/db"
	"github.com/Joseda-hg/todo/internal/remind"
	"github.com/Joseda-hg/todo/internal/session"
	"github.com/mattn/go-isatty"
)

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultConfigPath()
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if verbose {
		cfg.Verbose = true
	}
	if useTUI {
		cfg.UI = config.UITUI
	}
	return cfg, nil
}

// newLogger returns a discarding logger unless verbose logging is on, in
// which case it writes to the configured log file or to stderr.
func newLogger(cfg config.Config, stderr io.Writer) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0), noop, nil
	}
	if cfg.LogFile == "" {
		return log.New(stderr, "todo: ", log.LstdFlags), noop, nil
	}

	if err := config.EnsureDir(cfg.LogFile); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(file, "todo: ", log.LstdFlags), file.Close, nil
}

func openStore(path string, logger *log.Logger) (*db.Store, error) {
	if path != ":memory:" {
		if err := config.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("%w: %w", db.ErrStorageUnavailable, err)
		}
	}

	sqlDB, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	logger.Printf("opened task store %s", path)

	return db.NewStore(sqlDB), nil
}

func sessionOptions(cfg config.Config, logger *log.Logger) session.Options {
	return session.Options{
		Logger:       logger,
		RemindWindow: cfg.RemindWindow,
	}
}

// startReminders re-runs the due-soon check every RemindInterval. The
// returned stop func waits for a running check to finish.
func startReminders(cfg config.Config, sess *session.Session, logger *log.Logger) (func(), error) {
	if cfg.RemindInterval <= 0 {
		return func() {}, nil
	}

	scheduler := remind.NewScheduler(time.Local)
	_, err := scheduler.ScheduleInterval(cfg.RemindInterval, func() {
		if _, err := sess.Remind(context.Background()); err != nil {
			logger.Printf("periodic reminder: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	scheduler.Start()
	logger.Printf("reminders every %s", cfg.RemindInterval)
	return scheduler.Stop, nil
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
