package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/rafabd1/courseplanner/internal/catalog"
	"github.com/rafabd1/courseplanner/internal/commands"
	"github.com/rafabd1/courseplanner/internal/config"
	"github.com/rafabd1/courseplanner/internal/logger"
	"github.com/rafabd1/courseplanner/internal/session"
	"github.com/rafabd1/courseplanner/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging and the menu commands, then hands control
// to the configured front end.
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// 0. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	// 1. Logger
	log, closer, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Pretty: cfg.Log.Pretty,
	})
	if err != nil {
		return errors.Wrap(err, "failed to set up logging")
	}
	defer closer.Close()
	if cfg.Source() != "" {
		log.Info().Str("path", cfg.Source()).Msg("Configuration loaded.")
	} else {
		log.Info().Msg("No config file found, using defaults.")
	}

	// 2. Create Command Registry and the session that dispatches to it
	registry := commands.NewRegistry()
	sess := session.New(registry, session.Options{
		Source:      cfg.Catalog.Path,
		AllowReload: cfg.Catalog.AllowReload,
		Loader:      &catalog.FileLoader{TrimFields: cfg.Catalog.TrimFields},
		Logger:      log,
	})

	// 3. Register Commands
	for _, cmd := range commands.Defaults(sess) {
		if err := registry.Register(cmd); err != nil {
			return errors.Wrapf(err, "failed to register command %s", cmd.Name())
		}
	}

	// 4. Run the selected front end
	switch cfg.UI.Mode {
	case config.ModeTUI:
		err = tui.Start(ctx, sess)
	default:
		err = sess.Run(ctx, in, out)
	}
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("Interrupted.")
		return nil
	}
	return err
}
