package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/app"
	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/errmsg"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		printError(errmsg.OpConfigLoad, err)
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		printError(errmsg.OpLogOpen, err)
		return err
	}
	defer closeLog()

	m, err := app.New(cfg, logger)
	if err != nil {
		printError(errmsg.OpSheetCreate, err)
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		printError(errmsg.OpRun, err)
		return err
	}
	return nil
}

// openLogger sends debug logs to a file; the terminal belongs to the TUI.
func openLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := tea.LogToFile(path, "sheet")
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Debug("logging started", "path", path)
	return logger, func() { f.Close() }, nil
}

func printError(op errmsg.Op, err error) {
	fmt.Fprintln(os.Stderr, errmsg.Format(op, err))
	if hint := errmsg.Hint(err); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
}
