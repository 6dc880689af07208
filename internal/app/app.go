// internal/app/app.go
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/config"
	"github.com/llehouerou/sheet/internal/keymap"
	"github.com/llehouerou/sheet/internal/ui/sheetview"
)

// Model is the root application model: a background view with a sheet
// hanging over it and a status line underneath.
type Model struct {
	cfg      *config.Config
	logger   *slog.Logger
	Sheet    *sheetview.Model
	resolver *keymap.Resolver
	help     help.Model

	ShowHelp    bool
	IsOpen      bool
	LastRelease *sheetview.DragEnded
	ErrorMsg    string
	pendingOpen bool
	Width       int
	Height      int
}

// New creates the application model from configuration.
func New(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// The terminal size is unknown until the first WindowSizeMsg; start with
	// the smallest range that admits the configured initial height.
	placeholder := max(cfg.Sheet.MinHeight, cfg.Sheet.InitialHeight)
	opts, err := cfg.SheetOptions(placeholder)
	if err != nil {
		return Model{}, err
	}
	opts.Logger = logger.With("component", sheetview.Source)

	m := Model{
		cfg:         cfg,
		logger:      logger,
		resolver:    keymap.NewResolver(keymap.All),
		help:        help.New(),
		pendingOpen: cfg.Sheet.Open,
	}

	sv, err := sheetview.New(sheetview.Options{
		Engine:  opts,
		Content: sheetContent,
	})
	if err != nil {
		return Model{}, err
	}
	m.Sheet = sv
	m.IsOpen = sv.Controller().IsOpen()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Sheet.Init()
}
