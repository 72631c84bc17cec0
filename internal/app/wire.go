package app

import (
	"go.uber.org/zap"

	"lunaphase/internal/ephemeris"
	"lunaphase/internal/logging"
	calendarsvc "lunaphase/internal/services/calendar"
	phasesvc "lunaphase/internal/services/phase"
	visualsvc "lunaphase/internal/services/visual"
	"lunaphase/internal/store"
)

// Wire bundles all stores and services built from a Config.
type Wire struct {
	Config   Config
	Log      *zap.Logger
	Images   *store.ImageFileStore
	Phases   *phasesvc.Service
	Calendar *calendarsvc.Service
	Visual   *visualsvc.Selector
	App      *App
}

// NewWire constructs the dependency graph from cfg. cfg must have passed
// Validate. A nil logger discards output.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = logging.Nop()
	}

	defaultTime, err := cfg.ObservationTime()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// Image storage
	table, err := store.LoadImageTable(cfg.PhaseMapFile)
	if err != nil {
		return nil, err
	}
	images, err := store.NewImageFileStore(cfg.ImageDir, table)
	if err != nil {
		return nil, err
	}

	// Core services
	provider := ephemeris.New(log.Named("ephemeris"))
	phases := phasesvc.New(provider, defaultTime, log.Named("phase"))
	calendar := calendarsvc.New(phases, cfg.CalendarWorkers, log.Named("calendar"))
	visual := visualsvc.New(images, cfg.ImageSize, log.Named("visual"))

	return &Wire{
		Config:   cfg,
		Log:      log,
		Images:   images,
		Phases:   phases,
		Calendar: calendar,
		Visual:   visual,
		App:      New(phases, calendar, visual, images, loc),
	}, nil
}
