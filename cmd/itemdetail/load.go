package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
)

// version, commit, date are injected at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type project struct {
	settings config.Settings
	params   config.Config
	db       *data.Database
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadProject reads the settings file, the plugin parameters and the
// database tables the settings point at.
func loadProject(log *slog.Logger, settingsPath string) (project, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return project{}, err
	}
	log.Debug("settings loaded", "path", settingsPath, "data", settings.DataDir, "screen", fmt.Sprintf("%dx%d", settings.Width, settings.Height))

	params, err := config.LoadParameters(settings.ParamsFile)
	if err != nil {
		return project{}, err
	}
	log.Debug("parameters loaded", "openKey", params.OpenKey, "cue", params.Cue.Name, "secretText", params.SecretText)

	db, err := data.LoadDatabase(settings.DataDir)
	if err != nil {
		return project{}, err
	}
	log.Debug("database loaded", "items", len(db.Items), "weapons", len(db.Weapons), "armors", len(db.Armors), "skills", len(db.Skills))
	if len(db.All()) == 0 {
		log.Warn("database is empty; lists will have nothing to show", "dir", settings.DataDir)
	}
	return project{settings: settings, params: params, db: db}, nil
}
