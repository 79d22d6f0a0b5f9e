//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/termui"
)

func main() {
	var (
		showVersion  bool
		verbose      bool
		settingsPath string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Bool("classic", true, "ignored; builds without cgo always use the terminal preview")
	flag.BoolVar(&verbose, "v", false, "log startup details")
	flag.StringVar(&settingsPath, "settings", config.DefaultSettingsFile, "path to the settings file")
	flag.Parse()

	if showVersion {
		fmt.Printf("Item Detail %s (%s) %s\n", version, commit, date)
		return
	}

	log := newLogger(verbose)
	p, err := loadProject(log, settingsPath)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	log.Info("built without cgo; running the terminal preview")

	err = termui.NewApp(termui.AppConfig{
		Version:   version,
		Params:    p.params,
		Database:  p.db,
		IconSheet: p.settings.IconSheet(),
	}).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
