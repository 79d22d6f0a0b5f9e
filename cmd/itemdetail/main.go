//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/gui"
	"github.com/appengine-ltd/itemdetail/internal/termui"
)

func main() {
	var (
		showVersion  bool
		classic      bool
		verbose      bool
		settingsPath string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&classic, "classic", false, "run the terminal preview instead of the window")
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

	if classic {
		err = termui.NewApp(termui.AppConfig{
			Version:   version,
			Params:    p.params,
			Database:  p.db,
			IconSheet: p.settings.IconSheet(),
		}).Run()
	} else {
		err = gui.NewApp(gui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Settings:  p.settings,
			Params:    p.params,
			Database:  p.db,
		}).Run()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
