package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/itemdetail/internal/config"
	"github.com/appengine-ltd/itemdetail/internal/data"
	"github.com/appengine-ltd/itemdetail/internal/lint"
)

func main() {
	var (
		dataDir    string
		paramsFile string
	)
	flag.StringVar(&dataDir, "data", "data", "database directory (Items.json, Weapons.json, ...)")
	flag.StringVar(&paramsFile, "params", "", "plugin parameter JSON (default <data>/plugin_params.json)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if paramsFile == "" {
		paramsFile = filepath.Join(dataDir, "plugin_params.json")
	}

	cfg, err := config.LoadParameters(paramsFile)
	if err != nil {
		log.Error("loading parameters", "err", err)
		os.Exit(2)
	}
	db, err := data.LoadDatabase(dataDir)
	if err != nil {
		log.Error("loading database", "err", err)
		os.Exit(2)
	}

	findings := lint.Check(db, cfg)
	for _, f := range findings {
		fmt.Println(f)
	}
	if len(findings) > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) in %d entries\n", len(findings), len(db.All()))
		os.Exit(1)
	}
}
