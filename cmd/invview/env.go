//go:build cgo

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/invview/internal/config"
	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/logging"
)

type rootFlags struct {
	configPath string
	worldPath  string
	loot       string
	logLevel   string
	logFile    string
	seed       int64
	containers int
	perEntity  int
}

func (f *rootFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultFile, "Config file (YAML); missing file means defaults")
	pf.StringVar(&f.worldPath, "world", "", "World file (JSON); overrides world_file from the config")
	pf.StringVar(&f.loot, "loot", "", "Open this container at start (entity id or name)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: silent, error, info, verbose, debug")
	pf.StringVar(&f.logFile, "log-file", "", "Also write the log to this file")
	pf.Int64Var(&f.seed, "seed", 1, "Seed for the generated world when no world file exists")
	pf.IntVar(&f.containers, "containers", 4, "Containers in the generated world")
	pf.IntVar(&f.perEntity, "items", 12, "Maximum stacks per entity in the generated world")
}

// env is everything a front-end needs, loaded from the flags.
type env struct {
	cfg   config.Config
	log   *logging.Logger
	world *game.World
	loot  item.EntityID
}

func (e *env) Close() error {
	return e.log.Close()
}

func (f *rootFlags) load() (*env, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if f.logLevel != "" {
		levelName = f.logLevel
	}
	level := logging.LevelInfo
	if levelName != "" {
		if level, err = logging.ParseLevel(levelName); err != nil {
			return nil, err
		}
	}
	logFile := cfg.LogFile
	if f.logFile != "" {
		logFile = f.logFile
	}
	log, err := logging.New(level, logFile)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	e := &env{cfg: cfg, log: log}
	if e.world, err = f.loadWorld(cfg, log); err != nil {
		log.Close()
		return nil, err
	}
	if e.loot, err = resolveLoot(e.world, f.loot); err != nil {
		log.Close()
		return nil, err
	}
	return e, nil
}

func (f *rootFlags) loadWorld(cfg config.Config, log *logging.Logger) (*game.World, error) {
	table := inventory.DefaultCategoryTable()
	if cfg.CategoriesFile != "" {
		loaded, err := inventory.LoadCategoryTable(cfg.CategoriesFile)
		if err != nil {
			return nil, err
		}
		table = loaded
	}
	policy := inventory.NewPolicy(table)

	path := cfg.WorldFile
	if f.worldPath != "" {
		path = f.worldPath
	}
	if path != "" {
		w, err := game.LoadWorld(path, policy, log)
		if err == nil {
			log.Info("loaded world %s", path)
			return w, nil
		}
		// An explicit --world must exist.
		if f.worldPath != "" || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	log.Info("generating world: seed=%d containers=%d items=%d", f.seed, f.containers, f.perEntity)
	return game.Generate(f.seed, f.containers, f.perEntity, policy, log)
}

func resolveLoot(w *game.World, spec string) (item.EntityID, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return item.NoEntity, nil
	}
	if n, err := strconv.ParseUint(spec, 10, 32); err == nil {
		id := item.EntityID(n)
		if id == w.Player() || !w.Exists(id) {
			return item.NoEntity, fmt.Errorf("%w: %d", game.ErrUnknownEntity, id)
		}
		return id, nil
	}
	for _, id := range w.Containers() {
		if strings.EqualFold(w.Name(id), spec) {
			return id, nil
		}
	}
	return item.NoEntity, fmt.Errorf("%w: %q", game.ErrUnknownEntity, spec)
}
