package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/amanerp/amandb/internal/config"
	"github.com/amanerp/amandb/internal/erp"
	"github.com/amanerp/amandb/internal/store"
	"github.com/amanerp/amandb/pkg"
)

func main() {
	_ = godotenv.Load()

	cwd, _ := os.Getwd()

	config_path := flag.String("config", "", "path to a YAML config file")
	data_dir := flag.String("data", "", "path to save store data")
	in_mem := flag.Bool("m", false, "don't persist the store")
	log_level := flag.String("log", "", "log level: none, error, debug")

	seed := flag.Bool("seed", false, "seed default records into empty lookup collections")
	stats := flag.Bool("stats", false, "print per-collection record counts")
	wipe := flag.Bool("wipe", false, "delete the store from disk and recreate it empty")

	flag.Parse()

	cfg, err := config.Load(*config_path)
	if err != nil {
		pkg.FatalLog(err)
	}
	if *data_dir != "" {
		cfg.DataDir = *data_dir
	}
	if *in_mem {
		cfg.InMem = true
	}
	if *log_level != "" {
		cfg.LogLevel = *log_level
	}
	if !cfg.InMem && !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(cwd, cfg.DataDir)
	}

	pkg.SetLogLevel(pkg.ParseLogLevel(cfg.LogLevel))

	manager := store.NewManager(
		store.NewWriteSettings(cfg.DataDir, cfg.InMem, cfg.WriteIntervalMs))
	defer manager.Reset()

	if *wipe {
		if _, err := manager.DeleteAndRecreate(); err != nil {
			pkg.FatalLog("wipe failed;", err)
		}
		fmt.Println("store wiped and recreated")
	}

	s, err := manager.Open()
	if err != nil {
		pkg.FatalLog("failed to open store;", err)
	}

	registry, err := erp.New(manager)
	if err != nil {
		pkg.FatalLog(err)
	}

	if *seed {
		if err := registry.SeedAll(); err != nil {
			pkg.FatalLog("seeding failed;", err)
		}
		fmt.Println("default records seeded")
	}

	fmt.Printf("aman-db open at schema version %d with %d collections\n",
		s.Version, len(s.Collections))

	if *stats {
		printStats(s)
	}
}

func printStats(s *store.Store) {
	names := s.Collections.Keys()
	sort.Strings(names)
	for _, name := range names {
		count := s.Collections.Get(name).Rows.Len()
		if count == 0 {
			continue
		}
		fmt.Printf("%-24s %d\n", name, count)
	}
}
