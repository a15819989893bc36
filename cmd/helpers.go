package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ziadkadry99/surveygen/internal/config"
	"github.com/ziadkadry99/surveygen/internal/db"
	"github.com/ziadkadry99/surveygen/internal/ledger"
	"github.com/ziadkadry99/surveygen/internal/progress"
	"github.com/ziadkadry99/surveygen/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `surveygen init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openLedger opens the build ledger. It returns a nil store when the ledger
// is disabled in the config.
func openLedger(cfg *config.Config) (*ledger.Store, func(), error) {
	if cfg.LedgerPath == "" {
		return nil, func() {}, nil
	}
	database, err := db.Open(cfg.LedgerPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening ledger %s: %w", cfg.LedgerPath, err)
	}
	return ledger.NewStore(database), func() { database.Close() }, nil
}

// buildIndex writes the survey page and records it in the ledger. A ledger
// failure is reported but does not undo the page.
func buildIndex(ctx context.Context, cfg *config.Config, reporter progress.Reporter) (*site.IndexResult, error) {
	gen := site.NewIndexGenerator(cfg)
	gen.Progress = reporter
	gen.BuildID = ledger.NewBuildID()

	res, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating survey page: %w", err)
	}

	store, closeLedger, err := openLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return res, nil
	}
	defer closeLedger()
	if store != nil {
		b := ledger.Build{ID: gen.BuildID, ViewersDir: cfg.ViewersDir}
		if _, err := store.Record(ctx, b, res.Entries); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: recording build in ledger: %v\n", err)
		} else if verbose {
			fmt.Printf("Recorded build %s in %s\n", gen.BuildID, cfg.LedgerPath)
		}
	}
	return res, nil
}

// buildPages writes the landing, comparison and results pages.
func buildPages(cfg *config.Config, reporter progress.Reporter) (*site.PagesResult, error) {
	gen := site.NewPagesGenerator(cfg)
	gen.Progress = reporter
	res, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating pages: %w", err)
	}
	return res, nil
}
