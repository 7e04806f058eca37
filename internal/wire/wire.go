// Package wire provides dependency injection for the bptracker application.
// It creates singleton services with lazy initialization.
package wire

import (
	"errors"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/bptracker/internal/adapters/cli"
	"github.com/example/bptracker/internal/adapters/filesystem"
	"github.com/example/bptracker/internal/adapters/sqlite"
	"github.com/example/bptracker/internal/app"
	"github.com/example/bptracker/internal/config"
	"github.com/example/bptracker/internal/core/catalog"
	"github.com/example/bptracker/internal/db"
	"github.com/example/bptracker/internal/ports/primary"
	"github.com/example/bptracker/internal/ports/secondary"
)

// ErrHistoryDisabled is returned by HistoryService when the audit trail is
// turned off in config.
var ErrHistoryDisabled = errors.New("history is disabled in .bptracker/config.yaml")

var (
	cfg              *config.Config
	blueprintService *app.BlueprintServiceImpl
	historyService   primary.HistoryService
	historyErr       error
	once             sync.Once
)

// Config returns the effective configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// BlueprintService returns the singleton BlueprintService instance.
func BlueprintService() primary.BlueprintService {
	once.Do(initServices)
	return blueprintService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return blueprintService
}

// HistoryService returns the singleton HistoryService instance, or an error
// when history is disabled or its database could not be opened.
func HistoryService() (primary.HistoryService, error) {
	once.Do(initServices)
	return historyService, historyErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.LoadConfig(wd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The text file is authoritative; history only degrades to a no-op.
	var logWriter secondary.LogWriter = sqlite.NoopLogWriter{}
	if !cfg.HistoryEnabled() {
		historyErr = ErrHistoryDisabled
	} else if database, err := db.GetDB(cfg.HistoryPath); err != nil {
		log.Printf("warning: history unavailable: %v", err)
		historyErr = err
	} else {
		historyRepo := sqlite.NewHistoryRepository(database)
		logWriter = sqlite.NewLogWriterAdapter(historyRepo)
		historyService = app.NewHistoryService(historyRepo)
	}

	store := filesystem.NewRecordStore(cfg.StorePath)
	blueprintService = app.NewBlueprintService(catalog.Default(), store, logWriter)
}

// MenuAdapterWithIO returns a new MenuAdapter on the given streams.
// This variant allows testing or alternate input sources.
func MenuAdapterWithIO(in io.Reader, out io.Writer) *cliadapter.MenuAdapter {
	once.Do(initServices)
	return cliadapter.NewMenuAdapter(blueprintService, blueprintService, in, out)
}
