// Package wire provides dependency injection for the opsdeck application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	cliadapter "github.com/example/opsdeck/internal/adapters/cli"
	"github.com/example/opsdeck/internal/adapters/filestore"
	"github.com/example/opsdeck/internal/adapters/ledger"
	"github.com/example/opsdeck/internal/adapters/sqlite"
	"github.com/example/opsdeck/internal/app"
	"github.com/example/opsdeck/internal/config"
	"github.com/example/opsdeck/internal/db"
	"github.com/example/opsdeck/internal/ports/primary"
	"github.com/example/opsdeck/internal/ports/secondary"
)

var (
	assetService    primary.AssetService
	phaseService    primary.PhaseService
	logService      primary.LogService
	snapshotService primary.SnapshotService
	refService      primary.ReferenceService
	once            sync.Once
)

// AssetService returns the singleton AssetService instance.
func AssetService() primary.AssetService {
	once.Do(initServices)
	return assetService
}

// PhaseService returns the singleton PhaseService instance.
func PhaseService() primary.PhaseService {
	once.Do(initServices)
	return phaseService
}

// LogService returns the singleton LogService instance.
func LogService() primary.LogService {
	once.Do(initServices)
	return logService
}

// SnapshotService returns the singleton SnapshotService instance.
func SnapshotService() primary.SnapshotService {
	once.Do(initServices)
	return snapshotService
}

// ReferenceService returns the singleton ReferenceService instance.
func ReferenceService() primary.ReferenceService {
	once.Do(initServices)
	return refService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	disk, err := openSnapshotStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	// The ledger implements every repository port; seed a fresh store
	// with the bundled catalogue.
	store, err := ledger.Open(context.Background(), disk, ledger.DefaultDoc)
	if err != nil {
		log.Fatalf("failed to open ledger: %v", err)
	}

	assetService = app.NewAssetService(store, store)
	phaseService = app.NewPhaseService(store, store)
	logService = app.NewLogService(store)
	snapshotService = app.NewSnapshotService(store, filestore.NewExchange(), assetService, store, store)
	refService = app.NewReferenceService(store)
}

// openSnapshotStore picks the persistence backend from config.
func openSnapshotStore(cfg *config.Config) (secondary.SnapshotStore, error) {
	if cfg.Backend == config.BackendFile {
		path := cfg.StorePath
		if path == "" {
			dir, err := config.Dir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "opsdeck.json")
		}
		return filestore.NewSnapshotFile(path), nil
	}

	path := cfg.StorePath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return sqlite.NewSnapshotStore(database), nil
}

// AssetAdapter returns a new AssetAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func AssetAdapter() *cliadapter.AssetAdapter {
	return AssetAdapterWithOutput(os.Stdout)
}

// AssetAdapterWithOutput returns a new AssetAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func AssetAdapterWithOutput(out io.Writer) *cliadapter.AssetAdapter {
	once.Do(initServices)
	return cliadapter.NewAssetAdapter(assetService, out)
}
