// Package wire provides dependency injection for navcsv.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/example/navcsv/internal/adapters/attack"
	cliadapter "github.com/example/navcsv/internal/adapters/cli"
	"github.com/example/navcsv/internal/adapters/filesystem"
	"github.com/example/navcsv/internal/adapters/sqlite"
	"github.com/example/navcsv/internal/adapters/tabular"
	"github.com/example/navcsv/internal/app"
	"github.com/example/navcsv/internal/config"
	"github.com/example/navcsv/internal/db"
	"github.com/example/navcsv/internal/ports/primary"
	"github.com/example/navcsv/internal/ports/secondary"
)

var (
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()

	catalogService    primary.CatalogService
	conversionService primary.ConversionService
	source            *attack.HTTPSource
	database          *sql.DB
	initErr           error
	once              sync.Once
	mu                sync.Mutex
)

// Init sets the configuration and logger used when services are first built.
// It must be called before any service or adapter accessor.
func Init(c *config.Config, l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if c != nil {
		cfg = c
	}
	if l != nil {
		logger = l
	}
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() (primary.CatalogService, error) {
	once.Do(initServices)
	return catalogService, initErr
}

// ConversionService returns the singleton ConversionService instance.
func ConversionService() (primary.ConversionService, error) {
	once.Do(initServices)
	return conversionService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	mu.Lock()
	defer mu.Unlock()

	timeout, err := cfg.FetchTimeout()
	if err != nil {
		initErr = err
		return
	}

	store, err := catalogStore()
	if err != nil {
		initErr = err
		return
	}

	source = attack.NewHTTPSource(cfg.Catalog.SourceURL, timeout)
	layers := filesystem.NewLayerReader()

	catalogService = app.NewCatalogService(source, store, logger.Named("catalog"))
	conversionService = app.NewConversionService(
		store,
		layers,
		tabular.NewCSVWriter(),
		tabular.NewXLSXWriter(),
		logger.Named("convert"),
	)

	logger.Debug("services initialized",
		zap.String("store", cfg.Catalog.Store),
		zap.String("location", store.Location()),
		zap.String("source", cfg.Catalog.SourceURL),
		zap.Duration("timeout", timeout))
}

// catalogStore builds the configured catalog backend.
func catalogStore() (secondary.CatalogStore, error) {
	switch cfg.Catalog.Store {
	case config.StoreJSON, "":
		return filesystem.NewJSONCatalogStore(cfg.Catalog.Path), nil
	case config.StoreSQLite:
		conn, err := db.Open(cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		database = conn
		return sqlite.NewCatalogStore(conn, cfg.Catalog.SQLitePath), nil
	default:
		return nil, fmt.Errorf("invalid catalog store: %s (valid: %v)", cfg.Catalog.Store, config.ValidStores)
	}
}

// Close releases the database handle and idle HTTP connections, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if source != nil {
		source.CloseIdleConnections()
	}
	if database != nil {
		err := database.Close()
		database = nil
		return err
	}
	return nil
}

// CatalogAdapter returns a new CatalogAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CatalogAdapter() (*cliadapter.CatalogAdapter, error) {
	return CatalogAdapterWithOutput(os.Stdout)
}

// CatalogAdapterWithOutput returns a new CatalogAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func CatalogAdapterWithOutput(out io.Writer) (*cliadapter.CatalogAdapter, error) {
	svc, err := CatalogService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewCatalogAdapter(svc, out), nil
}

// ConvertAdapter returns a new ConvertAdapter writing to stdout.
func ConvertAdapter() (*cliadapter.ConvertAdapter, error) {
	return ConvertAdapterWithOutput(os.Stdout)
}

// ConvertAdapterWithOutput returns a new ConvertAdapter writing to the given output.
func ConvertAdapterWithOutput(out io.Writer) (*cliadapter.ConvertAdapter, error) {
	svc, err := ConversionService()
	if err != nil {
		return nil, err
	}
	catalogAdapter, err := CatalogAdapterWithOutput(out)
	if err != nil {
		return nil, err
	}
	return cliadapter.NewConvertAdapter(svc, catalogAdapter, out), nil
}
