//go:build wireinject
// +build wireinject

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/wire"

	"file-wrangler/internal/app/bulk"
	appconfig "file-wrangler/internal/app/config"
	"file-wrangler/internal/app/repository"
	"file-wrangler/internal/app/repository/pg"
	"file-wrangler/internal/app/repository/sqlite"
	"file-wrangler/internal/config"
)

// provideOperationDAO opens the operation history store. A configured
// PostgreSQL DSN takes precedence; otherwise history lives in a sqlite file
// resolved from FW_HISTORY_DB, then the settings file's history.db_path,
// then a per-user default.
func provideOperationDAO() (repository.OperationDAO, error) {
	if dsn := config.PostgresDSN(); dsn != "" {
		return pg.Open(dsn)
	}

	dbPath := config.HistoryDBPath(settingsHistoryDBPath())
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return sqlite.Open(dbPath)
}

// settingsHistoryDBPath reads history.db_path from the settings file. A
// missing or broken settings file falls through to the defaults; the history
// store must stay usable without one.
func settingsHistoryDBPath() string {
	settings, err := appconfig.NewManager(appconfig.GetDefaultConfigPath()).Load()
	if err != nil {
		return ""
	}
	return settings.History.DBPath
}

// InitializeApp builds the shared application graph: the history store and
// the bulk executor that records into it.
func InitializeApp() (*App, error) {
	wire.Build(NewApp, provideOperationDAO, bulk.NewExecutor)
	return nil, nil
}
