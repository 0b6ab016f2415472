// Package app assembles the long-lived dependencies shared by the CLI
// commands and the API server.
package app

import (
	"file-wrangler/internal/app/bulk"
	"file-wrangler/internal/app/repository"
)

// App bundles the operation history store with the executor that records
// into it.
type App struct {
	History  repository.OperationDAO
	Executor *bulk.Executor
}

// NewApp creates the application container.
func NewApp(history repository.OperationDAO, executor *bulk.Executor) *App {
	return &App{
		History:  history,
		Executor: executor,
	}
}

// Close releases the history store.
func (a *App) Close() error {
	return a.History.Close()
}
