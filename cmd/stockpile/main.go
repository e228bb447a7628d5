// Package main implements the stockpile CLI.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdoulbah/stockpile/internal/config"
	"github.com/abdoulbah/stockpile/internal/inventory"
	"github.com/abdoulbah/stockpile/internal/repository/jsonfile"
	"github.com/abdoulbah/stockpile/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "stockpile",
	Short:        "Track named item quantities backed by a JSON file",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(addCmd, removeCmd, qtyCmd, reportCmd, lowCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the config, logger and store every command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *inventory.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.Debug))
	zap.ReplaceGlobals(baseLogger)

	repo := jsonfile.New(logger.Named(baseLogger, "repo.jsonfile"))
	store := inventory.NewStore(repo, logger.Named(baseLogger, "store"))

	return &app{cfg: cfg, logger: baseLogger, store: store}, nil
}

// loadExisting pulls the persisted inventory in; a missing file simply means
// the store starts empty.
func (a *app) loadExisting() error {
	err := a.store.Load(a.cfg.Store.FilePath)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		a.logger.Info("no inventory file yet, starting empty", zap.String("path", a.cfg.Store.FilePath))
		return nil
	}
	return err
}

func (a *app) save() error {
	return a.store.Save(a.cfg.Store.FilePath)
}

func (a *app) close() {
	_ = a.logger.Sync()
}
