package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/backup"
	"github.com/kupu-app/kupu/internal/config"
	"github.com/kupu-app/kupu/internal/logger"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/store"
)

// env is everything a command needs: config, logger, the open database and
// the loaded stores.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	st     *store.Store
	svc    *screen.Services
	backup *backup.Service
}

// openEnv loads config, builds the logger, opens the database and loads
// every store. With logToFile set and no log_file configured, logs go to
// kupu.log next to the database.
func openEnv(cmd *cobra.Command, logToFile bool) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	if logToFile && cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(filepath.Dir(dbPath), "kupu.log")
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Error("open store", zap.String("path", dbPath), zap.Error(err))
		_ = log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))

	keys := store.KeysFor(cfg.Namespace)
	svc := screen.NewServices(cmd.Context(), st.EntryRepo(), keys, log, time.Now)
	bk := backup.NewService(st.EntryRepo(), st.SnapshotRepo(), keys, backup.Stores{
		Progress: svc.Progress,
		Vocab:    svc.Vocab,
		Queue:    svc.Queue,
		Outside:  svc.Outside,
	}, cfg.SnapshotsKeep, log)

	return &env{cfg: cfg, log: log, st: st, svc: svc, backup: bk}, nil
}

// Close flushes the logger and closes the database.
func (e *env) Close() error {
	_ = e.log.Sync()
	return e.st.Close()
}

// withEnv opens the environment for the duration of fn.
func withEnv(cmd *cobra.Command, fn func(e *env) error) error {
	e, err := openEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}
