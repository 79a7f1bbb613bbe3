package root

import (
	"context"
	"os"

	"gitbuddy/internal/config"
	"gitbuddy/internal/engine"
	"gitbuddy/internal/gitrepo"
	"gitbuddy/internal/storage"
)

// openService wires config, the JSON pet store, the sqlite history log
// and a git observer for the current directory. The history log is
// best-effort: if it cannot be opened the pet still works.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg := config.Load()

	statePath, err := storage.DefaultStatePath()
	if err != nil {
		return nil, nil, err
	}
	store := storage.NewStore(statePath)

	var history *storage.HistoryRepo
	cleanup := func() {}
	if historyPath, err := storage.DefaultHistoryPath(); err == nil {
		if db, err := storage.Open(ctx, historyPath); err == nil {
			history = storage.NewHistoryRepo(db)
			cleanup = func() { _ = db.Close() }
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	obs := gitrepo.NewLocalObserver(cwd, cfg.ScanTimeout)

	svc := engine.NewService(store, history, obs, obs, engine.ParseSeedMode(cfg.ChallengeSeed), cfg.PetName)
	return svc, cleanup, nil
}
