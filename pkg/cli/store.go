package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"suite/pkg/config"
	"suite/pkg/database"
	"suite/pkg/storage"
	"suite/pkg/utils"
)

// OpenStore opens the backend named by cfg.Store. An empty name means
// sqlite.
func OpenStore(fsys afero.Fs, cfg config.Config) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite, "":
		utils.Log("Opening sqlite store at %s", cfg.Database)
		return openSQL(database.SQLiteDriver, cfg.Database)
	case config.StorePostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("the postgres store needs a dsn")
		}
		utils.Log("Opening postgres store")
		return openSQL(database.PostgresDriver, cfg.DSN)
	case config.StoreFile:
		utils.Log("Opening file store at %s", cfg.DataFile)
		s, err := storage.OpenFileStore(fsys, cfg.DataFile)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreMemory:
		return storage.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store %q (want sqlite, postgres, file or memory)", cfg.Store)
}

func openSQL(driver database.Driver, dsn string) (storage.Store, error) {
	s, err := database.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	return s, nil
}
