package testsupport

import (
	"testing"

	"romshelf/internal/config"
	"romshelf/internal/gamedb"
)

// MustOpenStore opens the gamedb store at the config's database path and
// registers cleanup with the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *gamedb.Store {
	t.Helper()
	store, err := gamedb.Open(cfg.GameDB.Path)
	if err != nil {
		t.Fatalf("open gamedb store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close gamedb store: %v", err)
		}
	})
	return store
}
