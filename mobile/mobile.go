package mobile

import (
	"net/http"

	"skirmish/internal/catalog"
	"skirmish/internal/server/game"
	httpserver "skirmish/internal/server/http"
	"skirmish/pkg/logger"
)

// StartServer starts the local preview server for an embedding app.
// catalogPath: physical path to the unit catalog; empty uses the built-in roster
// dataDir: gdata app name for session persistence; empty keeps sessions in memory
// port: port to listen on, e.g. "2888"
func StartServer(catalogPath string, dataDir string, port string) bool {
	logger.Init()

	cat, err := loadCatalog(catalogPath)
	if err != nil {
		logger.Log.WithError(err).Error("catalog not loaded")
		return false
	}

	var store *game.Store
	if dataDir != "" {
		if store, err = game.OpenStore(dataDir); err != nil {
			logger.Log.WithError(err).Warn("session store unavailable, memory only")
			store = nil
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer(httpserver.NewHandler(cat, game.NewManager(cat, store))))

	// Run in background so it doesn't block the UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			logger.Log.WithError(err).Error("server stopped")
		}
	}()
	return true
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
