package main

import (
	"flag"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"skirmish/internal/catalog"
	"skirmish/internal/server/game"
	httpserver "skirmish/internal/server/http"
	"skirmish/pkg/logger"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless machines have no browser; ignore
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "optional directory with a highlight viewer (index.html / js)")
	catalogPath := flag.String("catalog", "", "unit catalog YAML; empty uses the built-in roster")
	persist := flag.String("persist", "", "gdata app name for session persistence; empty keeps sessions in memory")
	flag.Parse()

	logger.Init()

	var (
		cat *catalog.Catalog
		err error
	)
	if *catalogPath == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(*catalogPath)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("catalog not loaded")
	}
	logger.Log.WithField("units", len(cat.Kinds())).Info("catalog loaded")

	var store *game.Store
	if *persist != "" {
		if store, err = game.OpenStore(*persist); err != nil {
			logger.Log.WithError(err).Warn("session store unavailable, memory only")
			store = nil
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer(httpserver.NewHandler(cat, game.NewManager(cat, store))))

	if *webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(*webDir)))
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	logger.Log.WithField("addr", *addr).Info("preview server listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
