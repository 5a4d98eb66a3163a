// Command textflow-server runs the TextFlow analysis API.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/textflow/textflow/internal/httpapi"
	"github.com/textflow/textflow/internal/mail"
	"github.com/textflow/textflow/pkg/textflow/config"
	"github.com/textflow/textflow/pkg/textflow/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (optional)")
		addr       = flag.String("addr", "", "Listen address, overrides config")
		dbPath     = flag.String("db", "", "SQLite database path, overrides config")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("load config: ", err)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	comp, err := (&config.Loader{Config: cfg}).Load()
	if err != nil {
		log.Fatal("build components: ", err)
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal("open store: ", err)
	}
	defer st.Close()

	mailer := mail.New(cfg.SMTP, logger)
	api := httpapi.New(comp.Pipeline, st, mailer, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("listening", "addr", cfg.Server.Addr, "db", cfg.DBPath, "mail", mailer.Enabled())
	log.Fatal(srv.ListenAndServe())
}
