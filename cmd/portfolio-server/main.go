// Portfolio-server serves the portfolio backend (contact messages, FAQ and
// visitor counter) under /api and the gesture relay under /relay.
//
// Settings come from the environment or a .env file: PORT, DATABASE_PATH,
// GIN_MODE, RELAY_ORIGINS and SEED_FAQ.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/backend"
	"github.com/phanxgames/gesture/internal/config"
	"github.com/phanxgames/gesture/relay"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := backend.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	if cfg.SeedFAQ {
		if err := store.AddInitialFAQEntries(ctx); err != nil {
			log.Fatalf("seed faq: %v", err)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(store, cfg),
	}

	go func() {
		log.Printf("server listening on %s (database %s)", srv.Addr, cfg.DatabasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// newRouter mounts the backend API and the relay on one gin engine.
func newRouter(b backend.Backend, cfg config.Config) *gin.Engine {
	r := backend.NewRouter(b)
	rl := relay.NewServer(relay.Options{
		Config:         gesture.DefaultConfig(),
		AllowedOrigins: cfg.RelayOrigins,
		OnGesture: func(session string, g relay.GestureFrame) {
			if gin.Mode() == gin.DebugMode {
				log.Printf("relay %s: %s %s", session, g.Kind, g.Direction)
			}
		},
	})
	rl.Register(r)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "relaySessions": rl.Sessions()})
	})
	return r
}
