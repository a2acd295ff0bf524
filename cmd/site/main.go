// Command site serves the portfolio: pages, the project list, forms and the
// owner dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/newsletter"
	"github.com/Zachkp/portfolio/internal/platform/logger"
	"github.com/Zachkp/portfolio/internal/projectsapi"
	"github.com/Zachkp/portfolio/internal/ratelimit"
	"github.com/Zachkp/portfolio/internal/sqlite"
	"github.com/Zachkp/portfolio/internal/visitors"
	"github.com/Zachkp/portfolio/internal/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg, err := logger.New(cfg.App.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Fatal("server stopped", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	site, err := loadContent(cfg.Content.Path)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	hasher, err := visitors.NewHasher(cfg.Analytics.HashSalt)
	if err != nil {
		return fmt.Errorf("visitor hasher: %w", err)
	}

	visitRepo := sqlite.NewVisitorRepository(db)
	subscribers := newsletter.NewService(sqlite.NewSubscriberRepository(db))
	messages := contact.NewService(sqlite.NewMessageRepository(db), contact.NewSMTPSender(cfg.SMTP), logg)
	if !cfg.SMTP.Configured() {
		logg.Warn("SMTP credentials not configured, contact messages will be stored but not mailed")
	}

	tracker := visitors.NewTracker(visitRepo, hasher, logg)
	retention := visitors.NewRetention(visitRepo, cfg.Analytics.Retention, logg)

	auth, err := admin.NewAuthenticator(cfg.Admin, logg)
	if err != nil {
		return err
	}
	adminHandler := admin.NewHandler(
		auth,
		admin.NewStatsService(visitRepo, subscribers, messages),
		visitRepo,
		subscribers,
		retention,
		hasher,
		logg,
	)

	if os.Getenv(gin.EnvGinMode) == "" && cfg.App.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := web.New(web.Deps{
		Content:        site,
		Projects:       projectsapi.NewClient(cfg.Projects.APIURL, cfg.Projects.FetchTimeout),
		Newsletter:     subscribers,
		Contact:        messages,
		Tracker:        tracker,
		Admin:          adminHandler,
		Limiter:        ratelimit.PerMinute(cfg.Forms.RatePerMinute),
		Log:            logg,
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		TrustedProxies: cfg.Server.TrustedProxies,
	})
	if err != nil {
		return err
	}

	scheduler := cron.New()
	if _, err := retention.Schedule(scheduler, cfg.Analytics.Schedule); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logg.Info("listening", "addr", httpServer.Addr, "projects_api", cfg.Projects.APIURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		scheduler.Start()
		// Purge once at startup so a long-stopped site catches up.
		if _, err := retention.Purge(gctx); err != nil {
			logg.Warn("startup privacy cleanup", "error", err)
		}
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		tracker.Wait()
		return err
	})

	return g.Wait()
}

func loadContent(path string) (*content.Content, error) {
	if path == "" {
		return content.Default()
	}
	c, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	return c, nil
}
