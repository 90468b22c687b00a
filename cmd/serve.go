package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Starts the folio server. Every page load is rendered from the current
content snapshot. With content.watch the payload file is watched and reloaded
on change; with server.live_reload open pages refresh after each reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("watch", false, "reload the content file on change (overrides content.watch)")
	serveCmd.Flags().Bool("live-reload", false, "push reloads to open pages (overrides server.live_reload)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("watch") {
		cfg.Content.Watch, _ = cmd.Flags().GetBool("watch")
	}
	if cmd.Flags().Changed("live-reload") {
		cfg.Server.LiveReload, _ = cmd.Flags().GetBool("live-reload")
	}
	cfg, err := validConfig()
	if err != nil {
		return err
	}

	liveReload := ""
	if cfg.Server.LiveReload {
		liveReload = server.LiveReloadPath
	}
	a, err := app.FromConfig(cfg, logger, site.ServerLinks{Version: Version}, liveReload)
	if err != nil {
		return err
	}
	defer a.Close()

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The server starts even without content and serves the fallback page
	// until a reload succeeds.
	if err := a.Load(ctx); err != nil {
		logger.Warn("serving without content", zap.Error(err))
	}

	srv := server.New(server.Config{
		Port:       cfg.Server.Port,
		AllowAll:   cfg.Server.AllowAllOrigins,
		LiveReload: cfg.Server.LiveReload,
	}, a, logger)

	if cfg.Content.Watch && cfg.Content.Source == config.SourceFile {
		go func() {
			if err := a.Watch(ctx, cfg.Content.Path, app.DefaultDebounce, srv.Reload); err != nil {
				logger.Error("content watcher stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "folio %s serving on http://localhost:%d\n", Version, cfg.Server.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
