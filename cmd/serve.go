package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillcms/wayfind/internal/pkg/api"
	"github.com/quillcms/wayfind/internal/pkg/config"
	"github.com/quillcms/wayfind/internal/pkg/log"
	"github.com/quillcms/wayfind/internal/pkg/redirect"
	"github.com/quillcms/wayfind/internal/pkg/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resolution API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Start(&log.Config{
			Level: log.ParseLevel(cfg.LogLevel),
			JSON:  cfg.JSON,
		}); err != nil {
			return err
		}
		defer log.Stop()

		resolver, err := newResolver()
		if err != nil {
			return err
		}

		if err := stats.Init(cfg.PrometheusPrefix); err != nil {
			return err
		}

		emitter := redirect.NewEmitter(resolver, cfg.RedirectCacheMaxAge)

		if err := api.Start(api.Options{
			Port:       cfg.APIPort,
			Prometheus: cfg.Prometheus,
			Resolver:   resolver,
			Emitter:    emitter,
		}); err != nil {
			return err
		}

		log.Info("wayfind is serving", "port", cfg.APIPort, "site-url", cfg.SiteURL)

		// Block until a termination signal arrives.
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		<-signals

		log.Info("shutting down")
		if err := api.Stop(10 * time.Second); err != nil {
			return fmt.Errorf("error stopping API server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("api-port", 9443, "port to listen on for the API")
	serveCmd.Flags().Bool("prometheus", false, "export metrics in Prometheus format")
	serveCmd.Flags().String("prometheus-prefix", "wayfind_", "string used as a prefix for the exported Prometheus metrics")

	config.BindFlags(serveCmd.Flags())
}
