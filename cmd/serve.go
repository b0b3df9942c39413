package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/killallgit/podcastr/api"
	"github.com/killallgit/podcastr/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the episode page server",
	Long: `Start the Podcastr episode page server with the configured settings.

Pages for the latest episodes and any other slug are generated on first
request, cached for the revalidate window and regenerated afterwards.

Example:
  podcastr serve
  podcastr serve --port 9090
  podcastr serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	deps, cleanup, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	server := api.NewServer(cfg)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	watchConfig()

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	logrus.WithFields(logrus.Fields{
		"addr":     server.Addr(),
		"upstream": cfg.Upstream.BaseURL,
	}).Info("server is ready to handle requests")

	select {
	case <-ctx.Done():
		logrus.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server forced to shutdown")
		return err
	}

	logrus.Info("server gracefully stopped")
	return nil
}

// watchConfig applies log level changes from the config file while serving
func watchConfig() {
	file := viper.ConfigFileUsed()
	if _, err := os.Stat(file); err != nil {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		level := viper.GetString("logging.level")
		if err := logger.SetLevel(level); err != nil {
			logrus.WithError(err).WithField("file", e.Name).Warn("ignoring config change")
			return
		}
		logrus.WithFields(logrus.Fields{
			"file":  e.Name,
			"level": level,
		}).Info("config reloaded")
	})
	viper.WatchConfig()
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
