package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"volumizer/internal/conf"
	"volumizer/internal/flog"
	"volumizer/internal/http"

	"github.com/spf13/cobra"
)

var confPath string

func init() {
	Cmd.Flags().StringVarP(&confPath, "config", "c", "", "Path to the YAML configuration file.")
}

var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a directory over HTTP with padded HTML responses.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := conf.LoadOrDefault(confPath)
		if err != nil {
			flog.Fatalf("Failed to load configuration: %v", err)
		}
		flog.SetLevel(cfg.Log.Level)
		startServer(cfg)
	},
}

func startServer(cfg *conf.Conf) {
	flog.Infof("Starting padding server...")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		flog.Infof("Shutdown signal received, initiating graceful shutdown...")
		cancel()
	}()

	gen, err := cfg.Padding.Generator()
	if err != nil {
		flog.Fatalf("Failed to initialize padding generator: %v", err)
	}
	c := gen.Config()
	flog.Infof("Padding %d-%d bytes (%.2f-%.2f KB) in %s mode with %d formats, source %s",
		c.MinSize, c.MaxSize, c.MinSizeKB, c.MaxSizeKB, cfg.Padding.Mode, c.AvailableMethods, cfg.Padding.Source)

	srv := http.New(gen, cfg.Padding, cfg.HTTP, nil)
	if err := srv.Start(ctx); err != nil {
		flog.Fatalf("HTTP server failed to listen on %s: %v", cfg.HTTP.Listen, err)
	}

	<-ctx.Done()
}
