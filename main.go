package main

import (
	"CaptionRelay/app"
	"CaptionRelay/config/environment"
	"CaptionRelay/logging"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	configFile string
	port       string
)

var rootCmd = &cobra.Command{
	Use:   "captionrelay",
	Short: "Relay caption prompts to a generative text provider",
	Long: `captionrelay forwards a prompt to the configured provider and returns the generated caption.

  captionrelay serve                    Start the HTTP server
  captionrelay caption "a sunset"       Generate one caption and print it`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var captionCmd = &cobra.Command{
	Use:   "caption [prompt]",
	Short: "Generate one caption and print it",
	RunE:  runCaption,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd, captionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := environment.Load(configFile)
	if err != nil {
		return nil, err
	}
	if port != "" {
		cfg.Port = port
	}
	logging.InitLogger(logging.ParseLevel(cfg.LogLevel))

	return app.New(ctx, cfg)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.GetLogger()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Server running on port %s", a.Config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runCaption(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	caption, err := a.CaptionService.GenerateCaption(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), caption)
	return nil
}
