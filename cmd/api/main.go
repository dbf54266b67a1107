package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"taxi-booking/internal/config"
	"taxi-booking/internal/logging"
	"taxi-booking/internal/server"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Trustyyellowcabs booking website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}
			return serve(cfg)
		},
		SilenceUsage: true,
	}
	cmd.Flags().String("addr", "", "listen address (overrides ADDR)")
	cmd.AddCommand(newChatLinkCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel)

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	// Create a listener on the desired address
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("creating listener: %w", err)
	}

	// Channel to receive errors from the server
	errChan := make(chan error, 1)

	go func() {
		logger.Info("server started", "addr", listener.Addr().String(), "email_provider", cfg.EmailProvider)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info("initiating graceful shutdown", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("could not gracefully shut down the server: %w", err)
		}

		logger.Info("server gracefully stopped")
		return nil
	}
}
