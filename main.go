package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angristan/spotify-search-provider/internal/app/search"
	server "github.com/angristan/spotify-search-provider/internal/infra/http"
	handler "github.com/angristan/spotify-search-provider/internal/infra/http/handlers/spotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	var opts search.Options
	var requester string
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Resolve a Spotify link or search Spotify and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if requester != "" {
				opts.Requester = requester
			}
			return runSearch(cmd, args[0], opts)
		},
	}
	searchCmd.Flags().StringVar(&opts.Engine, "engine", "", `search engine for free text ("spotify" to search Spotify)`)
	searchCmd.Flags().StringVar(&requester, "requester", "", "requester attached to every track")

	rootCmd := &cobra.Command{
		Use:           "spotify-search-provider",
		Short:         "Spotify search provider",
		Long:          "Resolves Spotify track, album, artist and playlist links and free-text searches into playable tracks.",
		Args:          cobra.NoArgs,
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCmd, searchCmd)

	return rootCmd
}

func loadApp(ctx context.Context) (*app, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	return newApp(ctx, GetEnv())
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	srv, err := server.New(
		server.NewConfig(GetEnv().Port, serviceName, false),
		handler.New(otel.Tracer(serviceName), a.engine),
		a.registry,
	)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.logger.WithError(err).Error("HTTP server stopped with error")
		return err
	}

	a.logger.Info("HTTP server stopped")
	return nil
}

func runSearch(cmd *cobra.Command, query string, opts search.Options) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	result, err := a.engine.Search(ctx, query, opts)
	if err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"type":   result.Type,
		"tracks": len(result.Tracks),
	}).Debug("Search finished")

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
