package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/address-microservice/internal/app"
	"github.com/address-microservice/internal/config"
	"github.com/address-microservice/internal/pkg/logger"
)

// environment - открытые репозитории и use cases для одной команды
type environment struct {
	useCases *app.UseCases
	close    func()
}

// loader открывает окружение; в тестах подменяется встроенным набором данных
type loader func(ctx context.Context, opts app.Options) (*environment, error)

func defaultLoader(ctx context.Context, opts app.Options) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	repos, err := app.Open(ctx, cfg, nil, log, opts)
	if err != nil {
		return nil, err
	}
	return &environment{
		useCases: app.NewUseCases(cfg, repos, nil, log),
		close: func() {
			repos.Close()
			_ = log.Sync()
		},
	}, nil
}

func newRootCommand(load loader) *cobra.Command {
	root := &cobra.Command{
		Use:   "addressctl",
		Short: "Render, validate and administer postal address formats",
		Long: `addressctl works against the same storage as the API service.

DATA_SOURCE selects PostgreSQL (default) or the bundled dataset;
REDIS_HOST enables the cache and the import queue.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCommand(load),
		newValidateCommand(load),
		newFormatCommand(load),
		newSubdivisionsCommand(load),
		newImportCommand(load),
	)
	return root
}

// withEnvironment открывает окружение на время выполнения команды
func withEnvironment(cmd *cobra.Command, load loader, opts app.Options, run func(ctx context.Context, env *environment) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := load(ctx, opts)
	if err != nil {
		return err
	}
	defer env.close()
	return run(ctx, env)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
