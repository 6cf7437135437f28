package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/address-microservice/internal/app"
	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/pkg/validator"
	"github.com/address-microservice/internal/usecase/dto"
)

func newImportCommand(load loader) *cobra.Command {
	var (
		req   dto.ImportRequest
		queue bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import formats, subdivisions and translations from the bundled dataset",
		Long: `Import runs synchronously by default. With --queue the job is published
to the import stream and processed by the worker.

Without --country every country of the dataset is imported.`,
		Example: `  addressctl import
  addressctl import --country US,BR --lang ja,zh
  addressctl import --country FR --queue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, code := range req.CountryCodes {
				req.CountryCodes[i] = strings.ToUpper(code)
			}
			if err := validator.Validate(&req); err != nil {
				return err
			}
			opts := app.Options{RequireRedis: queue}
			return withEnvironment(cmd, load, opts, func(ctx context.Context, env *environment) error {
				out := cmd.OutOrStdout()
				if queue {
					resp, err := env.useCases.Import.Enqueue(ctx, req)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(out, "job %s %s (message %s)\n", resp.JobID, resp.Status, resp.MessageID)
					return err
				}

				result, err := env.useCases.Import.Process(ctx, &domain.ImportJob{
					CountryCodes: req.CountryCodes,
					Langcodes:    req.Langcodes,
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "imported %d formats, %d subdivisions, %d translations\n",
					result.Formats, result.Subdivisions, result.Translations)
				return err
			})
		},
	}

	cmd.Flags().StringSliceVar(&req.CountryCodes, "country", nil, "countries to import (default: all)")
	cmd.Flags().StringSliceVar(&req.Langcodes, "lang", nil, "translation languages (default: IMPORT_LANGUAGES)")
	cmd.Flags().BoolVar(&queue, "queue", false, "enqueue the job for the worker instead of running it")
	return cmd
}
