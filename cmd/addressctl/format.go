package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/address-microservice/internal/app"
	"github.com/address-microservice/internal/pkg/validator"
	"github.com/address-microservice/internal/usecase/dto"
)

func newFormatCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Inspect and administer address formats",
	}
	cmd.AddCommand(
		newFormatGetCommand(load),
		newFormatListCommand(load),
		newFormatSetCommand(load),
		newFormatDeleteCommand(load),
	)
	return cmd
}

func newFormatGetCommand(load loader) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "get <country>",
		Short: "Print the format of a country (unknown countries get the generic format)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				result, err := env.useCases.Format.Get(ctx, args[0], locale)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "template locale")
	return cmd
}

func newFormatListCommand(load loader) *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				result, err := env.useCases.Format.List(ctx, locale)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, f := range result.Formats {
					fmt.Fprintf(out, "%s\t%s\n", f.CountryCode, strings.ReplaceAll(f.Format, "\n", `\n`))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "template locale")
	return cmd
}

func newFormatSetCommand(load loader) *cobra.Command {
	var (
		req          dto.SaveFormatRequest
		templateFile string
	)
	cmd := &cobra.Command{
		Use:   "set <country>",
		Short: "Create or update the format of a country",
		Example: `  addressctl format set AT --template-file at.txt \
    --required addressLine1,locality,postalCode --postal-pattern '\d{4}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateFile != "" {
				data, err := os.ReadFile(templateFile)
				if err != nil {
					return err
				}
				req.Format = string(data)
			}
			if err := validator.Validate(&req); err != nil {
				return err
			}
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				format, err := env.useCases.Format.Save(ctx, args[0], req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), format)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Format, "template", "", "format template, lines separated by \\n")
	f.StringVar(&templateFile, "template-file", "", "read the template from a file")
	f.StringSliceVar(&req.RequiredFields, "required", nil, "required fields")
	f.StringSliceVar(&req.UppercaseFields, "uppercase", nil, "fields upper-cased in postal mode")
	f.StringVar(&req.AdministrativeAreaType, "administrative-area-type", "", "administrative area label type")
	f.StringVar(&req.LocalityType, "locality-type", "", "locality label type")
	f.StringVar(&req.DependentLocalityType, "dependent-locality-type", "", "dependent locality label type")
	f.StringVar(&req.PostalCodeType, "postal-code-type", "", "postal code label type")
	f.StringVar(&req.PostalCodePattern, "postal-pattern", "", "postal code regular expression")
	f.StringVar(&req.PostalCodePrefix, "postal-prefix", "", "postal code prefix for international mail")
	return cmd
}

func newFormatDeleteCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <country>",
		Short: "Delete a format together with the subdivisions of the country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				if err := env.useCases.Format.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", strings.ToUpper(args[0]))
				return err
			})
		},
	}
}
