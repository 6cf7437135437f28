package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/address-microservice/internal/app"
	"github.com/address-microservice/internal/pkg/validator"
	"github.com/address-microservice/internal/usecase/dto"
)

// addressFlags регистрирует поля адреса как флаги команды
func addressFlags(cmd *cobra.Command, addr *dto.AddressInput) {
	f := cmd.Flags()
	f.StringVarP(&addr.CountryCode, "country", "c", "", "country code (ISO 3166-1 alpha-2)")
	f.StringVar(&addr.AdministrativeArea, "administrative-area", "", "state, province or subdivision id")
	f.StringVar(&addr.Locality, "locality", "", "city or subdivision id")
	f.StringVar(&addr.DependentLocality, "dependent-locality", "", "district or suburb")
	f.StringVar(&addr.PostalCode, "postal-code", "", "postal code")
	f.StringVar(&addr.SortingCode, "sorting-code", "", "sorting code (CEDEX)")
	f.StringVar(&addr.AddressLine1, "address-line1", "", "street address")
	f.StringVar(&addr.AddressLine2, "address-line2", "", "street address line 2")
	f.StringVar(&addr.Organization, "organization", "", "company")
	f.StringVar(&addr.Recipient, "recipient", "", "contact name")
}

func newRenderCommand(load loader) *cobra.Command {
	var req dto.RenderRequest

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an address with its country format",
		Example: `  addressctl render -c US --recipient "Jane Doe" --address-line1 "123 Main St" \
    --locality Springfield --administrative-area IL --postal-code 62701

  # postal label for mail sent from Germany
  addressctl render -c FR --address-line1 "1 rue de Rivoli" --postal-code 75001 \
    --locality Paris --mode postal --origin DE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(&req); err != nil {
				return err
			}
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				result, err := env.useCases.Render.Render(ctx, req)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
				return err
			})
		},
	}

	addressFlags(cmd, &req.Address)
	cmd.Flags().StringVar(&req.Locale, "locale", "", "locale for the format template and names")
	cmd.Flags().StringVar(&req.Mode, "mode", "", "rendering mode: default or postal")
	cmd.Flags().StringVar(&req.OriginCountry, "origin", "", "sender country for postal mode")
	return cmd
}

func newValidateCommand(load loader) *cobra.Command {
	var req dto.ValidateAddressRequest

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an address against its country format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Validate(&req); err != nil {
				return err
			}
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				result, err := env.useCases.Validation.Validate(ctx, req)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if result.Valid {
					_, err = fmt.Fprintln(out, "valid")
					return err
				}
				for _, v := range result.Violations {
					fmt.Fprintf(out, "%s: %s\n", v.Field, v.Message)
				}
				return fmt.Errorf("address has %d violation(s)", len(result.Violations))
			})
		},
	}

	addressFlags(cmd, &req.Address)
	cmd.Flags().StringVar(&req.Locale, "locale", "", "locale for messages and names")
	cmd.Flags().StringSliceVar(&req.AvailableCountries, "available", nil, "restrict accepted countries")
	return cmd
}
