package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/address-microservice/internal/app"
)

func newSubdivisionsCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subdivisions",
		Aliases: []string{"subdivision"},
		Short:   "Browse the subdivision hierarchy of a country",
	}
	cmd.AddCommand(newSubdivisionsListCommand(load), newSubdivisionsDepthCommand(load))
	return cmd
}

func newSubdivisionsListCommand(load loader) *cobra.Command {
	var parent, locale string
	cmd := &cobra.Command{
		Use:   "list <country>",
		Short: "List the children of a parent (top level when --parent is empty)",
		Example: `  addressctl subdivisions list BR
  addressctl subdivisions list CN --parent CN-SC-CD --locale zh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				result, err := env.useCases.Subdivision.Children(ctx, args[0], parent, locale)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, item := range result.Items {
					marker := ""
					if item.HasChildren {
						marker = " +"
					}
					fmt.Fprintf(out, "%s\t%s%s\n", item.ID, item.Name, marker)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "parent subdivision id")
	cmd.Flags().StringVar(&locale, "locale", "", "locale for names")
	return cmd
}

func newSubdivisionsDepthCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "depth <country>",
		Short: "Print the number of subdivision levels of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnvironment(cmd, load, app.Options{}, func(ctx context.Context, env *environment) error {
				result, err := env.useCases.Subdivision.Depth(ctx, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Depth)
				return err
			})
		},
	}
}
