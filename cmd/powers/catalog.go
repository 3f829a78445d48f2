package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smkun/MarvelPowers/internal/entities"
	"github.com/smkun/MarvelPowers/internal/errors"
	"github.com/smkun/MarvelPowers/internal/orchestrators/builder"
)

var (
	searchGroup  string
	searchTraits bool
	showCategory string
	showWidth    int
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the power sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			out, err := a.service.ListGroups(ctx, &builder.ListGroupsInput{})
			if err != nil {
				return err
			}
			for _, g := range out.Groups {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "List powers by name or power set",
	Long: `List the powers whose name contains term, case-insensitive. With
--group the powers of that power set are listed instead; with neither every
power is listed. --traits searches the traits catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 1 {
			term = args[0]
		}

		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			var names []string
			if searchTraits {
				out, err := a.service.ListTraits(ctx, &builder.ListTraitsInput{Search: term})
				if err != nil {
					return err
				}
				names = out.Names
			} else {
				out, err := a.service.FilterPowers(ctx, &builder.FilterPowersInput{
					Group:  searchGroup,
					Search: term,
				})
				if err != nil {
					return err
				}
				names = out.Names
			}

			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the details of a power or trait",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, ok := entities.ParseCategory(showCategory)
		if !ok {
			return errors.InvalidArgumentf("unknown category %q, use power or trait", showCategory)
		}

		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			out, err := a.service.GetDetails(ctx, &builder.GetDetailsInput{
				Category: category,
				Name:     args[0],
			})
			if err != nil {
				return err
			}
			renderDetails(cmd.OutOrStdout(), category, out.Lines, showWidth)
			return nil
		})
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchGroup, "group", "", "list the powers of this power set")
	searchCmd.Flags().BoolVar(&searchTraits, "traits", false, "search traits instead of powers")
	showCmd.Flags().StringVar(&showCategory, "category", string(entities.CategoryPower), "catalog to look in: power or trait")
	showCmd.Flags().IntVar(&showWidth, "width", defaultWidth, "wrap width")
}
