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
	sessionHero   string
	sessionPowers []string
	sessionTraits []string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Edit saved hero sessions",
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <session>",
	Short: "Add powers and traits to a session, creating it if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			if err := openSession(ctx, a, args[0], true); err != nil {
				return err
			}
			if sessionHero != "" {
				if _, err := a.service.SetHeroName(ctx, &builder.SetHeroNameInput{HeroName: sessionHero}); err != nil {
					return err
				}
			}

			for _, sel := range selections() {
				_, err := a.service.AddSelection(ctx, &builder.AddSelectionInput{
					Category: sel.category,
					Name:     sel.name,
				})
				if errors.IsNotice(err) {
					renderNotice(cmd.OutOrStdout(), errors.GetTitle(err), errors.GetMessage(err))
					continue
				}
				if err != nil {
					return err
				}
			}

			return saveSession(ctx, cmd, a, args[0])
		})
	},
}

var sessionRemoveCmd = &cobra.Command{
	Use:   "remove <session>",
	Short: "Remove powers and traits from a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			if err := openSession(ctx, a, args[0], false); err != nil {
				return err
			}

			for _, sel := range selections() {
				if _, err := a.service.RemoveSelection(ctx, &builder.RemoveSelectionInput{
					Category: sel.category,
					Name:     sel.name,
				}); err != nil {
					return err
				}
			}

			return saveSession(ctx, cmd, a, args[0])
		})
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session>",
	Short: "Print a session's selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			if err := openSession(ctx, a, args[0], false); err != nil {
				return err
			}

			out, err := a.service.GetSelection(ctx, &builder.GetSelectionInput{})
			if err != nil {
				return err
			}
			renderSelection(cmd.OutOrStdout(), out.HeroName, out.Powers, out.Traits, a.preset.IncludeTraits)
			return nil
		})
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset <session>",
	Short: "Clear a session's powers and traits",
	Long: `Clear a session's powers and traits. The hero name is kept so the
session can still be saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			if err := openSession(ctx, a, args[0], false); err != nil {
				return err
			}

			current, err := a.service.GetSelection(ctx, &builder.GetSelectionInput{})
			if err != nil {
				return err
			}
			if _, err := a.service.Reset(ctx, &builder.ResetInput{}); err != nil {
				return err
			}
			if _, err := a.service.SetHeroName(ctx, &builder.SetHeroNameInput{HeroName: current.HeroName}); err != nil {
				return err
			}

			return saveSession(ctx, cmd, a, args[0])
		})
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			out, err := a.service.ListSessions(ctx, &builder.ListSessionsInput{})
			if err != nil {
				return err
			}
			for _, n := range out.Names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		})
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session>",
	Short: "Delete a saved session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), false, func(ctx context.Context, a *app) error {
			_, err := a.service.DeleteSession(ctx, &builder.DeleteSessionInput{Name: args[0]})
			return err
		})
	},
}

type namedSelection struct {
	category entities.Category
	name     string
}

func selections() []namedSelection {
	var out []namedSelection
	for _, p := range sessionPowers {
		out = append(out, namedSelection{category: entities.CategoryPower, name: p})
	}
	for _, t := range sessionTraits {
		out = append(out, namedSelection{category: entities.CategoryTrait, name: t})
	}
	return out
}

// openSession loads name into the builder. A missing session starts empty
// when create is set.
func openSession(ctx context.Context, a *app, name string, create bool) error {
	_, err := a.service.LoadSession(ctx, &builder.LoadSessionInput{Name: name})
	if errors.IsNotFound(err) && create {
		return nil
	}
	return err
}

func saveSession(ctx context.Context, cmd *cobra.Command, a *app, name string) error {
	out, err := a.service.SaveSession(ctx, &builder.SaveSessionInput{Name: name})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Message)
	return nil
}

func init() {
	sessionAddCmd.Flags().StringVar(&sessionHero, "hero", "", "hero name")
	for _, c := range []*cobra.Command{sessionAddCmd, sessionRemoveCmd} {
		c.Flags().StringArrayVar(&sessionPowers, "power", nil, "power name (repeatable)")
		c.Flags().StringArrayVar(&sessionTraits, "trait", nil, "trait name (repeatable)")
	}

	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionRemoveCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionResetCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
}
