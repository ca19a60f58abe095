package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/accessories"
	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/ui/theme"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Buy and wear accessories",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accessories and their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		items, err := e.app.ShopItems()
		if err != nil {
			return err
		}
		byName := make(map[string]app.ShopItem, len(items))
		for _, it := range items {
			byName[it.Name] = it
		}
		out := cmd.OutOrStdout()
		for _, cat := range accessories.AllCategories() {
			accs := e.app.Shop().ByCategory(cat)
			if len(accs) == 0 {
				continue
			}
			fmt.Fprintln(out, theme.Title.Render(cat.DisplayName()))
			for _, acc := range accs {
				it := byName[acc.Name]
				state := it.State.String()
				switch {
				case it.State == accessories.StateEquipped:
					state = theme.Equipped.Render(state)
				case it.State == accessories.StateNotOwned && !it.Affordable:
					state = theme.Locked.Render(state)
				}
				fmt.Fprintf(out, "  %-14s %s  %s\n", it.Name,
					theme.Stars.Render(fmt.Sprintf("%4d ★", it.Price)), state)
			}
		}
		return nil
	},
}

func shopAction(use, short, done string, op func(*app.App, context.Context, string) (accessories.Accessory, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <accessory>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			acc, err := op(e.app, cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", done, acc.Name)
			return nil
		},
	}
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopAction("buy", "Buy an accessory with stars", "Bought", (*app.App).Purchase))
	shopCmd.AddCommand(shopAction("equip", "Wear an owned accessory", "Equipped", (*app.App).Equip))
	shopCmd.AddCommand(shopAction("unequip", "Take off an accessory", "Unequipped", (*app.App).Unequip))
}
