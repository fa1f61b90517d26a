package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local reward selection",
	}

	add := &cobra.Command{
		Use:   "add <project-id> <reward-id> <quantity>",
		Short: "Add a reward line item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quantity: %w", err)
			}
			a.cart.AddItem(args[0], args[1], quantity)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <project-id> <reward-id> <quantity>",
		Short: "Update the quantity of an existing line item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid quantity: %w", err)
			}
			a.cart.UpdateQuantity(args[0], args[1], quantity)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <project-id> <reward-id>",
		Short: "Remove a reward line item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.RemoveItem(args[0], args[1])
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show the cart for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, item := range a.cart.Items(args[0]) {
				fmt.Printf("%s x%d\n", item.RewardID, item.Quantity)
			}
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear all project carts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cart.ResetCart()
			return nil
		},
	}

	cmd.AddCommand(add, set, remove, show, reset)
	return cmd
}
