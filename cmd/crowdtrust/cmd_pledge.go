package main

import (
	"fmt"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/feature"
	"github.com/spf13/cobra"
)

func (a *app) pledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pledge",
		Short: "Inspect pledges and reconcile with the local cart",
	}

	show := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show the user's pledge on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectId := args[0]
			params := feature.GetPledgeParams{}
			a.projects.GetPledge(cmd.Context(), projectId, &params)
			if params.Pledge == nil {
				fmt.Println("no pledge found")
				return nil
			}
			for _, item := range params.Pledge.Items {
				fmt.Printf("%s x%d paid=%s %s\n",
					item.RewardID, item.Quantity, item.PaidPrice, item.BlockchainStatus)
			}
			if a.projects.CompareCartPledge(projectId, params.Pledge) {
				fmt.Println("source of truth: pledge")
			} else {
				fmt.Println("source of truth: local cart")
			}
			return nil
		},
	}

	cmd.AddCommand(show)
	return cmd
}
