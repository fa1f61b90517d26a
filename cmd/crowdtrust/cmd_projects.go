package main

import (
	"fmt"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/feature"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse crowdfunding projects",
	}

	var userId string
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := feature.ListProjectParams{}
			a.projects.ListProjects(cmd.Context(), model.ListProjectsRequest{
				UserID:    userId,
				Column:    "created_at",
				Direction: model.SortDesc,
			}, &params)
			if params.Error != "" {
				return fmt.Errorf("list projects failed: %s", params.Error)
			}
			for _, project := range params.Projects {
				fmt.Printf("%s  %-30s  %s  pledged=%s backers=%d\n",
					project.ID, project.Name, project.Status, project.TotalPledged, project.BackerCount)
			}
			return nil
		},
	}
	list.Flags().StringVar(&userId, "user", "", "filter by creator user id")

	get := &cobra.Command{
		Use:   "get <project-id>",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := feature.GetProjectParams{}
			a.projects.GetProject(cmd.Context(), args[0], &params)
			if params.Error != "" {
				return fmt.Errorf("get project failed: %s", params.Error)
			}
			project := params.Project
			fmt.Printf("%s\n%s\n\n%s\n", project.Name, project.Blurb, project.Description)
			fmt.Printf("goal=%s pledged=%s backers=%d status=%s\n",
				project.FundingGoal, project.TotalPledged, project.BackerCount, project.Status)
			for _, rewardId := range project.RewardsOrder {
				for _, reward := range project.Rewards {
					if reward.ID == rewardId {
						fmt.Printf("  reward %s: %s (%s)\n", reward.ID, reward.Name, reward.Price)
					}
				}
			}
			return nil
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}
