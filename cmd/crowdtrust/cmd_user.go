package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/feature"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/task"
	"github.com/spf13/cobra"
)

func (a *app) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the user session and profile",
	}

	login := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and print the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.api.Login(cmd.Context(), model.LoginRequest{
				Email:    args[0],
				Password: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Printf("user_id=%s\ntoken=%s\n", res.UserID, res.AuthToken)
			return nil
		},
	}

	me := &cobra.Command{
		Use:   "me",
		Short: "Show the current user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.user.GetUser(cmd.Context())
			user := a.user.User()
			if user == nil {
				return fmt.Errorf("not logged in")
			}
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			if user.Location != "" {
				fmt.Println(user.Location)
			}
			if user.EthAddress != "" {
				fmt.Printf("eth: %s\n", user.EthAddress)
			}
			return nil
		},
	}

	var name, location, ethAddress string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := model.UpdateUserRequest{}
			if cmd.Flags().Changed("name") {
				payload.Name = &name
			}
			if cmd.Flags().Changed("location") {
				payload.Location = &location
			}
			if cmd.Flags().Changed("eth-address") {
				payload.EthAddress = &ethAddress
			}
			return a.user.UpdateUser(cmd.Context(), payload)
		},
	}
	update.Flags().StringVar(&name, "name", "", "display name")
	update.Flags().StringVar(&location, "location", "", "location")
	update.Flags().StringVar(&ethAddress, "eth-address", "", "payout address")

	session := &cobra.Command{
		Use:   "session <email> <password>",
		Short: "Log in and keep the session alive until interrupted",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.api.Login(cmd.Context(), model.LoginRequest{
				Email:    args[0],
				Password: args[1],
			}); err != nil {
				return err
			}
			a.user.GetUser(cmd.Context())

			manager := task.Start(a.api, a.user, a.config)
			defer manager.Stop()
			logger.Info("Session started, refreshing every %ds", a.config.Task.RefreshInterval)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop
			return nil
		},
	}

	listProjects := &cobra.Command{
		Use:   "projects",
		Short: "List projects created by the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := feature.ListProjectParams{}
			a.user.LoadCreatedProjects(cmd.Context(), &params)
			for _, project := range params.Projects {
				fmt.Printf("%s  %-30s  %s\n", project.ID, project.Name, project.Status)
			}
			return nil
		},
	}

	cmd.AddCommand(login, me, update, session, listProjects)
	return cmd
}
