package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/chain"
	"github.com/spf13/cobra"
)

func (a *app) chainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Interact with the CrowdTrust contract",
	}

	var chainClient *chain.Client
	connect := func() (*chain.Client, error) {
		if chainClient != nil {
			return chainClient, nil
		}
		client, err := chain.Init(a.config.Chain)
		if err != nil {
			return nil, err
		}
		chainClient = client
		return client, nil
	}

	back := &cobra.Command{
		Use:   "back <project-id> <amount-wei>",
		Short: "Back a project on chain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect()
			if err != nil {
				return err
			}
			projectId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id: %w", err)
			}
			value, ok := new(big.Int).SetString(args[1], 10)
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}
			tx, err := client.BackProject(cmd.Context(), projectId, value)
			if err != nil {
				return err
			}
			// 不等待上链，交易哈希交给调用方跟踪
			fmt.Printf("submitted: %s\n", tx.Hash().Hex())
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create <name> <start> <end> <goal-wei>",
		Short: "Create a project on chain",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect()
			if err != nil {
				return err
			}
			start, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid start time: %w", err)
			}
			end, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid end time: %w", err)
			}
			goal, ok := new(big.Int).SetString(args[3], 10)
			if !ok {
				return fmt.Errorf("invalid goal: %s", args[3])
			}
			tx, err := client.CreateProject(cmd.Context(), args[0], start, end, goal)
			if err != nil {
				return err
			}
			fmt.Printf("submitted: %s\n", tx.Hash().Hex())
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status <project-id>",
		Short: "Read on-chain project state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect()
			if err != nil {
				return err
			}
			projectId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id: %w", err)
			}
			view, err := client.GetProject(cmd.Context(), projectId)
			if err != nil {
				return err
			}
			fmt.Printf("%s start=%d end=%d goal=%s pledged=%s\n",
				view.Name, view.StartTime, view.EndTime, view.Goal, view.TotalPledged)
			return nil
		},
	}

	cmd.AddCommand(back, create, status)
	return cmd
}
