package main

import (
	"os"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/asset"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/cart"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/feature"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/spf13/cobra"
)

// app CLI共享的客户端与存储，首个命令执行前初始化
type app struct {
	config   *config.Config
	api      *api.Client
	cart     *cart.Store
	uploader *asset.Uploader
	projects *feature.ProjectFeature
	user     *feature.UserFeature
}

func newApp() *app {
	cfg := config.Load()

	if err := logger.InitFromConfig(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}

	apiClient := api.New(cfg.Api)

	cartStore, err := cart.NewStore(cfg.Cart)
	if err != nil {
		logger.Fatal("Failed to open cart store: %v", err)
	}

	return &app{
		config:   cfg,
		api:      apiClient,
		cart:     cartStore,
		uploader: asset.NewUploader(apiClient, cfg.Assets, cfg.Upload),
		projects: feature.NewProjectFeature(apiClient, cartStore),
		user:     feature.NewUserFeature(apiClient, cartStore),
	}
}

func main() {
	a := newApp()

	var token, userId string
	root := &cobra.Command{
		Use:   "crowdtrust",
		Short: "CrowdTrust platform client",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if token != "" {
				a.api.SetAuth(token, userId)
			}
		},
	}
	root.PersistentFlags().StringVar(&token, "token", "", "session token from user login")
	root.PersistentFlags().StringVar(&userId, "user-id", "", "user id matching the session token")
	root.AddCommand(
		a.projectsCmd(),
		a.userCmd(),
		a.cartCmd(),
		a.pledgeCmd(),
		a.assetCmd(),
		a.chainCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
