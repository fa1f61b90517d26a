package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/asset"
	"github.com/spf13/cobra"
)

func (a *app) assetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Upload and manage project media",
	}

	upload := &cobra.Command{
		Use:   "upload <project-id> <file>...",
		Short: "Validate and upload media files to a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectId := args[0]

			var files []*asset.ValidatedFile
			for _, path := range args[1:] {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				file, err := asset.ValidateMedia(asset.MediaRequirements{
					Size: a.config.Upload.MaxImageSize,
				}, filepath.Base(path), data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				files = append(files, file)
			}

			results, errs := a.uploader.UploadAllProjectAssets(cmd.Context(), projectId, files)
			failed := 0
			for i, result := range results {
				if errs[i] != nil {
					failed++
					fmt.Printf("%s: upload failed: %v\n", files[i].Name, errs[i])
					continue
				}
				fmt.Printf("%s: %s\n", files[i].Name, result.Url)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(files))
			}
			return nil
		},
	}

	replace := &cobra.Command{
		Use:   "replace <asset-id> <file>",
		Short: "Replace the content of a project asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}
			file, err := asset.ValidateMedia(asset.MediaRequirements{
				Size: a.config.Upload.MaxImageSize,
			}, filepath.Base(args[1]), data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			result, err := a.uploader.ReplaceProjectAsset(cmd.Context(), args[0], file)
			if err != nil {
				return err
			}
			fmt.Println(result.Url)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <asset-id>",
		Short: "Delete a project asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.uploader.DeleteProjectAsset(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(upload, replace, remove)
	return cmd
}
