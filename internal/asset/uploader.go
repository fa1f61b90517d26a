package asset

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/panjf2000/ants/v2"
)

// UploadResult 上传完成的资源及其公开访问地址
type UploadResult struct {
	model.CreateAssetResponse
	Url string
}

// Uploader 资源上传工作流：注册资源 -> 直传签名地址 -> 校验。
// 项目资源和回报资源走同一套流程。
type Uploader struct {
	api         *api.Client
	projectBase string
	rewardBase  string
	concurrency int
}

// NewUploader 创建资源上传器
func NewUploader(apiClient *api.Client, assets config.AssetConfig, upload config.UploadConfig) *Uploader {
	concurrency := upload.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Uploader{
		api:         apiClient,
		projectBase: assets.ProjectBaseUrl,
		rewardBase:  assets.RewardBaseUrl,
		concurrency: concurrency,
	}
}

// ProjectAssetUrl 项目资源的公开访问地址
func (u *Uploader) ProjectAssetUrl(res *model.CreateAssetResponse) string {
	if res == nil {
		return ""
	}
	return assetUrl(u.projectBase, res.ProjectID, res.ID, res.ContentType)
}

// RewardAssetUrl 回报资源的公开访问地址
func (u *Uploader) RewardAssetUrl(res *model.CreateAssetResponse) string {
	if res == nil {
		return ""
	}
	return assetUrl(u.rewardBase, res.RewardID, res.ID, res.ContentType)
}

func assetUrl(base, container, id string, contentType model.AssetContentType) string {
	ext := model.ExtFromContentType(contentType)
	if ext != "" {
		ext = "." + ext
	}
	return fmt.Sprintf("%s/%s/%s%s", base, container, id, ext)
}

// CreateProjectAsset 注册项目资源并把文件字节直传到签名地址
func (u *Uploader) CreateProjectAsset(ctx context.Context, payload model.CreateAssetRequest, data []byte) (*UploadResult, error) {
	res, err := u.api.CreateProjectAsset(ctx, payload)
	if err != nil {
		return nil, err
	}
	if err := u.api.UploadSignedURL(ctx, res.SignedURL, bytes.NewReader(data), string(res.ContentType), int64(len(data))); err != nil {
		return nil, err
	}
	return &UploadResult{CreateAssetResponse: *res, Url: u.ProjectAssetUrl(res)}, nil
}

// VerifyProjectAsset 校验项目资源，校验结果为否时报错不重试
func (u *Uploader) VerifyProjectAsset(ctx context.Context, id string) error {
	res, err := u.api.VerifyProjectAsset(ctx, id)
	if err != nil {
		return err
	}
	if !res.Verified {
		return fmt.Errorf("asset %s verification failed", id)
	}
	return nil
}

// DeleteProjectAsset 删除项目资源记录，存储对象由服务端负责清理
func (u *Uploader) DeleteProjectAsset(ctx context.Context, id string) error {
	return u.api.DeleteProjectAsset(ctx, id)
}

// UploadProjectAsset 完整三步上传：注册+直传，然后校验
func (u *Uploader) UploadProjectAsset(ctx context.Context, projectId string, file *ValidatedFile) (*UploadResult, error) {
	result, err := u.CreateProjectAsset(ctx, model.CreateAssetRequest{
		ContentSize: int64(len(file.Data)),
		ContentType: file.Type,
		ProjectID:   projectId,
	}, file.Data)
	if err != nil {
		return nil, err
	}
	if err := u.VerifyProjectAsset(ctx, result.ID); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceProjectAsset 替换项目资源内容：服务端为同一资源换发新的签名地址并
// 作废旧字节，随后直传新内容并重新校验。资源ID和访问地址保持不变。
func (u *Uploader) ReplaceProjectAsset(ctx context.Context, id string, file *ValidatedFile) (*UploadResult, error) {
	res, err := u.api.UpdateProjectAsset(ctx, id, model.ReplaceAssetRequest{
		Name:        file.Name,
		ContentSize: int64(len(file.Data)),
		ContentType: file.Type,
	})
	if err != nil {
		return nil, err
	}
	if err := u.api.UploadSignedURL(ctx, res.SignedURL, bytes.NewReader(file.Data), string(res.ContentType), int64(len(file.Data))); err != nil {
		return nil, err
	}
	if err := u.VerifyProjectAsset(ctx, res.ID); err != nil {
		return nil, err
	}
	return &UploadResult{CreateAssetResponse: *res, Url: u.ProjectAssetUrl(res)}, nil
}

// UploadAllProjectAssets 用协程池并发上传多个文件，结果与输入同序。
// 任一文件失败记入对应位置的错误，不影响其他文件。
func (u *Uploader) UploadAllProjectAssets(ctx context.Context, projectId string, files []*ValidatedFile) ([]*UploadResult, []error) {
	results := make([]*UploadResult, len(files))
	uploadErrs := make([]error, len(files))

	pool, err := ants.NewPool(u.concurrency)
	if err != nil {
		for i := range uploadErrs {
			uploadErrs[i] = fmt.Errorf("failed to create upload pool: %w", err)
		}
		return results, uploadErrs
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, file := range files {
		i, file := i, file
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], uploadErrs[i] = u.UploadProjectAsset(ctx, projectId, file)
		})
		if submitErr != nil {
			uploadErrs[i] = submitErr
			wg.Done()
		}
	}
	wg.Wait()
	return results, uploadErrs
}

// CreateRewardAsset 注册回报资源并直传文件字节
func (u *Uploader) CreateRewardAsset(ctx context.Context, payload model.CreateRewardAssetRequest, data []byte) (*UploadResult, error) {
	res, err := u.api.CreateRewardAsset(ctx, payload)
	if err != nil {
		return nil, err
	}
	if err := u.api.UploadSignedURL(ctx, res.SignedURL, bytes.NewReader(data), string(res.ContentType), int64(len(data))); err != nil {
		return nil, err
	}
	return &UploadResult{CreateAssetResponse: *res, Url: u.RewardAssetUrl(res)}, nil
}

// VerifyRewardAsset 校验回报资源
func (u *Uploader) VerifyRewardAsset(ctx context.Context, id string) error {
	res, err := u.api.VerifyRewardAsset(ctx, id)
	if err != nil {
		return err
	}
	if !res.Verified {
		return fmt.Errorf("asset %s verification failed", id)
	}
	return nil
}

// DeleteRewardAsset 删除回报资源记录
func (u *Uploader) DeleteRewardAsset(ctx context.Context, id string) error {
	return u.api.DeleteRewardAsset(ctx, id)
}

// UploadRewardImage 回报图片的完整上传流程
func (u *Uploader) UploadRewardImage(ctx context.Context, rewardId string, file *ValidatedFile) (*UploadResult, error) {
	result, err := u.CreateRewardAsset(ctx, model.CreateRewardAssetRequest{
		ContentSize: int64(len(file.Data)),
		ContentType: file.Type,
		RewardID:    rewardId,
	}, file.Data)
	if err != nil {
		return nil, err
	}
	if err := u.VerifyRewardAsset(ctx, result.ID); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceRewardImage 替换回报图片：已有图片先删除，删除失败直接返回，
// 不尝试新上传，避免出现半替换状态
func (u *Uploader) ReplaceRewardImage(ctx context.Context, file *ValidatedFile, reward *model.Reward) (*UploadResult, error) {
	if reward.Image != nil {
		if err := u.DeleteRewardAsset(ctx, reward.Image.ID); err != nil {
			logger.Warn("Reward asset error: %v", err)
			return nil, err
		}
	}
	return u.UploadRewardImage(ctx, reward.ID, file)
}
