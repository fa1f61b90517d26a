package asset

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// 校验失败时累积的错误键，由UI层翻译展示
const (
	ErrFileSizeBig    = "FILE_SIZE_BIG"
	ErrFileType       = "FILE_TYPE"
	ErrImageMinWidth  = "IMAGE_MIN_WIDTH"
	ErrImageMinHeight = "IMAGE_MIN_HEIGHT"
	ErrImageMaxWidth  = "IMAGE_MAX_WIDTH"
	ErrImageMaxHeight = "IMAGE_MAX_HEIGHT"
)

// FileError 媒体校验失败，FileErrors为全部失败项
type FileError struct {
	FileErrors []string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file validation failed: %s", strings.Join(e.FileErrors, ", "))
}

// MediaRequirements 媒体校验要求，零值字段跳过对应检查
type MediaRequirements struct {
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
	Types     []model.AssetContentType
	Size      int64
}

// ValidatedFile 通过校验的文件
type ValidatedFile struct {
	Name string
	Data []byte
	Type model.AssetContentType
}

// parseExt 取文件扩展名，jpeg归一化为jpg
func parseExt(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return ""
	}
	ext := strings.ToLower(fileName[idx+1:])
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}

// ValidateMedia 在任何网络调用前校验文件：大小上限、扩展名允许列表，
// 图片再检查尺寸范围，视频检查容器头可解析。所有失败累积后一次抛出。
func ValidateMedia(req MediaRequirements, fileName string, data []byte) (*ValidatedFile, error) {
	var errs []string

	validTypes := req.Types
	if len(validTypes) == 0 {
		validTypes = model.MediaContentTypes
	}

	if req.Size > 0 && int64(len(data)) > req.Size {
		errs = append(errs, ErrFileSizeBig)
	}

	ext := parseExt(fileName)
	contentType, known := model.ContentTypeFromExt(ext)
	if !known || !containsType(validTypes, contentType) {
		errs = append(errs, ErrFileType)
	}
	if len(errs) > 0 {
		return nil, &FileError{FileErrors: errs}
	}

	result := &ValidatedFile{Name: fileName, Data: data, Type: contentType}

	switch {
	case containsType(model.ImageContentTypes, contentType):
		errs = checkImage(req, contentType, data)
	case containsType(model.VideoContentTypes, contentType):
		if !videoDecodable(contentType, data) {
			errs = append(errs, ErrFileType)
		}
	}
	if len(errs) > 0 {
		return nil, &FileError{FileErrors: errs}
	}
	return result, nil
}

// checkImage 解码图片头并检查尺寸范围。
// svg和webp没有标准库解码器，跳过尺寸检查，由服务端兜底。
func checkImage(req MediaRequirements, contentType model.AssetContentType, data []byte) []string {
	if contentType == model.ContentTypeSvg || contentType == model.ContentTypeWebp {
		return nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return []string{ErrFileType}
	}

	var errs []string
	if req.MinWidth > 0 && cfg.Width < req.MinWidth {
		errs = append(errs, ErrImageMinWidth)
	}
	if req.MinHeight > 0 && cfg.Height < req.MinHeight {
		errs = append(errs, ErrImageMinHeight)
	}
	if req.MaxWidth > 0 && cfg.Width > req.MaxWidth {
		errs = append(errs, ErrImageMaxWidth)
	}
	if req.MaxHeight > 0 && cfg.Height > req.MaxHeight {
		errs = append(errs, ErrImageMaxHeight)
	}
	return errs
}

// videoDecodable 检查视频容器头，mp4找ftyp box，webm找EBML魔数
func videoDecodable(contentType model.AssetContentType, data []byte) bool {
	switch contentType {
	case model.ContentTypeMp4:
		return len(data) >= 12 && bytes.Equal(data[4:8], []byte("ftyp"))
	case model.ContentTypeWebm:
		return len(data) >= 4 && bytes.Equal(data[:4], []byte{0x1A, 0x45, 0xDF, 0xA3})
	}
	return false
}

func containsType(types []model.AssetContentType, t model.AssetContentType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
