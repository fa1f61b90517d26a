package model

import "time"

// AssetState 资源状态，Created -> Uploaded -> Verified，超时未上传为 Expired
type AssetState string

const (
	AssetStateCreated  AssetState = "Created"
	AssetStateUploaded AssetState = "Uploaded"
	AssetStateExpired  AssetState = "Expired"
	AssetStateVerified AssetState = "Verified"
)

// AssetContentType 资源内容类型
type AssetContentType string

const (
	ContentTypeJpeg AssetContentType = "image/jpeg"
	ContentTypePng  AssetContentType = "image/png"
	ContentTypeGif  AssetContentType = "image/gif"
	ContentTypeWebp AssetContentType = "image/webp"
	ContentTypeSvg  AssetContentType = "image/svg+xml"
	ContentTypeMp4  AssetContentType = "video/mp4"
	ContentTypeWebm AssetContentType = "video/webm"
	ContentTypePdf  AssetContentType = "application/pdf"
	ContentTypeWasm AssetContentType = "application/wasm"
	ContentTypeJs   AssetContentType = "text/javascript"
	ContentTypeTtf  AssetContentType = "font/ttf"
	ContentTypeOtf  AssetContentType = "font/otf"
	ContentTypeWoff AssetContentType = "font/woff2"
)

// ContentTypeExts 内容类型到文件扩展名的固定映射
var ContentTypeExts = map[AssetContentType]string{
	ContentTypeJpeg: "jpg",
	ContentTypePng:  "png",
	ContentTypeGif:  "gif",
	ContentTypeWebp: "webp",
	ContentTypeSvg:  "svg",
	ContentTypeMp4:  "mp4",
	ContentTypeWebm: "webm",
	ContentTypePdf:  "pdf",
	ContentTypeWasm: "wasm",
	ContentTypeJs:   "js",
	ContentTypeTtf:  "ttf",
	ContentTypeOtf:  "otf",
	ContentTypeWoff: "woff2",
}

// ImageContentTypes 图片类型
var ImageContentTypes = []AssetContentType{
	ContentTypeJpeg, ContentTypePng, ContentTypeGif, ContentTypeWebp, ContentTypeSvg,
}

// VideoContentTypes 视频类型
var VideoContentTypes = []AssetContentType{ContentTypeMp4, ContentTypeWebm}

// MediaContentTypes 默认允许的媒体类型
var MediaContentTypes = append(append([]AssetContentType{}, ImageContentTypes...), VideoContentTypes...)

// ExtFromContentType 根据内容类型取扩展名，未知类型返回空串
func ExtFromContentType(contentType AssetContentType) string {
	return ContentTypeExts[contentType]
}

// ContentTypeFromExt 根据扩展名取内容类型
func ContentTypeFromExt(ext string) (AssetContentType, bool) {
	if ext == "jpeg" {
		ext = "jpg"
	}
	for contentType, e := range ContentTypeExts {
		if e == ext {
			return contentType, true
		}
	}
	return "", false
}

// Asset 资源视图模型，project 资源与 reward 资源结构一致，
// OwnerID 对应 project_id 或 reward_id
type Asset struct {
	ID              string           `json:"id"`
	Size            int64            `json:"size"`
	ContentType     AssetContentType `json:"content_type"`
	State           AssetState       `json:"state"`
	UserID          string           `json:"user_id"`
	ProjectID       string           `json:"project_id,omitempty"`
	RewardID        string           `json:"reward_id,omitempty"`
	UploadExpiresAt time.Time        `json:"upload_expires_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
