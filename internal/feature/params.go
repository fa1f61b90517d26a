package feature

import (
	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// Params 功能函数的UI绑定状态，调用期间置Loading，失败写入Error键
type Params struct {
	Loading bool
	Error   string
}

// ListProjectParams 项目列表状态
type ListProjectParams struct {
	Params
	Projects []model.Project
}

// GetProjectParams 项目详情状态
type GetProjectParams struct {
	Params
	Project *model.Project
}

// GetPledgeParams 支持记录状态
type GetPledgeParams struct {
	Params
	Pledge *model.Pledge
}

// ErrorKey 把错误翻译成本地化键，具体错误码的映射归这里统一维护
func ErrorKey(err error) string {
	if err == nil {
		return ""
	}
	if code := api.CodeOf(err); code != "" && code != "Unknown" {
		return "errors." + code
	}
	switch api.StatusOf(err) {
	case 401, 403:
		return "errors.Unauthorized"
	case 404:
		return "errors.NotFound"
	}
	return "errors.Network"
}
