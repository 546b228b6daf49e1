package middleware

import (
	"fmt"
	"net/http"

	"github.com/xxxsen/davgate/proxyutil"
	"github.com/xxxsen/davgate/server/model"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	proxy "github.com/xxxsen/common/webapi/proxyutil"
	"go.uber.org/zap"
)

const (
	defaultDriveConfigHeader = "X-Drive-Config"
)

// MustDriveConfigMiddleware 从请求头解析本次请求的网盘配置并写入context,
// 配置仅在请求生命周期内存在, 不落地
func MustDriveConfigMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		raw := c.GetHeader(defaultDriveConfigHeader)
		if len(raw) == 0 {
			proxy.FailStatus(c, http.StatusUnauthorized, fmt.Errorf("no drive config header found"))
			return
		}
		info := &model.DriveConfig{}
		if err := info.Decode(raw); err != nil {
			logutil.GetLogger(ctx).Error("decode drive config failed", zap.Error(err))
			proxy.FailStatus(c, http.StatusBadRequest, fmt.Errorf("decode drive config failed, err:%w", err))
			return
		}
		c.Request = c.Request.WithContext(proxyutil.SetDriveInfo(ctx, info))
	}
}
