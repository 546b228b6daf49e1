package drive

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xxxsen/davgate/davclient"
	"github.com/xxxsen/davgate/proxyutil"
	"github.com/xxxsen/davgate/server/model"

	"github.com/gin-gonic/gin"
	proxy "github.com/xxxsen/common/webapi/proxyutil"
)

type DriveHandler struct {
	cli davclient.IClient
}

func NewDriveHandler(cli davclient.IClient) *DriveHandler {
	return &DriveHandler{
		cli: cli,
	}
}

// mustDriveInfo 取中间件解析好的网盘配置, 正常情况下一定存在
func (h *DriveHandler) mustDriveInfo(c *gin.Context) (*model.DriveConfig, bool) {
	info, ok := proxyutil.GetDriveInfo(c.Request.Context())
	if !ok {
		proxy.FailStatus(c, http.StatusUnauthorized, fmt.Errorf("no drive config in context"))
		return nil, false
	}
	return info, true
}

func (h *DriveHandler) requestPath(c *gin.Context) string {
	p := c.Query("path")
	if len(p) == 0 {
		p = "/"
	}
	return p
}

// failUpstream 上游返回非2xx时原样透传状态码, 其余错误按网关错误处理
func (h *DriveHandler) failUpstream(c *gin.Context, err error) {
	var serr *davclient.StatusError
	if errors.As(err, &serr) {
		proxy.FailStatus(c, serr.Code, err)
		return
	}
	proxy.FailStatus(c, http.StatusBadGateway, err)
}
