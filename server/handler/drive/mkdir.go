package drive

import (
	"context"
	"fmt"

	"github.com/xxxsen/davgate/server/model"

	"github.com/gin-gonic/gin"
	proxy "github.com/xxxsen/common/webapi/proxyutil"
)

func (h *DriveHandler) MkdirEntry(c *gin.Context, ctx context.Context, request interface{}) {
	req := request.(*model.MkdirRequest)
	drive, ok := h.mustDriveInfo(c)
	if !ok {
		return
	}
	if err := h.cli.Mkcol(ctx, drive, req.Path); err != nil {
		h.failUpstream(c, fmt.Errorf("mkcol failed, path:%s, err:%w", req.Path, err))
		return
	}
	proxy.SuccessJson(c, &model.MkdirResponse{})
}
