package drive

import (
	"context"
	"fmt"

	"github.com/xxxsen/davgate/server/model"

	"github.com/gin-gonic/gin"
	proxy "github.com/xxxsen/common/webapi/proxyutil"
)

func (h *DriveHandler) CopyEntry(c *gin.Context, ctx context.Context, request interface{}) {
	req := request.(*model.CopyEntryRequest)
	drive, ok := h.mustDriveInfo(c)
	if !ok {
		return
	}
	if err := h.cli.Copy(ctx, drive, req.Src, req.Dst, req.Overwrite); err != nil {
		h.failUpstream(c, fmt.Errorf("copy failed, src:%s, dst:%s, err:%w", req.Src, req.Dst, err))
		return
	}
	proxy.SuccessJson(c, &model.CopyEntryResponse{})
}
