package drive

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

func (h *DriveHandler) DownloadEntry(c *gin.Context) {
	ctx := c.Request.Context()
	drive, ok := h.mustDriveInfo(c)
	if !ok {
		return
	}
	location := h.requestPath(c)
	rs, err := h.cli.Download(ctx, drive, location)
	if err != nil {
		h.failUpstream(c, fmt.Errorf("download failed, location:%s, err:%w", location, err))
		return
	}
	defer rs.Body.Close()
	if len(rs.ContentType) != 0 {
		c.Writer.Header().Set("Content-Type", rs.ContentType)
	}
	if rs.ContentLength >= 0 {
		c.Writer.Header().Set("Content-Length", strconv.FormatInt(rs.ContentLength, 10))
	}
	if len(rs.LastModified) != 0 {
		c.Writer.Header().Set("Last-Modified", rs.LastModified)
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rs.Body); err != nil {
		// 响应头已写出, 只能记录日志
		logutil.GetLogger(ctx).Error("copy download stream failed", zap.String("location", location), zap.Error(err))
	}
}
