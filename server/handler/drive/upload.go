package drive

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *DriveHandler) UploadEntry(c *gin.Context) {
	ctx := c.Request.Context()
	drive, ok := h.mustDriveInfo(c)
	if !ok {
		return
	}
	location := h.requestPath(c)
	if err := h.cli.Upload(ctx, drive, location, c.Request.Body, c.Request.ContentLength); err != nil {
		h.failUpstream(c, fmt.Errorf("upload failed, location:%s, err:%w", location, err))
		return
	}
	c.Status(http.StatusCreated)
}
