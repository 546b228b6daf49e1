package drive

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *DriveHandler) RemoveEntry(c *gin.Context) {
	ctx := c.Request.Context()
	drive, ok := h.mustDriveInfo(c)
	if !ok {
		return
	}
	location := h.requestPath(c)
	if err := h.cli.Delete(ctx, drive, location); err != nil {
		h.failUpstream(c, fmt.Errorf("delete failed, location:%s, err:%w", location, err))
		return
	}
	c.Status(http.StatusNoContent)
}
