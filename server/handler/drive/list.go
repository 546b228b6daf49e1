package drive

import (
	"fmt"

	"github.com/xxxsen/davgate/server/model"
	"github.com/xxxsen/davgate/webdav"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	proxy "github.com/xxxsen/common/webapi/proxyutil"
	"go.uber.org/zap"
)

func (h *DriveHandler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()
	drive, ok := h.mustDriveInfo(c)
	if !ok {
		return
	}
	location := h.requestPath(c)
	body, err := h.cli.Propfind(ctx, drive, location, 1)
	if err != nil {
		h.failUpstream(c, fmt.Errorf("propfind failed, location:%s, err:%w", location, err))
		return
	}
	ents := webdav.ParseMultistatus(body, location)
	logutil.GetLogger(ctx).Debug("list entries", zap.String("location", location), zap.Int("count", len(ents)))
	items := make([]*model.DirEntryItem, 0, len(ents))
	for _, ent := range ents {
		items = append(items, &model.DirEntryItem{
			Filename: ent.Filename,
			Basename: ent.Basename,
			Type:     string(ent.Type),
			Size:     ent.Size,
		})
	}
	proxy.SuccessJson(c, &model.ListEntriesResponse{Entries: items})
}
