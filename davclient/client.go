package davclient

import (
	"context"
	"fmt"
	"io"

	"github.com/xxxsen/davgate/server/model"
)

// StatusError 携带上游返回的非2xx状态, 方便handler层原样透传给调用方
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status not ok, code:%d, status:%s", e.Code, e.Status)
}

// DownloadResult 下载流及透传所需的应答头信息
type DownloadResult struct {
	Body          io.ReadCloser
	ContentLength int64
	ContentType   string
	LastModified  string
}

// IClient 对上游webdav服务的动词级封装, 每次调用都携带本次请求解析出的网盘配置,
// 内部不做任何重试
type IClient interface {
	Propfind(ctx context.Context, drive *model.DriveConfig, path string, depth int) (string, error)
	Download(ctx context.Context, drive *model.DriveConfig, path string) (*DownloadResult, error)
	Upload(ctx context.Context, drive *model.DriveConfig, path string, r io.Reader, size int64) error
	Mkcol(ctx context.Context, drive *model.DriveConfig, path string) error
	Delete(ctx context.Context, drive *model.DriveConfig, path string) error
	Move(ctx context.Context, drive *model.DriveConfig, src string, dst string, overwrite bool) error
	Copy(ctx context.Context, drive *model.DriveConfig, src string, dst string, overwrite bool) error
}
