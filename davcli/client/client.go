package client

import (
	"context"
	"io"

	"github.com/xxxsen/davgate/server/model"
)

type IClient interface {
	List(ctx context.Context, path string) ([]*model.DirEntryItem, error)
	Download(ctx context.Context, path string) (io.ReadCloser, int64, error)
	Upload(ctx context.Context, path string, r io.Reader, size int64) error
	Mkdir(ctx context.Context, path string) error
	Remove(ctx context.Context, path string) error
	Move(ctx context.Context, src string, dst string, overwrite bool) error
	Copy(ctx context.Context, src string, dst string, overwrite bool) error
}
