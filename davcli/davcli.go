package davcli

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/xxxsen/davgate/server/model"
	"github.com/xxxsen/davgate/utils"
	"github.com/xxxsen/davgate/webdav"

	"github.com/dustin/go-humanize"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DavCli struct {
	c *config
}

func New(opts ...Option) *DavCli {
	c := &config{
		Thread: 4,
	}
	for _, opt := range opts {
		opt(c)
	}
	return &DavCli{c: c}
}

func (c *DavCli) List(ctx context.Context, remote string) ([]*model.DirEntryItem, error) {
	return c.c.Client.List(ctx, remote)
}

func (c *DavCli) Mkdir(ctx context.Context, remote string) error {
	return c.c.Client.Mkdir(ctx, remote)
}

func (c *DavCli) Remove(ctx context.Context, remote string) error {
	return c.c.Client.Remove(ctx, remote)
}

func (c *DavCli) Move(ctx context.Context, src string, dst string, overwrite bool) error {
	return c.c.Client.Move(ctx, src, dst, overwrite)
}

func (c *DavCli) Copy(ctx context.Context, src string, dst string, overwrite bool) error {
	return c.c.Client.Copy(ctx, src, dst, overwrite)
}

func (c *DavCli) pullFile(ctx context.Context, remote string, local string) error {
	if err := retry.RetryDo(ctx, 3, 2*time.Second, func(ctx context.Context) error {
		r, _, err := c.c.Client.Download(ctx, remote)
		if err != nil {
			logutil.GetLogger(ctx).Error("download file failed, wait retry", zap.Error(err), zap.String("remote", remote))
			return err
		}
		defer r.Close()
		return utils.SafeSaveIOToFile(local, r)
	}); err != nil {
		return err
	}
	return nil
}

// PullDir 拉取远端目录到本地, 文件级并发下载, 子目录逐层递归
func (c *DavCli) PullDir(ctx context.Context, remote string, local string) error {
	ents, err := c.c.Client.List(ctx, remote)
	if err != nil {
		return fmt.Errorf("list remote dir failed, remote:%s, err:%w", remote, err)
	}
	if err := os.MkdirAll(local, 0755); err != nil {
		return err
	}
	dirs := make([]*model.DirEntryItem, 0, len(ents))
	eg, subctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.c.Thread)
	for _, ent := range ents {
		if ent.Type == string(webdav.EntryTypeDirectory) {
			dirs = append(dirs, ent)
			continue
		}
		item := ent
		eg.Go(func() error {
			start := time.Now()
			dst := filepath.Join(local, item.Basename)
			if err := c.pullFile(subctx, path.Join(remote, item.Basename), dst); err != nil {
				return err
			}
			cost := time.Since(start)
			speed := "-"
			if cost > time.Millisecond {
				speed = humanize.IBytes(uint64(float64(item.Size)*1000/float64(int64(cost/time.Millisecond)))) + "/s"
			}
			logutil.GetLogger(ctx).Debug("pull file finish", zap.String("name", item.Basename),
				zap.String("size", humanize.IBytes(uint64(item.Size))), zap.Duration("cost", cost), zap.String("speed", speed))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := c.PullDir(ctx, path.Join(remote, dir.Basename), filepath.Join(local, dir.Basename)); err != nil {
			return err
		}
	}
	return nil
}

func (c *DavCli) PushFile(ctx context.Context, local string, remote string) error {
	info, err := os.Stat(local)
	if err != nil {
		return err
	}
	if err := retry.RetryDo(ctx, 3, 2*time.Second, func(ctx context.Context) error {
		f, err := os.Open(local)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := c.c.Client.Upload(ctx, remote, f, info.Size()); err != nil {
			logutil.GetLogger(ctx).Error("upload file failed, wait retry", zap.Error(err), zap.String("remote", remote))
			return err
		}
		return nil
	}); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("push file finish", zap.String("local", local),
		zap.String("remote", remote), zap.String("size", humanize.IBytes(uint64(info.Size()))))
	return nil
}
