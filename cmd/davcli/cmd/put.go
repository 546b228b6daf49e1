package cmd

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type putArgs struct {
	file   string
	remote string
}

func NewPutCmd(c *Context) *cobra.Command {
	args := &putArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "put",
		Short: "Upload a local file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunPut(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.file, "file", "f", "", "local file to upload")
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "", "remote target path, default /<basename>")
	return subc
}

func onRunPut(ctx context.Context, c *Context, args *putArgs) error {
	if len(args.file) == 0 {
		return fmt.Errorf("no upload file found")
	}
	remote := args.remote
	if len(remote) == 0 {
		remote = path.Join("/", filepath.Base(args.file))
	}
	start := time.Now()
	if err := c.Cli.PushFile(ctx, args.file, remote); err != nil {
		return fmt.Errorf("upload file failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("upload file succ", zap.String("remote", remote), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewPutCmd)
}
