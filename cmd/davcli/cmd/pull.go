package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

type pullArgs struct {
	remote string
	local  string
}

func NewPullCmd(c *Context) *cobra.Command {
	args := &pullArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "pull",
		Short: "Pull a remote directory to local",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunPull(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.remote, "remote", "r", "/", "remote dir to pull")
	subc.PersistentFlags().StringVarP(&args.local, "local", "l", ".", "local dir to save")
	return subc
}

func onRunPull(ctx context.Context, c *Context, args *pullArgs) error {
	start := time.Now()
	if err := c.Cli.PullDir(ctx, args.remote, args.local); err != nil {
		return fmt.Errorf("pull dir failed, err:%w", err)
	}
	logutil.GetLogger(ctx).Info("pull dir succ", zap.String("remote", args.remote),
		zap.String("local", args.local), zap.Duration("cost", time.Since(start)))
	return nil
}

func init() {
	register(NewPullCmd)
}
