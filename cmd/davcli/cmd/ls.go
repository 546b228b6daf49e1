package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xxxsen/davgate/webdav"
)

type lsArgs struct {
	path string
}

func NewLsCmd(c *Context) *cobra.Command {
	args := &lsArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "ls",
		Short: "List a remote directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return onRunLs(ctx, c, args)
		},
	}
	subc.PersistentFlags().StringVarP(&args.path, "path", "p", "/", "remote path to list")
	return subc
}

func onRunLs(ctx context.Context, c *Context, args *lsArgs) error {
	ents, err := c.Cli.List(ctx, args.path)
	if err != nil {
		return fmt.Errorf("list failed, path:%s, err:%w", args.path, err)
	}
	for _, ent := range ents {
		size := "-"
		if ent.Type == string(webdav.EntryTypeFile) {
			size = humanize.IBytes(uint64(ent.Size))
		}
		fmt.Printf("%-9s  %10s  %s\n", ent.Type, size, ent.Basename)
	}
	return nil
}

func init() {
	register(NewLsCmd)
}
