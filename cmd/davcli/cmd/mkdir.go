package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type mkdirArgs struct {
	path string
}

func NewMkdirCmd(c *Context) *cobra.Command {
	args := &mkdirArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "mkdir",
		Short: "Create a remote directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(args.path) == 0 {
				return fmt.Errorf("no path found")
			}
			return c.Cli.Mkdir(ctx, args.path)
		},
	}
	subc.PersistentFlags().StringVarP(&args.path, "path", "p", "", "remote dir to create")
	return subc
}

func init() {
	register(NewMkdirCmd)
}
