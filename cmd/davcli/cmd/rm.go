package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type rmArgs struct {
	path string
}

func NewRmCmd(c *Context) *cobra.Command {
	args := &rmArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "rm",
		Short: "Remove a remote file or directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(args.path) == 0 {
				return fmt.Errorf("no path found")
			}
			return c.Cli.Remove(ctx, args.path)
		},
	}
	subc.PersistentFlags().StringVarP(&args.path, "path", "p", "", "remote path to remove")
	return subc
}

func init() {
	register(NewRmCmd)
}
