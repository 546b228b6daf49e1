package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type cpArgs struct {
	src       string
	dst       string
	overwrite bool
}

func NewCpCmd(c *Context) *cobra.Command {
	args := &cpArgs{}
	ctx := context.Background()
	subc := &cobra.Command{
		Use:   "cp",
		Short: "Copy a remote entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(args.src) == 0 || len(args.dst) == 0 {
				return fmt.Errorf("src/dst should not be empty")
			}
			return c.Cli.Copy(ctx, args.src, args.dst, args.overwrite)
		},
	}
	subc.PersistentFlags().StringVarP(&args.src, "src", "s", "", "source path")
	subc.PersistentFlags().StringVarP(&args.dst, "dst", "d", "", "destination path")
	subc.PersistentFlags().BoolVarP(&args.overwrite, "overwrite", "o", false, "overwrite destination")
	return subc
}

func init() {
	register(NewCpCmd)
}
