package cmd

import (
	"fmt"
	"os"

	"github.com/xxxsen/davgate/cmd/davcli/config"
	"github.com/xxxsen/davgate/davcli"
	"github.com/xxxsen/davgate/davcli/client"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
)

const (
	defaultConfigFileEnv = "DAVCLI_CONFIG"
)

var cmds []CreateFunc

type Context struct {
	Cli    *davcli.DavCli
	Config *config.Config
}

type CreateFunc func(ctx *Context) *cobra.Command

func register(cr CreateFunc) {
	cmds = append(cmds, cr)
}

func initContext(ctx *Context, cfgs []string) error {
	var c *config.Config
	var err error
	for _, cfg := range cfgs {
		c, err = config.Parse(cfg)
		if err != nil {
			continue
		}
	}
	if err != nil {
		return fmt.Errorf("no valid config file found, last err:%w", err)
	}
	ctx.Config = c
	logger.Init("", c.LogLevel, 0, 0, 0, true)
	cli, err := client.New(client.WithSchema(c.Schema), client.WithHost(c.Host), client.WithDrive(c.Drive))
	if err != nil {
		return err
	}
	ctx.Cli = davcli.New(davcli.WithClient(cli), davcli.WithThread(c.Thread))
	return nil
}

func NewRoot() *cobra.Command {
	var configFile string
	ctx := &Context{}
	var rootCmd = &cobra.Command{
		Use:   "davcli",
		Short: "davgate CLI tool",
	}
	for _, cr := range cmds {
		rootCmd.AddCommand(cr(ctx))
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		envConfigFile, _ := os.LookupEnv(defaultConfigFileEnv)
		return initContext(ctx, []string{configFile, "/etc/davcli/davcli_config.json", envConfigFile})
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	return rootCmd
}
