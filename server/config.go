package server

import "github.com/xxxsen/davgate/davclient"

type config struct {
	cli         davclient.IClient
	corsEnable  bool
	corsOrigins []string
}

type Option func(c *config)

func WithClient(cli davclient.IClient) Option {
	return func(c *config) {
		c.cli = cli
	}
}

func WithCORS(enable bool, origins []string) Option {
	return func(c *config) {
		c.corsEnable = enable
		c.corsOrigins = origins
	}
}

func applyOpts(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
