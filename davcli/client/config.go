package client

import "github.com/xxxsen/davgate/server/model"

type config struct {
	Schema string
	Host   string
	Drive  *model.DriveConfig
}

type Option func(*config)

func WithSchema(s string) Option {
	return func(c *config) {
		c.Schema = s
	}
}

func WithHost(e string) Option {
	return func(c *config) {
		c.Host = e
	}
}

func WithDrive(d *model.DriveConfig) Option {
	return func(c *config) {
		c.Drive = d
	}
}
