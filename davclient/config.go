package davclient

import "time"

type config struct {
	Timeout            time.Duration
	MaxIdleConns       int
	InsecureSkipVerify bool
}

type Option func(*config)

func WithTimeout(t time.Duration) Option {
	return func(c *config) {
		c.Timeout = t
	}
}

func WithMaxIdleConns(n int) Option {
	return func(c *config) {
		c.MaxIdleConns = n
	}
}

func WithInsecureSkipVerify(v bool) Option {
	return func(c *config) {
		c.InsecureSkipVerify = v
	}
}
