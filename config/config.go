package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type CORSConfig struct {
	Enable  bool     `json:"enable"`
	Origins []string `json:"origins"`
}

type UpstreamConfig struct {
	TimeoutSec         int64 `json:"timeout_sec"`
	MaxIdleConns       int   `json:"max_idle_conns"`
	InsecureSkipVerify bool  `json:"insecure_skip_verify"`
}

type Config struct {
	Bind     string           `json:"bind"`
	LogInfo  logger.LogConfig `json:"log_info"`
	CORS     CORSConfig       `json:"cors"`
	Upstream UpstreamConfig   `json:"upstream"`
}

func Parse(f string) (*Config, error) {
	raw, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("read file:%w", err)
	}
	c := &Config{
		Bind: ":9901",
		Upstream: UpstreamConfig{
			TimeoutSec:   30,
			MaxIdleConns: 5,
		},
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decode json failed, err:%w", err)
	}
	return c, nil
}
