package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/davgate/server/model"
)

type Config struct {
	Schema   string             `json:"schema"`
	Host     string             `json:"host"`
	Thread   int                `json:"thread"`
	LogLevel string             `json:"log_level"`
	Drive    *model.DriveConfig `json:"drive"`
}

func Parse(f string) (*Config, error) {
	raw, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("read file:%w", err)
	}
	c := &Config{
		Schema:   "https",
		Thread:   4,
		LogLevel: "debug",
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("unmarshal file:%w", err)
	}
	if c.Drive == nil {
		return nil, fmt.Errorf("no drive config found")
	}
	return c, nil
}
