package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// DriveConfig 是单次请求携带的上游网盘配置, 只存在于请求生命周期内, 不做任何持久化
type DriveConfig struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *DriveConfig) Encode() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (c *DriveConfig) Decode(data string) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("decode base64 failed, err:%w", err)
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("decode json failed, err:%w", err)
	}
	return c.normalize()
}

func (c *DriveConfig) normalize() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("parse drive url failed, err:%w", err)
	}
	if !u.IsAbs() || len(u.Host) == 0 {
		return fmt.Errorf("drive url should be absolute, url:%s", c.URL)
	}
	// 统一去掉尾部斜杠, 方便后续直接拼接请求路径
	c.URL = strings.TrimSuffix(c.URL, "/")
	return nil
}
