package utils

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/google/uuid"
)

// SafeSaveIOToFile 先把流写到dst旁边的临时文件, 写完后再rename覆盖目标,
// 避免下载中断留下半截文件
func SafeSaveIOToFile(dst string, r io.Reader) error {
	dir := path.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory failed: %w", err)
	}
	tmp := dst + "." + uuid.NewString() + ".temp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create tmp file failed: %w", err)
	}
	defer os.Remove(tmp)
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("copy stream to tmp file failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close tmp file failed: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("rename tmp file to target failed: %w", err)
	}
	return nil
}
