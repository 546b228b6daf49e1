package davclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xxxsen/davgate/server/model"
)

type defaultClient struct {
	c      *config
	client *http.Client
}

func New(opts ...Option) IClient {
	c := &config{
		Timeout:      30 * time.Second,
		MaxIdleConns: 5,
	}
	for _, opt := range opts {
		opt(c)
	}
	// 下载/上传需要长时间占用连接, 超时只约束应答头, 不约束body传输
	tr := &http.Transport{
		IdleConnTimeout:       20 * time.Second,
		MaxIdleConns:          c.MaxIdleConns,
		MaxIdleConnsPerHost:   c.MaxIdleConns,
		ResponseHeaderTimeout: c.Timeout,
	}
	if c.InsecureSkipVerify {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &defaultClient{
		c:      c,
		client: &http.Client{Transport: tr},
	}
}

func (d *defaultClient) buildURL(drive *model.DriveConfig, p string) (string, error) {
	u, err := url.Parse(drive.URL)
	if err != nil {
		return "", fmt.Errorf("parse drive url failed, err:%w", err)
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	// url.URL负责把中文/空格等字符重新转义
	u.Path = strings.TrimSuffix(u.Path, "/") + p
	u.RawPath = ""
	return u.String(), nil
}

func (d *defaultClient) newRequest(ctx context.Context, drive *model.DriveConfig, method string, p string,
	hdr map[string]string, body io.Reader) (*http.Request, error) {

	link, err := d.buildURL(drive, p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, link, body)
	if err != nil {
		return nil, fmt.Errorf("build request failed, err:%w", err)
	}
	req.SetBasicAuth(drive.Username, drive.Password)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (d *defaultClient) do(ctx context.Context, drive *model.DriveConfig, method string, p string,
	hdr map[string]string, body io.Reader) (*http.Response, error) {

	req, err := d.newRequest(ctx, drive, method, p, hdr, body)
	if err != nil {
		return nil, err
	}
	rsp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream failed, method:%s, err:%w", method, err)
	}
	return rsp, nil
}

func closeWithStatusError(rsp *http.Response) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rsp.Body, 4096))
	_ = rsp.Body.Close()
	return &StatusError{Code: rsp.StatusCode, Status: rsp.Status}
}

func is2xx(rsp *http.Response) bool {
	return rsp.StatusCode/100 == 2
}

func (d *defaultClient) Propfind(ctx context.Context, drive *model.DriveConfig, p string, depth int) (string, error) {
	hdr := map[string]string{
		"Depth":        strconv.Itoa(depth),
		"Content-Type": "text/xml; charset=utf-8",
	}
	rsp, err := d.do(ctx, drive, "PROPFIND", p, hdr, nil)
	if err != nil {
		return "", err
	}
	if !is2xx(rsp) {
		return "", closeWithStatusError(rsp)
	}
	defer rsp.Body.Close()
	raw, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", fmt.Errorf("read propfind body failed, err:%w", err)
	}
	return string(raw), nil
}

func (d *defaultClient) Download(ctx context.Context, drive *model.DriveConfig, p string) (*DownloadResult, error) {
	rsp, err := d.do(ctx, drive, http.MethodGet, p, nil, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(rsp) {
		return nil, closeWithStatusError(rsp)
	}
	return &DownloadResult{
		Body:          rsp.Body,
		ContentLength: rsp.ContentLength,
		ContentType:   rsp.Header.Get("Content-Type"),
		LastModified:  rsp.Header.Get("Last-Modified"),
	}, nil
}

func (d *defaultClient) Upload(ctx context.Context, drive *model.DriveConfig, p string, r io.Reader, size int64) error {
	req, err := d.newRequest(ctx, drive, http.MethodPut, p, nil, r)
	if err != nil {
		return err
	}
	if size >= 0 {
		// NewRequestWithContext只对常见reader类型推导长度, 流式body按调用方声明的为准
		req.ContentLength = size
	}
	rsp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("call upstream failed, method:%s, err:%w", http.MethodPut, err)
	}
	if !is2xx(rsp) {
		return closeWithStatusError(rsp)
	}
	_ = rsp.Body.Close()
	return nil
}

func (d *defaultClient) Mkcol(ctx context.Context, drive *model.DriveConfig, p string) error {
	rsp, err := d.do(ctx, drive, "MKCOL", p, nil, nil)
	if err != nil {
		return err
	}
	if !is2xx(rsp) {
		return closeWithStatusError(rsp)
	}
	_ = rsp.Body.Close()
	return nil
}

func (d *defaultClient) Delete(ctx context.Context, drive *model.DriveConfig, p string) error {
	rsp, err := d.do(ctx, drive, http.MethodDelete, p, nil, nil)
	if err != nil {
		return err
	}
	if !is2xx(rsp) {
		return closeWithStatusError(rsp)
	}
	_ = rsp.Body.Close()
	return nil
}

func (d *defaultClient) moveCopy(ctx context.Context, drive *model.DriveConfig, method string,
	src string, dst string, overwrite bool) error {

	dstlink, err := d.buildURL(drive, dst)
	if err != nil {
		return err
	}
	hdr := map[string]string{
		"Destination": dstlink,
		"Overwrite":   "F",
	}
	if overwrite {
		hdr["Overwrite"] = "T"
	}
	rsp, err := d.do(ctx, drive, method, src, hdr, nil)
	if err != nil {
		return err
	}
	if !is2xx(rsp) {
		return closeWithStatusError(rsp)
	}
	_ = rsp.Body.Close()
	return nil
}

func (d *defaultClient) Move(ctx context.Context, drive *model.DriveConfig, src string, dst string, overwrite bool) error {
	return d.moveCopy(ctx, drive, "MOVE", src, dst, overwrite)
}

func (d *defaultClient) Copy(ctx context.Context, drive *model.DriveConfig, src string, dst string, overwrite bool) error {
	return d.moveCopy(ctx, drive, "COPY", src, dst, overwrite)
}
