package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/xxxsen/davgate/proxyutil"
	"github.com/xxxsen/davgate/server/model"
)

const (
	apiList     = "/api/drive/list"
	apiDownload = "/api/drive/download"
	apiUpload   = "/api/drive/upload"
	apiMkdir    = "/api/drive/mkdir"
	apiRemove   = "/api/drive/remove"
	apiMove     = "/api/drive/move"
	apiCopy     = "/api/drive/copy"

	driveConfigHeader = "X-Drive-Config"
)

var (
	defaultHttpClient = &http.Client{
		Timeout: 10 * time.Minute,
		Transport: &http.Transport{
			IdleConnTimeout:     20 * time.Second,
			MaxIdleConns:        5,
			MaxIdleConnsPerHost: 1,
		},
	}
)

type defaultClient struct {
	c        *config
	driveKey string
}

func New(opts ...Option) (IClient, error) {
	c := &config{
		Schema: "https",
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.Host) == 0 {
		return nil, fmt.Errorf("no host found")
	}
	if c.Drive == nil {
		return nil, fmt.Errorf("no drive config found")
	}
	key, err := c.Drive.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode drive config failed, err:%w", err)
	}
	return &defaultClient{c: c, driveKey: key}, nil
}

func (d *defaultClient) buildUrl(api string, path string) string {
	link := fmt.Sprintf("%s://%s%s", d.c.Schema, d.c.Host, api)
	if len(path) != 0 {
		link += "?path=" + url.QueryEscape(path)
	}
	return link
}

func (d *defaultClient) newRequest(ctx context.Context, method string, link string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, link, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(driveConfigHeader, d.driveKey)
	return req, nil
}

func (d *defaultClient) callJsonPost(ctx context.Context, api string, in interface{}, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := d.newRequest(ctx, http.MethodPost, d.buildUrl(api, ""), bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	rsp, err := defaultHttpClient.Do(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code not ok, code:%d", rsp.StatusCode)
	}
	pkgRsp := &proxyutil.CommonResponse{
		Data: out,
	}
	if err := json.NewDecoder(rsp.Body).Decode(pkgRsp); err != nil {
		return err
	}
	if pkgRsp.Code != 0 {
		return fmt.Errorf("biz code not ok, code:%d, msg:%s", pkgRsp.Code, pkgRsp.Message)
	}
	return nil
}

func (d *defaultClient) List(ctx context.Context, path string) ([]*model.DirEntryItem, error) {
	req, err := d.newRequest(ctx, http.MethodGet, d.buildUrl(apiList, path), nil)
	if err != nil {
		return nil, err
	}
	rsp, err := defaultHttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code not ok, code:%d", rsp.StatusCode)
	}
	out := &model.ListEntriesResponse{}
	pkgRsp := &proxyutil.CommonResponse{
		Data: out,
	}
	if err := json.NewDecoder(rsp.Body).Decode(pkgRsp); err != nil {
		return nil, err
	}
	if pkgRsp.Code != 0 {
		return nil, fmt.Errorf("biz code not ok, code:%d, msg:%s", pkgRsp.Code, pkgRsp.Message)
	}
	return out.Entries, nil
}

func (d *defaultClient) Download(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	req, err := d.newRequest(ctx, http.MethodGet, d.buildUrl(apiDownload, path), nil)
	if err != nil {
		return nil, 0, err
	}
	rsp, err := defaultHttpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if rsp.StatusCode != http.StatusOK {
		_ = rsp.Body.Close()
		return nil, 0, fmt.Errorf("status code not ok, code:%d", rsp.StatusCode)
	}
	return rsp.Body, rsp.ContentLength, nil
}

func (d *defaultClient) Upload(ctx context.Context, path string, r io.Reader, size int64) error {
	req, err := d.newRequest(ctx, http.MethodPut, d.buildUrl(apiUpload, path), r)
	if err != nil {
		return err
	}
	if size >= 0 {
		req.ContentLength = size
	}
	rsp, err := defaultHttpClient.Do(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status code not ok, code:%d", rsp.StatusCode)
	}
	return nil
}

func (d *defaultClient) Mkdir(ctx context.Context, path string) error {
	return d.callJsonPost(ctx, apiMkdir, &model.MkdirRequest{Path: path}, &model.MkdirResponse{})
}

func (d *defaultClient) Remove(ctx context.Context, path string) error {
	req, err := d.newRequest(ctx, http.MethodDelete, d.buildUrl(apiRemove, path), nil)
	if err != nil {
		return err
	}
	rsp, err := defaultHttpClient.Do(req)
	if err != nil {
		return err
	}
	defer rsp.Body.Close()
	if rsp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("status code not ok, code:%d", rsp.StatusCode)
	}
	return nil
}

func (d *defaultClient) Move(ctx context.Context, src string, dst string, overwrite bool) error {
	return d.callJsonPost(ctx, apiMove, &model.MoveEntryRequest{Src: src, Dst: dst, Overwrite: overwrite}, &model.MoveEntryResponse{})
}

func (d *defaultClient) Copy(ctx context.Context, src string, dst string, overwrite bool) error {
	return d.callJsonPost(ctx, apiCopy, &model.CopyEntryRequest{Src: src, Dst: dst, Overwrite: overwrite}, &model.CopyEntryResponse{})
}
