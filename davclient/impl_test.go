package davclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xxxsen/davgate/server/model"
)

func testDrive(link string) *model.DriveConfig {
	return &model.DriveConfig{
		URL:      link,
		Username: "user",
		Password: "pass",
	}
}

func TestPropfind(t *testing.T) {
	const body = `<d:multistatus xmlns:d="DAV:"></d:multistatus>`
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PROPFIND", r.Method)
		assert.Equal(t, "1", r.Header.Get("Depth"))
		u, p, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", u)
		assert.Equal(t, "pass", p)
		w.WriteHeader(http.StatusMultiStatus)
		_, _ = w.Write([]byte(body))
	}))
	defer svr.Close()
	cli := New()
	rs, err := cli.Propfind(context.Background(), testDrive(svr.URL+"/dav/"), "/Docs/", 1)
	assert.NoError(t, err)
	assert.Equal(t, body, rs)
}

func TestPropfindStatusError(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer svr.Close()
	cli := New()
	_, err := cli.Propfind(context.Background(), testDrive(svr.URL), "/missing/", 1)
	assert.Error(t, err)
	var serr *StatusError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusNotFound, serr.Code)
}

func TestDownloadStream(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/dav/Docs/report.pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("pdfdata"))
	}))
	defer svr.Close()
	cli := New()
	rs, err := cli.Download(context.Background(), testDrive(svr.URL+"/dav"), "/Docs/report.pdf")
	assert.NoError(t, err)
	defer rs.Body.Close()
	assert.Equal(t, "application/pdf", rs.ContentType)
	raw, err := io.ReadAll(rs.Body)
	assert.NoError(t, err)
	assert.Equal(t, "pdfdata", string(raw))
}

func TestUpload(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		raw, _ := io.ReadAll(r.Body)
		assert.Equal(t, "hello", string(raw))
		w.WriteHeader(http.StatusCreated)
	}))
	defer svr.Close()
	cli := New()
	err := cli.Upload(context.Background(), testDrive(svr.URL), "/a.txt", bytes.NewReader([]byte("hello")), 5)
	assert.NoError(t, err)
}

func TestMoveHeaders(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MOVE", r.Method)
		assert.Equal(t, "/src.txt", r.URL.Path)
		assert.Contains(t, r.Header.Get("Destination"), "/dst.txt")
		assert.Equal(t, "T", r.Header.Get("Overwrite"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer svr.Close()
	cli := New()
	err := cli.Move(context.Background(), testDrive(svr.URL), "/src.txt", "/dst.txt", true)
	assert.NoError(t, err)
}

func TestCopyNoOverwrite(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "COPY", r.Method)
		assert.Equal(t, "F", r.Header.Get("Overwrite"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer svr.Close()
	cli := New()
	err := cli.Copy(context.Background(), testDrive(svr.URL), "/src.txt", "/dst.txt", false)
	assert.NoError(t, err)
}

func TestEscapedPath(t *testing.T) {
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/日本 docs/a.txt", r.URL.Path)
		assert.Equal(t, "MKCOL", r.Method)
		w.WriteHeader(http.StatusCreated)
	}))
	defer svr.Close()
	cli := New()
	err := cli.Mkcol(context.Background(), testDrive(svr.URL), "/日本 docs/a.txt")
	assert.NoError(t, err)
}
