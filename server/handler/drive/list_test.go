package drive

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xxxsen/davgate/davclient"
	"github.com/xxxsen/davgate/proxyutil"
	"github.com/xxxsen/davgate/server/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	davclient.IClient
	propfindBody string
	propfindErr  error
	gotPath      string
	gotDepth     int
}

func (f *fakeClient) Propfind(ctx context.Context, drive *model.DriveConfig, path string, depth int) (string, error) {
	f.gotPath = path
	f.gotDepth = depth
	return f.propfindBody, f.propfindErr
}

func buildListContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	drive := &model.DriveConfig{URL: "https://example.teracloud.jp/dav", Username: "u", Password: "p"}
	req = req.WithContext(proxyutil.SetDriveInfo(req.Context(), drive))
	c.Request = req
	return c, w
}

func TestListEntries(t *testing.T) {
	const doc = `<d:multistatus xmlns:d="DAV:">
  <d:response><d:href>/Docs/</d:href></d:response>
  <d:response>
    <d:href>/Docs/report.pdf</d:href>
    <d:propstat><d:prop>
      <d:displayname>report.pdf</d:displayname>
      <d:getcontentlength>1024</d:getcontentlength>
    </d:prop></d:propstat>
  </d:response>
</d:multistatus>`
	cli := &fakeClient{propfindBody: doc}
	h := NewDriveHandler(cli)
	c, w := buildListContext(t, "/api/drive/list?path=%2FDocs%2F")
	h.ListEntries(c)
	assert.Equal(t, "/Docs/", cli.gotPath)
	assert.Equal(t, 1, cli.gotDepth)
	assert.Equal(t, http.StatusOK, w.Code)
	raw, err := io.ReadAll(w.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "report.pdf")
	assert.Contains(t, string(raw), `"size":1024`)
	assert.NotContains(t, string(raw), `"/Docs"`)
}

func TestListEntriesDefaultPath(t *testing.T) {
	cli := &fakeClient{propfindBody: `<d:multistatus xmlns:d="DAV:"></d:multistatus>`}
	h := NewDriveHandler(cli)
	c, w := buildListContext(t, "/api/drive/list")
	h.ListEntries(c)
	assert.Equal(t, "/", cli.gotPath)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListEntriesUpstreamStatus(t *testing.T) {
	cli := &fakeClient{propfindErr: &davclient.StatusError{Code: http.StatusNotFound, Status: "404 Not Found"}}
	h := NewDriveHandler(cli)
	c, w := buildListContext(t, "/api/drive/list?path=%2Fmissing%2F")
	h.ListEntries(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
