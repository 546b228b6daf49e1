package webdav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDocsListing = `<?xml version="1.0" encoding="UTF-8"?>
<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/Docs/</d:href>
    <d:propstat>
      <d:prop>
        <d:displayname>Docs</d:displayname>
        <d:resourcetype><d:collection/></d:resourcetype>
      </d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
  <d:response>
    <d:href>/Docs/report.pdf</d:href>
    <d:propstat>
      <d:prop>
        <d:displayname>report.pdf</d:displayname>
        <d:getcontentlength>1024</d:getcontentlength>
        <d:resourcetype/>
      </d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
  </d:response>
</d:multistatus>`

func TestParseChildFile(t *testing.T) {
	rs := ParseMultistatus(testDocsListing, "/Docs/")
	assert.Len(t, rs, 1)
	assert.Equal(t, "/Docs/report.pdf", rs[0].Filename)
	assert.Equal(t, "report.pdf", rs[0].Basename)
	assert.Equal(t, EntryTypeFile, rs[0].Type)
	assert.Equal(t, int64(1024), rs[0].Size)
}

func TestParseChildCollection(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/Docs/</d:href>
    <d:propstat><d:prop><d:resourcetype><d:collection/></d:resourcetype></d:prop></d:propstat>
  </d:response>
  <d:response>
    <d:href>/Docs/Sub/</d:href>
    <d:propstat><d:prop><d:resourcetype><d:collection/></d:resourcetype></d:prop></d:propstat>
  </d:response>
</d:multistatus>`
	rs := ParseMultistatus(doc, "/Docs/")
	assert.Len(t, rs, 1)
	assert.Equal(t, "/Docs/Sub/", rs[0].Filename)
	assert.Equal(t, "Sub", rs[0].Basename)
	assert.Equal(t, EntryTypeDirectory, rs[0].Type)
	assert.True(t, rs[0].IsDir())
	assert.Equal(t, int64(0), rs[0].Size)
}

func TestParseSelfEntrySlashVariants(t *testing.T) {
	// 询问路径跟href的尾部斜杠不一致时, 自身条目同样需要剔除
	for _, reqPath := range []string{"/Docs", "/Docs/"} {
		rs := ParseMultistatus(testDocsListing, reqPath)
		assert.Len(t, rs, 1)
		assert.Equal(t, "/Docs/report.pdf", rs[0].Filename)
	}
}

func TestParsePrefixVariants(t *testing.T) {
	tmpl := `<%smultistatus%s>
  <%sresponse>
    <%shref>/a/</%shref>
  </%sresponse>
  <%sresponse>
    <%shref>/a/1.txt</%shref>
    <%spropstat><%sprop><%sgetcontentlength>7</%sgetcontentlength></%sprop></%spropstat>
  </%sresponse>
</%smultistatus>`
	testList := []struct {
		prefix string
		attr   string
	}{
		{"d:", ` xmlns:d="DAV:"`},
		{"D:", ` xmlns:D="DAV:"`},
		{"", ` xmlns="DAV:"`},
		{"ns0:", ` xmlns:ns0="DAV:"`},
	}
	for _, item := range testList {
		args := make([]interface{}, 0, 17)
		args = append(args, item.prefix, item.attr)
		for i := 0; i < 15; i++ {
			args = append(args, item.prefix)
		}
		doc := fmt.Sprintf(tmpl, args...)
		rs := ParseMultistatus(doc, "/a/")
		assert.Len(t, rs, 1, "prefix:%s", item.prefix)
		assert.Equal(t, "/a/1.txt", rs[0].Filename)
		assert.Equal(t, "1.txt", rs[0].Basename)
		assert.Equal(t, int64(7), rs[0].Size)
	}
}

func TestParseDisplayNameFallback(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/a/b/c.txt</d:href>
    <d:propstat><d:prop><d:displayname></d:displayname></d:prop></d:propstat>
  </d:response>
</d:multistatus>`
	rs := ParseMultistatus(doc, "/a/")
	assert.Len(t, rs, 1)
	assert.Equal(t, "c.txt", rs[0].Basename)
}

func TestParseSkipBrokenEntries(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:propstat><d:prop><d:displayname>no-href</d:displayname></d:prop></d:propstat>
  </d:response>
  <d:response>
    <d:href>///</d:href>
  </d:response>
  <d:response>
    <d:href>/a/ok.txt</d:href>
  </d:response>
</d:multistatus>`
	rs := ParseMultistatus(doc, "/a/")
	assert.Len(t, rs, 1)
	assert.Equal(t, "/a/ok.txt", rs[0].Filename)
}

func TestParseMalformedInput(t *testing.T) {
	testList := []string{
		"",
		"not xml at all",
		`<?xml version="1.0"?><unrelated><thing/></unrelated>`,
		`{"json": true}`,
	}
	for _, doc := range testList {
		rs := ParseMultistatus(doc, "/")
		assert.Empty(t, rs)
	}
}

func TestParseTruncatedDocumentKeepsPartialResult(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/a/1.txt</d:href>
  </d:response>
  <d:response>
    <d:href>/a/2.txt`
	rs := ParseMultistatus(doc, "/a/")
	assert.Len(t, rs, 1)
	assert.Equal(t, "/a/1.txt", rs[0].Filename)
}

func TestParseEscapedHref(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/a/%E6%97%A5%E6%9C%AC.txt</d:href>
  </d:response>
</d:multistatus>`
	rs := ParseMultistatus(doc, "/a/")
	assert.Len(t, rs, 1)
	assert.Equal(t, "/a/日本.txt", rs[0].Filename)
	assert.Equal(t, "日本.txt", rs[0].Basename)
}

func TestParseDocumentOrder(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response><d:href>/a/</d:href></d:response>
  <d:response><d:href>/a/3.txt</d:href></d:response>
  <d:response><d:href>/a/1.txt</d:href></d:response>
  <d:response><d:href>/a/2.txt</d:href></d:response>
</d:multistatus>`
	rs := ParseMultistatus(doc, "/a")
	assert.Len(t, rs, 3)
	assert.Equal(t, "3.txt", rs[0].Basename)
	assert.Equal(t, "1.txt", rs[1].Basename)
	assert.Equal(t, "2.txt", rs[2].Basename)
}

func TestParseDirWithContentLengthKeepsZeroSize(t *testing.T) {
	doc := `<d:multistatus xmlns:d="DAV:">
  <d:response>
    <d:href>/a/sub/</d:href>
    <d:propstat><d:prop>
      <d:getcontentlength>4096</d:getcontentlength>
      <d:resourcetype><d:collection/></d:resourcetype>
    </d:prop></d:propstat>
  </d:response>
</d:multistatus>`
	rs := ParseMultistatus(doc, "/a")
	assert.Len(t, rs, 1)
	assert.Equal(t, EntryTypeDirectory, rs[0].Type)
	assert.Equal(t, int64(0), rs[0].Size)
}
