package webdav

import (
	"encoding/xml"
	"net/url"
	"strconv"
	"strings"
)

// ParseMultistatus 将一次Depth:1 PROPFIND的multistatus应答体转换为目录列表。
// reqPath为本次查询的逻辑路径, 对应的自身条目会被剔除, 只保留子资源。
//
// 解析按尽力而为的方式进行: 不做严格xml校验, 缺少href或者无法得到名字的
// response节点直接丢弃, 整体解析失败时返回已解析出的部分, 永远不返回错误。
// 元素名匹配时忽略namespace前缀, d:/D:/无前缀等形式均可识别。
func ParseMultistatus(body string, reqPath string) []*DirEntry {
	base := strings.TrimSuffix(reqPath, "/")
	rs := make([]*DirEntry, 0, 16)
	dec := xml.NewDecoder(strings.NewReader(body))
	dec.Strict = false
	for {
		tk, err := dec.Token()
		if err != nil {
			return rs
		}
		st, ok := tk.(xml.StartElement)
		if !ok || !isElem(st.Name, "response") {
			continue
		}
		ent, ok := decodeResponse(dec, base)
		if !ok {
			continue
		}
		rs = append(rs, ent)
	}
}

// decodeResponse 消费一个response节点内的全部token, 提取href/displayname/
// getcontentlength/resourcetype并组装为DirEntry, 无法成为有效条目时返回false。
func decodeResponse(dec *xml.Decoder, base string) (*DirEntry, bool) {
	var href, displayName, lengthText string
	var isCollection bool
	stack := make([]string, 0, 8)
	for {
		tk, err := dec.Token()
		if err != nil {
			// response节点不完整, 丢弃该条目
			return nil, false
		}
		if _, ok := tk.(xml.EndElement); ok {
			if len(stack) == 0 {
				break
			}
			stack = stack[:len(stack)-1]
			continue
		}
		switch t := tk.(type) {
		case xml.StartElement:
			name := strings.ToLower(t.Name.Local)
			if name == "collection" && stackContains(stack, "resourcetype") {
				isCollection = true
			}
			stack = append(stack, name)
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			switch stack[len(stack)-1] {
			case "href":
				href += string(t)
			case "displayname":
				displayName += string(t)
			case "getcontentlength":
				lengthText += string(t)
			}
		}
	}
	href = strings.TrimSpace(href)
	if len(href) == 0 {
		return nil, false
	}
	decoded := unescapePath(href)
	normalized := strings.TrimSuffix(decoded, "/")
	if len(normalized) == 0 || normalized == base {
		// 查询路径自身或者空路径, 不属于子资源
		return nil, false
	}
	typ := EntryTypeFile
	if isCollection {
		typ = EntryTypeDirectory
	}
	basename := strings.TrimSpace(displayName)
	if len(basename) == 0 {
		basename = lastSegment(normalized)
	}
	if len(basename) == 0 {
		return nil, false
	}
	var size int64
	if typ == EntryTypeFile {
		if v, err := strconv.ParseInt(strings.TrimSpace(lengthText), 10, 64); err == nil && v > 0 {
			size = v
		}
	}
	return &DirEntry{
		Filename: decoded,
		Basename: basename,
		Type:     typ,
		Size:     size,
	}, true
}

func isElem(name xml.Name, target string) bool {
	return strings.EqualFold(name.Local, target)
}

func stackContains(stack []string, name string) bool {
	for _, item := range stack {
		if item == name {
			return true
		}
	}
	return false
}

func unescapePath(p string) string {
	decoded, err := url.PathUnescape(p)
	if err != nil {
		return p
	}
	return decoded
}

func lastSegment(p string) string {
	items := strings.Split(p, "/")
	for i := len(items) - 1; i >= 0; i-- {
		if len(items[i]) != 0 {
			return items[i]
		}
	}
	return ""
}
