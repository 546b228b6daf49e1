package webdav

type EntryType string

const (
	EntryTypeFile      EntryType = "file"
	EntryTypeDirectory EntryType = "directory"
)

// DirEntry 代表PROPFIND应答中一个子资源
type DirEntry struct {
	// Filename 是服务端返回的href原始路径(已做url decode, 尾部斜杠保留)
	Filename string
	// Basename 优先取displayname, 为空时取href的最后一段
	Basename string
	Type     EntryType
	// Size 文件大小, 目录或者无getcontentlength时为0
	Size int64
}

func (e *DirEntry) IsDir() bool {
	return e.Type == EntryTypeDirectory
}
