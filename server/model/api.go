package model

type DirEntryItem struct {
	Filename string `json:"filename"`
	Basename string `json:"basename"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
}

type ListEntriesResponse struct {
	Entries []*DirEntryItem `json:"entries"`
}

type MkdirRequest struct {
	Path string `json:"path" binding:"required"`
}

type MkdirResponse struct {
}

type MoveEntryRequest struct {
	Src       string `json:"src" binding:"required"`
	Dst       string `json:"dst" binding:"required"`
	Overwrite bool   `json:"overwrite"`
}

type MoveEntryResponse struct {
}

type CopyEntryRequest struct {
	Src       string `json:"src" binding:"required"`
	Dst       string `json:"dst" binding:"required"`
	Overwrite bool   `json:"overwrite"`
}

type CopyEntryResponse struct {
}
