package domain

import "context"

type UploadRequest struct {
	Filename    string
	ContentType string
	Data        []byte
	Folder      string
	// OldURL is removed from storage once the new object is stored.
	OldURL   string
	ClientIP string
}

type UploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Size int    `json:"size"`
}

type UploadUsecase interface {
	UploadImage(ctx context.Context, req *UploadRequest) (*UploadResult, error)
}
