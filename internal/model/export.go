package model

import "time"

// ExportFilename is the name of the downloaded lyrics artifact.
const ExportFilename = "remastershadhi-lyrics.txt"

// ExportContentType is the media type of the lyrics artifact.
const ExportContentType = "text/plain;charset=utf-8"

// ExportRequest represents the request body for both export endpoints
type ExportRequest struct {
	Lyrics string `json:"lyrics" validate:"required"`
}

// ExportLinkResponse represents the response for a stored export
type ExportLinkResponse struct {
	FileURL   string    `json:"fileUrl"`
	Size      int64     `json:"size"`
	ExpiresAt time.Time `json:"expiresAt"`
}
