package model

import "time"

// Material file types derived from the uploaded file's extension.
const (
	MaterialTypePDF   = "PDF"
	MaterialTypePPT   = "PPT"
	MaterialTypeDOC   = "DOC"
	MaterialTypeOther = "Other"
)

type Material struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Type         string    `json:"type"`
	Size         string    `json:"size"`
	FilePath     string    `json:"filePath"`
	OriginalName string    `json:"originalName"`
	Downloads    int64     `json:"downloads"`
	CreatedAt    time.Time `json:"createdAt"`
}
