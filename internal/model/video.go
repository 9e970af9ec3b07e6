package model

import "time"

type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    string    `json:"duration"`
	YoutubeID   string    `json:"youtubeId"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}
