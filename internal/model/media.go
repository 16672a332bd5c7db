package model

type MediaItem struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	File     string `json:"file"` // uploads-relative path, e.g. 2021/06/team.jpg
	MimeType string `json:"mimeType"`
	Title    string `json:"title"`
	Alt      string `json:"alt,omitempty"`
}
