package model

import (
	"time"
)

type Post struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Date             time.Time  `json:"date"`
	Updated          *time.Time `json:"updated,omitempty"`
	Author           string     `json:"author,omitempty"`
	Excerpt          string     `json:"excerpt,omitempty"`
	Categories       []string   `json:"categories,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	FeaturedImage    string     `json:"featuredImage,omitempty"`
	FeaturedImageAlt string     `json:"featuredImageAlt,omitempty"`
	CanonicalURL     string     `json:"canonicalUrl,omitempty"`
	ReadingTime      int        `json:"readingTime"` // minutes
	Content          string     `json:"-"`
	HTMLContent      string     `json:"html,omitempty"`
}
