package model

type Page struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Path        string  `json:"path"` // full path including parent slugs, no leading slash
	Order       int     `json:"order"`
	ParentID    int     `json:"parentId"`
	Excerpt     string  `json:"excerpt,omitempty"`
	Content     string  `json:"-"`
	HTMLContent string  `json:"html,omitempty"`
	Children    []*Page `json:"children"`
	Parent      *Page   `json:"-"`
}

func (p *Page) URL() string {
	return "/" + p.Path
}
