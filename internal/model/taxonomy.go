package model

const (
	TaxonomyCategory = "category"
	TaxonomyPostTag  = "post_tag"
)

type Term struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
	ParentID    int    `json:"parentId"`
}
