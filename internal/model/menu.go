package model

const (
	MenuItemKindCustom   = "custom"
	MenuItemKindPostType = "post_type_reference"
	MenuItemKindTaxonomy = "taxonomy_reference"
)

const (
	MenuObjectTypeCategory = "category"
	MenuObjectTypePostTag  = "post_tag"
)

const (
	ResolvedTypePage = "page"
	ResolvedTypePost = "post"
)

type RawMenuItem struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Order        int      `json:"order"`
	Kind         string   `json:"kind"`
	ObjectType   string   `json:"objectType"`
	ObjectID     string   `json:"objectId"`
	URL          string   `json:"url"`
	ParentID     int      `json:"parentId"` // 0 means top-level
	Target       string   `json:"target,omitempty"`
	Classes      []string `json:"classes,omitempty"`
	Description  string   `json:"description,omitempty"`
	ResolvedSlug string   `json:"resolvedSlug,omitempty"` // filled by the export when the referenced object was found
	ResolvedType string   `json:"resolvedType,omitempty"`
}

type Menu struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Slug  string        `json:"slug"`
	Items []RawMenuItem `json:"items"`
}

type MenuItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Order       int    `json:"order"`
	ParentID    int    `json:"parentId"`
	Target      string `json:"target,omitempty"`
	Description string `json:"description,omitempty"`

	// Children is always non-nil so it marshals as [] rather than null.
	Children []*MenuItem `json:"children"`
}
