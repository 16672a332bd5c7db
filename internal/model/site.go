package model

type Site struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	BaseURL            string `json:"baseUrl"`
	HomeURL            string `json:"homeUrl"`
	Timezone           string `json:"timezone"`
	DateFormat         string `json:"dateFormat"`
	TimeFormat         string `json:"timeFormat"`
	PostsPerPage       int    `json:"postsPerPage"`
	PermalinkStructure string `json:"permalinkStructure"`
	Charset            string `json:"charset"`
	Language           string `json:"language"`
	AdminEmail         string `json:"adminEmail,omitempty"`
}
