package model

type Redirect struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Status int    `json:"status"`
	Type   string `json:"type,omitempty"`
}
