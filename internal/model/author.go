package model

type Author struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Nicename    string `json:"nicename"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Name returns the best display name available for the author.
func (a *Author) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	if a.FirstName != "" || a.LastName != "" {
		if a.FirstName == "" {
			return a.LastName
		}
		if a.LastName == "" {
			return a.FirstName
		}
		return a.FirstName + " " + a.LastName
	}
	return a.Username
}
