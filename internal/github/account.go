package github

// Account is the subset of a directory account used by this tool.
type Account struct {
	// Login is the account name as returned by the directory.
	Login string `json:"login"`
	// Type is "User" or "Organization".
	Type string `json:"type"`
	// Location is the free-form location, nil when the profile has none.
	Location *string `json:"location"`
}
