// ABOUTME: User and session token shapes
// ABOUTME: Permissions map a resource name to the actions granted on it

package models

// TokenOutput is returned by the login endpoint.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

func (*TokenOutput) RequiredFields() []string {
	return []string{"access_token"}
}

// UserOutput is a user account as reported by the platform.
type UserOutput struct {
	Username    string              `json:"username"`
	Permissions map[string][]string `json:"permissions"`
	ID          string              `json:"id"`
}

func (*UserOutput) RequiredFields() []string {
	return []string{"username", "permissions", "id"}
}

// UserInput creates or updates a user. Empty fields are left out of the body
// so an update only touches what was set.
type UserInput struct {
	Username    string              `json:"username,omitempty"`
	Password    string              `json:"password,omitempty"`
	Permissions map[string][]string `json:"permissions,omitempty"`
}
