package types

// The authentication surface is an offline emulation: there is exactly one
// user and one organization, and every response below is canned.

type SessionUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type Session struct {
	Token                string `json:"token"`
	UserID               string `json:"userId"`
	ActiveOrganizationID string `json:"activeOrganizationId"`
	ExpiresAt            string `json:"expiresAt"`
}

type SessionResponse struct {
	Session Session     `json:"session"`
	User    SessionUser `json:"user"`
}

type SignInResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type Organization struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"createdAt"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContainerTag string `json:"containerTag"`
}

type OrganizationsResponse struct {
	Organizations []Organization `json:"organizations"`
}

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type ConnectionsResponse struct {
	Connections []interface{} `json:"connections"`
}
