package domain

// Principal is the authenticated caller, identified by a platform-issued
// stable id. It is produced only by the identity gateway and never
// constructed from request input.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Session is the platform-issued credential bundle relayed back to clients by
// the pass-through auth endpoints.
type Session struct {
	AccessToken  string     `json:"access_token"`
	TokenType    string     `json:"token_type,omitempty"`
	ExpiresIn    int        `json:"expires_in,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	User         *Principal `json:"user,omitempty"`
}
