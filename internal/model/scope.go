package model

// Scope identifies the authenticated actor of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAuthenticated reports whether the scope carries an actor.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}
