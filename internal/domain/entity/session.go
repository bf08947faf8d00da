package entity

// Session identifies the authenticated caller. It is passed explicitly to every use case.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
}

// AuthUser is the account returned by the auth provider.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is a signed-in provider session.
type AuthSession struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	ExpiresIn    int      `json:"expiresIn"`
	User         AuthUser `json:"user"`
}
