package auth

type ClaimsData struct {
	TokenID   string
	UserID    string
	Username  string
	Email     string
	ExpiresAt int64
	IssuedAt  int64
}
