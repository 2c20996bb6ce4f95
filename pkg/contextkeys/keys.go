package contextkeys

type contextKey string

const (
	UserIDKey         contextKey = "UserID"
	AccessTokenKey    contextKey = "AccessToken"
	FlashSessionIDKey contextKey = "FlashSessionID"
)
