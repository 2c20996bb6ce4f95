package utils

import (
	"context"

	"backoffice-dashboard/pkg/contextkeys"
)

func GetAccessTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(contextkeys.AccessTokenKey).(string)
	return token
}

func GetUserIDFromCtx(ctx context.Context) string {
	userID, _ := ctx.Value(contextkeys.UserIDKey).(string)
	return userID
}

func GetFlashSessionIDFromCtx(ctx context.Context) string {
	sessionID, _ := ctx.Value(contextkeys.FlashSessionIDKey).(string)
	return sessionID
}
