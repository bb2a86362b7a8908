package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// ActingUserID resolves the session user from the verified access
// token. Zero means unauthenticated; the services treat that as a fatal
// condition.
func ActingUserID(ctx iris.Context) uint {
	if claims, ok := jwt.Get(ctx).(*AccessToken); ok && claims != nil {
		return claims.ID
	}
	return 0
}
