package authfunc

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	handlers "playtube.com/cmd/api/handlers/interaction"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		AccessTokenAuthFunc(),
	)
}

// AccessTokenAuthFunc populates the authenticated caller identity for the
// handlers downstream. Mutating operations re-verify the raw credential
// themselves; this middleware is only the read-path source of identity.
func AccessTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := jwt.ExtractAccessToken(c)
		if token == "" {
			handlers.SendResponse(c, errno.AuthorizationFailedErr, nil)
			c.Abort()
			return
		}
		userId, err := jwt.ParseAccessToken(token)
		if err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			c.Abort()
			return
		}
		c.Set(constants.IdentityKey, userId)
		c.Next(ctx)
	}
}
