// Package jwt recovers and verifies the bearer credential that proves the
// caller's identity.
package jwt

import (
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	jwtlib "github.com/golang-jwt/jwt/v5"

	"playtube.com/config"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

const bearerPrefix = "Bearer "

// ExtractAccessToken pulls the raw credential from the accessToken cookie,
// falling back to the Authorization header. Returns "" when neither is set.
func ExtractAccessToken(c *app.RequestContext) string {
	if token := string(c.Cookie(constants.AccessTokenCookie)); token != "" {
		return token
	}
	auth := string(c.GetHeader("Authorization"))
	if strings.HasPrefix(auth, bearerPrefix) {
		return strings.TrimPrefix(auth, bearerPrefix)
	}
	return ""
}

// ParseAccessToken verifies signature and expiry against the shared secret
// and returns the asserted subject identity. The user_id claim is accepted
// in whatever JSON form the signer produced (number or string) and
// canonicalized to int64.
func ParseAccessToken(token string) (int64, error) {
	parsed, err := jwtlib.Parse(token, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errno.TokenInvalidErr.WithMessage("Unexpected signing method")
		}
		return []byte(config.ConfigInfo.JWT.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, errno.TokenInvalidErr
	}
	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return 0, errno.TokenInvalidErr
	}
	userId := utils.Transfer(claims[constants.IdentityKey])
	if userId <= 0 {
		return 0, errno.TokenInvalidErr
	}
	return userId, nil
}

// GenerateAccessToken signs a credential for the given identity.
func GenerateAccessToken(userId int64) (string, error) {
	now := time.Now()
	claims := jwtlib.MapClaims{
		constants.IdentityKey: userId,
		"iat":                 now.Unix(),
		"exp":                 now.Add(time.Duration(config.ConfigInfo.JWT.ExpireHours) * time.Hour).Unix(),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.ConfigInfo.JWT.Secret))
}
