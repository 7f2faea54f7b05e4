// Package authz is the ownership gate run inside every mutating video and
// comment operation. The credential is re-verified here even though the
// auth middleware already ran upstream.
package authz

import (
	"context"
	"strconv"

	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

// OwnerFetcher loads the target resource and returns its owner identity.
// A missing resource must surface as the resource's own not-found error so
// existence is reported independently of authorization.
type OwnerFetcher func(ctx context.Context) (int64, error)

// RequireOwner verifies the bearer credential, fetches the target resource
// and compares the asserted subject against the owner. deny is returned on
// an ownership mismatch; comment and video paths carry different historical
// failure codes, so the caller supplies it.
func RequireOwner(ctx context.Context, token string, fetch OwnerFetcher, deny errno.ErrNo) (int64, error) {
	if token == "" {
		return 0, errno.AuthorizationFailedErr
	}
	userId, err := jwt.ParseAccessToken(token)
	if err != nil {
		return 0, err
	}
	owner, err := fetch(ctx)
	if err != nil {
		return 0, err
	}
	if !MatchOwner(userId, owner) {
		return 0, deny
	}
	return userId, nil
}

// MatchOwner compares the asserted subject and the stored owner in a
// canonical string form so differing id representations cannot produce a
// false mismatch.
func MatchOwner(subject, owner int64) bool {
	return strconv.FormatInt(subject, 10) == strconv.FormatInt(owner, 10)
}
