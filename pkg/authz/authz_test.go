package authz

import (
	"context"
	"testing"

	"playtube.com/config"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
)

func init() {
	config.ConfigInfo.JWT.Secret = "unit-test-secret"
	config.ConfigInfo.JWT.ExpireHours = 1
}

func ownerOf(owner int64) OwnerFetcher {
	return func(ctx context.Context) (int64, error) {
		return owner, nil
	}
}

func TestRequireOwnerAllowsResourceOwner(t *testing.T) {
	token, err := jwt.GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	userId, err := RequireOwner(context.Background(), token, ownerOf(42), errno.CommentPermissionErr)
	if err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if userId != 42 {
		t.Errorf("subject = %d, want 42", userId)
	}
}

func TestRequireOwnerDeniesNonOwner(t *testing.T) {
	// Caller U2 mutating a resource owned by U1 gets the caller-supplied
	// deny error, whichever historical code it carries.
	token, err := jwt.GenerateAccessToken(2)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	for _, deny := range []errno.ErrNo{errno.CommentPermissionErr, errno.VideoPermissionErr} {
		_, err := RequireOwner(context.Background(), token, ownerOf(1), deny)
		if err == nil {
			t.Fatal("non-owner allowed")
		}
		got := errno.ConvertErr(err)
		if got.ErrCode != deny.ErrCode || got.ErrMsg != deny.ErrMsg {
			t.Errorf("deny error = %+v, want %+v", got, deny)
		}
	}
}

func TestRequireOwnerRejectsMissingCredential(t *testing.T) {
	_, err := RequireOwner(context.Background(), "", ownerOf(1), errno.CommentPermissionErr)
	if err == nil {
		t.Fatal("missing credential allowed")
	}
	if errno.ConvertErr(err).ErrCode != errno.AuthorizationFailedCode {
		t.Errorf("missing credential should fail with 401, got %+v", err)
	}
}

func TestRequireOwnerRejectsBadToken(t *testing.T) {
	_, err := RequireOwner(context.Background(), "tampered.token.value", ownerOf(1), errno.CommentPermissionErr)
	if err == nil {
		t.Fatal("invalid credential allowed")
	}
}

func TestRequireOwnerSurfacesNotFoundBeforeOwnership(t *testing.T) {
	token, err := jwt.GenerateAccessToken(2)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	missing := func(ctx context.Context) (int64, error) {
		return 0, errno.CommentNotFoundErr
	}
	_, err = RequireOwner(context.Background(), token, missing, errno.CommentPermissionErr)
	got := errno.ConvertErr(err)
	if got.ErrMsg != errno.CommentNotFoundErr.ErrMsg {
		t.Errorf("expected the fetcher's not-found error, got %+v", got)
	}
}

func TestMatchOwner(t *testing.T) {
	if !MatchOwner(7, 7) {
		t.Error("identical ids must match")
	}
	if MatchOwner(7, 8) {
		t.Error("different ids must not match")
	}
}
