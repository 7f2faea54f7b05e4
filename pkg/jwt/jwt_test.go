package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"playtube.com/config"
	"playtube.com/pkg/constants"
)

func init() {
	config.ConfigInfo.JWT.Secret = "unit-test-secret"
	config.ConfigInfo.JWT.ExpireHours = 1
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(1001)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	userId, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if userId != 1001 {
		t.Errorf("subject = %d, want 1001", userId)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	claims := jwtlib.MapClaims{
		constants.IdentityKey: int64(1001),
		"exp":                 time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(config.ConfigInfo.JWT.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	claims := jwtlib.MapClaims{
		constants.IdentityKey: int64(1001),
		"exp":                 time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestParseNormalizesStringSubject(t *testing.T) {
	// Some signers emit the user id claim as a string; verification must
	// canonicalize it rather than fail the comparison downstream.
	claims := jwtlib.MapClaims{
		constants.IdentityKey: "1001",
		"exp":                 time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).
		SignedString([]byte(config.ConfigInfo.JWT.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	userId, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if userId != 1001 {
		t.Errorf("subject = %d, want 1001", userId)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseAccessToken("not-a-jwt"); err == nil {
		t.Error("garbage token accepted")
	}
}
