package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPage  int64 = 1
	DefaultLimit int64 = 10

	// AccessTokenCookie is the cookie the frontend stores the bearer
	// credential in; the Authorization header is the fallback.
	AccessTokenCookie = "accessToken"
	IdentityKey       = "user_id"

	VideoBucket   = "video"
	PictureBucket = "picture"
)
