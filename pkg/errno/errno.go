package errno

import (
	"errors"
	"fmt"
)

// Error codes double as the HTTP status of the response envelope. The
// historical code assignment is uneven across resources (comment-not-found
// is 401, video ownership failures are 500) and is kept as is.
const (
	SuccessCode             = 200
	RequestErrCode          = 400
	AuthorizationFailedCode = 401
	ServiceErrCode          = 500
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage returns a copy of the error carrying a more specific message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	RequestErr = NewErrNo(RequestErrCode, "Bad request")
	ServiceErr = NewErrNo(ServiceErrCode, "Service internal error")
	MysqlErr   = NewErrNo(ServiceErrCode, "Database operation failed")
	OssErr     = NewErrNo(ServiceErrCode, "Media storage operation failed")

	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Unauthorized request")
	TokenInvalidErr        = NewErrNo(AuthorizationFailedCode, "Invalid or expired token")

	VideoNotFoundErr   = NewErrNo(RequestErrCode, "Video does not exist")
	CommentNotFoundErr = NewErrNo(AuthorizationFailedCode, "Comment is not available")

	CommentPermissionErr = NewErrNo(RequestErrCode, "You don't have permission")
	VideoPermissionErr   = NewErrNo(ServiceErrCode, "You don't have permission")
)

// ConvertErr recovers the ErrNo wrapped anywhere in err's chain, falling
// back to ServiceErr with the original message.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
