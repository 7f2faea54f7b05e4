package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestWithMessageDoesNotMutate(t *testing.T) {
	custom := RequestErr.WithMessage("Video file is required")
	if custom.ErrMsg != "Video file is required" {
		t.Errorf("unexpected message: %s", custom.ErrMsg)
	}
	if custom.ErrCode != RequestErrCode {
		t.Errorf("code changed: %d", custom.ErrCode)
	}
	if RequestErr.ErrMsg != "Bad request" {
		t.Errorf("base error mutated: %s", RequestErr.ErrMsg)
	}
}

func TestConvertErrRecoversErrNo(t *testing.T) {
	wrapped := errors.WithMessage(VideoNotFoundErr, "dal.GetVideoInfo failed")
	got := ConvertErr(wrapped)
	if got.ErrCode != VideoNotFoundErr.ErrCode || got.ErrMsg != VideoNotFoundErr.ErrMsg {
		t.Errorf("ConvertErr lost the wrapped ErrNo: %+v", got)
	}
}

func TestConvertErrFallsBackToServiceErr(t *testing.T) {
	got := ConvertErr(errors.New("dial tcp: connection refused"))
	if got.ErrCode != ServiceErrCode {
		t.Errorf("fallback code = %d, want %d", got.ErrCode, ServiceErrCode)
	}
	if got.ErrMsg != "dial tcp: connection refused" {
		t.Errorf("fallback message = %s", got.ErrMsg)
	}
}

func TestStatusCodeAssignment(t *testing.T) {
	// The uneven historical mapping is deliberate; these assertions pin it.
	if CommentNotFoundErr.ErrCode != AuthorizationFailedCode {
		t.Errorf("comment-not-found should carry 401, got %d", CommentNotFoundErr.ErrCode)
	}
	if CommentPermissionErr.ErrCode != RequestErrCode {
		t.Errorf("comment ownership mismatch should carry 400, got %d", CommentPermissionErr.ErrCode)
	}
	if VideoPermissionErr.ErrCode != ServiceErrCode {
		t.Errorf("video ownership mismatch should carry 500, got %d", VideoPermissionErr.ErrCode)
	}
	if VideoNotFoundErr.ErrCode != RequestErrCode {
		t.Errorf("video-not-found should carry 400, got %d", VideoNotFoundErr.ErrCode)
	}
}
