package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/interaction/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/utils"
)

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("commentId"))
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid comment id"), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).DeleteComment(&service.DeleteCommentRequest{
		CommentId:   commentId,
		AccessToken: jwt.ExtractAccessToken(c),
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment is deleted"), comment)
}
