package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/interaction/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/utils"
)

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	commentId, err := utils.ConvertStringToInt64(c.Param("commentId"))
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid comment id"), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).UpdateComment(&service.UpdateCommentRequest{
		CommentId:   commentId,
		Content:     param.Content,
		AccessToken: jwt.ExtractAccessToken(c),
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment is updated successfully"), comment)
}
