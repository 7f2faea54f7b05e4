package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/interaction/service"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

func AddComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	videoId, err := utils.ConvertStringToInt64(c.Param("videoId"))
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}

	v, _ := c.Get(constants.IdentityKey)
	userId := utils.Transfer(v)

	comment, err := service.NewCommentService(ctx).CreateComment(&service.CreateCommentRequest{
		VideoId: videoId,
		UserId:  userId,
		Content: param.Content,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Comment is created successfully"), comment)
}
