package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/interaction/service"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/pagination"
	"playtube.com/pkg/utils"
)

func GetVideoComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("videoId"))
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}

	v, _ := c.Get(constants.IdentityKey)
	viewerId := utils.Transfer(v)

	resp, err := service.NewCommentService(ctx).ListComment(&service.ListCommentRequest{
		VideoId:  videoId,
		ViewerId: viewerId,
		Page:     pagination.Page(c.Query("page")),
		Limit:    pagination.Limit(c.Query("limit")),
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("All comments are fetched"), resp)
}
