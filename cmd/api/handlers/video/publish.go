package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/video/service"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoPublishParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	v, _ := c.Get(constants.IdentityKey)
	userId := utils.Transfer(v)

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Video file is required"), nil)
		return
	}
	thumbnail, err := c.FormFile("thumbnail")
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Thumbnail file is required"), nil)
		return
	}

	video, err := service.NewVideoPublishService(ctx).Publish(&service.VideoPublishRequest{
		UserId:      userId,
		Title:       param.Title,
		Description: param.Description,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video is published successfully"), video)
}
