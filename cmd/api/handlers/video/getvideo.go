package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/video/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

func GetVideoById(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("videoId"))
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid video id"), nil)
		return
	}

	video, err := service.NewVideoInfoService(ctx).VideoInfo(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Video fetched successfully"), video)
}
