package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"playtube.com/cmd/video/service"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/jwt"
	"playtube.com/pkg/utils"
)

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoUpdateParam
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

	// The thumbnail is optional at the binding layer; the service decides
	// whether its absence is an error.
	thumbnail, _ := c.FormFile("thumbnail")

	video, err := service.NewVideoUpdateService(ctx).Update(&service.VideoUpdateRequest{
		VideoId:     videoId,
		Title:       param.Title,
		Description: param.Description,
		Thumbnail:   thumbnail,
		AccessToken: jwt.ExtractAccessToken(c),
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success.WithMessage("Title and Description are updated"), video)
}
