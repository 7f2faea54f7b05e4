package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/cmd/interaction/service"
	"playtube.com/pkg/constants"
	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ConvertStringToInt64(c.Param("commentId"))
	if err != nil {
		SendResponse(c, errno.RequestErr.WithMessage("Invalid comment id"), nil)
		return
	}

	v, _ := c.Get(constants.IdentityKey)
	userId := utils.Transfer(v)

	liked, err := service.NewLikeService(ctx).ToggleCommentLike(&service.ToggleCommentLikeRequest{
		CommentId: commentId,
		UserId:    userId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	message := "Comment is unliked"
	if liked {
		message = "Comment is liked"
	}
	SendResponse(c, errno.Success.WithMessage(message), map[string]interface{}{"is_liked": liked})
}
