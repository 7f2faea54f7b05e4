package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/pkg/errno"
)

type Response struct {
	Status  int64       `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		Status:  Err.ErrCode,
		Data:    data,
		Message: Err.ErrMsg,
	})
}

type CreateCommentParam struct {
	Content string `form:"content" json:"content"`
}

type UpdateCommentParam struct {
	Content string `form:"content" json:"content"`
}
