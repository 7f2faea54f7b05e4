package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"

	"playtube.com/pkg/errno"
	"playtube.com/pkg/utils"
)

type Response struct {
	Status  int64       `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// SendResponse packs the response envelope. The HTTP status mirrors the
// envelope status; every success is 200, creation included.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		Status:  Err.ErrCode,
		Data:    data,
		Message: Err.ErrMsg,
	})
}

type VideoListParam struct {
	Query    string `query:"query"`
	UserId   string `query:"userId"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
}

// userFilterId coerces the optional userId query filter. Non-numeric input
// is ignored rather than rejected, so a garbled filter still yields a page.
func userFilterId(raw string) int64 {
	if raw == "" {
		return 0
	}
	if id := utils.Transfer(raw); id > 0 {
		return id
	}
	return 0
}

type VideoPublishParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type VideoUpdateParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
