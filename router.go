package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	interaction "playtube.com/cmd/api/handlers/interaction"
	video "playtube.com/cmd/api/handlers/video"
	"playtube.com/cmd/api/router/authfunc"
)

func register(r *server.Hertz) {
	v1 := r.Group("/api/v1")
	v1.Use(authfunc.Auth()...)

	videos := v1.Group("/videos")
	videos.GET("", video.GetAllVideo)
	videos.POST("", video.PublishVideo)
	videos.GET("/:videoId", video.GetVideoById)
	videos.PATCH("/:videoId", video.UpdateVideo)
	videos.DELETE("/:videoId", video.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", video.TogglePublishStatus)

	comments := v1.Group("/comments")
	comments.GET("/:videoId", interaction.GetVideoComments)
	comments.POST("/:videoId", interaction.AddComment)
	comments.PATCH("/c/:commentId", interaction.UpdateComment)
	comments.DELETE("/c/:commentId", interaction.DeleteComment)

	likes := v1.Group("/likes")
	likes.POST("/toggle/c/:commentId", interaction.ToggleCommentLike)
}
