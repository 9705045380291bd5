package handlers

import (
	"net/http"
	"strconv"

	"devconnect/helper"
	"devconnect/middleware"
	"devconnect/models"
	"devconnect/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, httpHelper *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, helper: httpHelper}
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	posts, err := h.postService.GetPosts(params)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(middleware.CurrentUserID(c), req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := h.parsePostID(c)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(middleware.CurrentUserID(c), postID, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := h.parsePostID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(middleware.CurrentUserID(c), postID); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Post deleted"})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	postID, ok := h.parsePostID(c)
	if !ok {
		return
	}

	likes, err := h.postService.LikePost(middleware.CurrentUserID(c), postID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LikesResponse{Likes: likes})
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	postID, ok := h.parsePostID(c)
	if !ok {
		return
	}

	likes, err := h.postService.UnlikePost(middleware.CurrentUserID(c), postID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LikesResponse{Likes: likes})
}

func (h *PostHandler) parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid post ID")
		return 0, false
	}
	return uint(id), true
}
