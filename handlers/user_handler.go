package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"devconnect/config"
	"devconnect/helper"
	"devconnect/middleware"
	"devconnect/models"
	"devconnect/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	helper      *helper.HTTPHelper
	uploadsDir  string
}

func NewUserHandler(userService services.UserService, httpHelper *helper.HTTPHelper, uploadsCfg config.UploadsConfig) *UserHandler {
	return &UserHandler{
		userService: userService,
		helper:      httpHelper,
		uploadsDir:  uploadsCfg.Dir,
	}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.requireOwnUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AddProject(c *gin.Context) {
	id, ok := h.requireOwnUserID(c)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	project, err := h.userService.AddProject(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *UserHandler) UpdateProject(c *gin.Context) {
	id, ok := h.requireOwnUserID(c)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}

	project, err := h.userService.UpdateProject(id, c.Param("projectId"), req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *UserHandler) DeleteProject(c *gin.Context) {
	id, ok := h.requireOwnUserID(c)
	if !ok {
		return
	}

	// The body is optional; the title only matters for legacy projects
	// that never got an id.
	var req models.DeleteProjectRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.userService.DeleteProject(id, c.Param("projectId"), req.Title); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Project deleted"})
}

func (h *UserHandler) DeleteProjectsByTitle(c *gin.Context) {
	id, ok := h.requireOwnUserID(c)
	if !ok {
		return
	}

	var req models.DeleteByTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidatePayload(c, &req) {
		return
	}

	if err := h.userService.DeleteProjectsByTitle(id, req.Title); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Project deleted by title"})
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, ok := h.requireOwnUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		h.helper.SendBadRequest(c, "No file uploaded")
		return
	}

	// Target-user id plus timestamp keeps concurrent uploads from
	// clobbering each other.
	filename := fmt.Sprintf("%d_%d%s", id, time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, filename)); err != nil {
		h.helper.SendError(c, models.ErrorInternalServer{Message: "Failed to save file"})
		return
	}

	avatarURL := "/uploads/" + filename
	if _, err := h.userService.UpdateAvatar(id, avatarURL); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AvatarResponse{Avatar: avatarURL})
}

func (h *UserHandler) parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid user ID")
		return 0, false
	}
	return uint(id), true
}

// requireOwnUserID parses the path id and rejects callers acting on
// someone else's profile.
func (h *UserHandler) requireOwnUserID(c *gin.Context) (uint, bool) {
	id, ok := h.parseUserID(c)
	if !ok {
		return 0, false
	}
	if middleware.CurrentUserID(c) != id {
		h.helper.SendError(c, models.ErrorForbidden{Message: "Not allowed to edit this profile"})
		return 0, false
	}
	return id, true
}
