package handlers

import (
	"net/http"
	"strconv"

	"devconnect/helper"
	"devconnect/models"
	"devconnect/services"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	responseService services.ResponseService
	helper          *helper.HTTPHelper
}

func NewResponseHandler(responseService services.ResponseService, httpHelper *helper.HTTPHelper) *ResponseHandler {
	return &ResponseHandler{responseService: responseService, helper: httpHelper}
}

func (h *ResponseHandler) CreateResponse(c *gin.Context) {
	var req models.CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidatePayload(c, &req) {
		return
	}

	response, err := h.responseService.CreateResponse(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ResponseHandler) GetResponsesForUser(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	responses, err := h.responseService.ListResponsesForUser(userID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

func (h *ResponseHandler) GetNotifications(c *gin.Context) {
	userID, ok := h.parseUserID(c)
	if !ok {
		return
	}

	notifications, err := h.responseService.ListNotifications(userID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *ResponseHandler) parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		h.helper.SendBadRequest(c, "Invalid user ID")
		return 0, false
	}
	return uint(id), true
}
