package handlers

import (
	"errors"
	"net/http"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler holds the message service.
type MessageHandler struct {
	messageService services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(ms services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: ms}
}

// CreateMessage handles the public contact form submission.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	message, err := h.messageService.CreateMessage(req)
	if err != nil {
		utils.LogError(err, "CreateMessage: Error from messageService.CreateMessage")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit message."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusCreated, "Message submitted successfully", message)
}

// GetMessages handles fetching messages with optional read filter.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	var filters models.MessageFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationFailed(c, "Invalid query parameters: "+err.Error())
		return
	}

	messages, total, err := h.messageService.GetMessages(filters)
	if err != nil {
		utils.LogError(err, "GetMessages: Error from messageService.GetMessages")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch messages."))
		return
	}

	page, limit := filters.Page, filters.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	utils.RespondList(c, messages, len(messages), total, page, limit)
}

// GetMessageByID returns the message and marks it read as a side effect.
func (h *MessageHandler) GetMessageByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid message ID format.")
		return
	}

	message, err := h.messageService.FetchAndMarkRead(id)
	if err != nil {
		utils.LogError(err, "GetMessageByID: Error from messageService.FetchAndMarkRead")
		if errors.Is(err, services.ErrMessageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Message not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch message."))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, message)
}

// UpdateMessage handles patching a stored message, the read flag included.
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid message ID format.")
		return
	}

	var req services.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	message, err := h.messageService.UpdateMessage(id, req)
	if err != nil {
		utils.LogError(err, "UpdateMessage: Error from messageService.UpdateMessage")
		if errors.Is(err, services.ErrMessageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Message not found."))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update message."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Message updated successfully", message)
}

// DeleteMessage handles deleting a message.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid message ID format.")
		return
	}

	if err := h.messageService.DeleteMessage(id); err != nil {
		utils.LogError(err, "DeleteMessage: Error from messageService.DeleteMessage")
		if errors.Is(err, services.ErrMessageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Message not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete message."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Message deleted successfully", nil)
}
