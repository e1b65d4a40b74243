package handlers

import (
	"errors"
	"net/http"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/services"
	"restaurant_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler holds the reservation service.
type ReservationHandler struct {
	reservationService services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(rs services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: rs}
}

// CreateReservation handles booking a table.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	reservation, err := h.reservationService.CreateReservation(req)
	if err != nil {
		utils.LogError(err, "CreateReservation: Error from reservationService.CreateReservation")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create reservation."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// GetReservations handles fetching reservations with optional filters.
func (h *ReservationHandler) GetReservations(c *gin.Context) {
	var filters models.ReservationFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondValidationFailed(c, "Invalid query parameters: "+err.Error())
		return
	}

	reservations, total, err := h.reservationService.GetReservations(filters)
	if err != nil {
		utils.LogError(err, "GetReservations: Error from reservationService.GetReservations")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reservations."))
		return
	}

	page, limit := filters.Page, filters.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	utils.RespondList(c, reservations, len(reservations), total, page, limit)
}

// GetReservationByID handles fetching a single reservation by ID.
func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid reservation ID format.")
		return
	}

	reservation, err := h.reservationService.GetReservationByID(id)
	if err != nil {
		utils.LogError(err, "GetReservationByID: Error from reservationService.GetReservationByID")
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reservation."))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, reservation)
}

// UpdateReservation handles the admin patch, status included.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid reservation ID format.")
		return
	}

	var req services.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	reservation, err := h.reservationService.UpdateReservation(id, req)
	if err != nil {
		utils.LogError(err, "UpdateReservation: Error from reservationService.UpdateReservation")
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found."))
		} else if errors.Is(err, services.ErrInvalidReservationStatus) || errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update reservation."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Reservation updated successfully", reservation)
}

// CancelReservation handles the public cancellation endpoint. The status is
// forced to cancelled whatever the current state.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid reservation ID format.")
		return
	}

	reservation, err := h.reservationService.CancelReservation(id)
	if err != nil {
		utils.LogError(err, "CancelReservation: Error from reservationService.CancelReservation")
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to cancel reservation."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Reservation cancelled successfully", reservation)
}

// DeleteReservation handles permanently removing a reservation.
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid reservation ID format.")
		return
	}

	if err := h.reservationService.DeleteReservation(id); err != nil {
		utils.LogError(err, "DeleteReservation: Error from reservationService.DeleteReservation")
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found."))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete reservation."))
		}
		return
	}
	utils.RespondSuccessMessage(c, http.StatusOK, "Reservation deleted successfully", nil)
}
