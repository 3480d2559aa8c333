package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/ports"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/services"
)

type ReservationHandler struct {
	reservationService *services.ReservationService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

type ScheduleReservationRequest struct {
	VehicleID     string `json:"vehicleId" binding:"required" example:"veh-dublin-suv-1"`
	StartDateTime string `json:"startDateTime" binding:"required" example:"2026-09-08T10:00:00Z"`
	DurationMins  int    `json:"durationMins" binding:"required,min=1,max=480" example:"45"`
	CustomerName  string `json:"customerName" binding:"required" example:"Jamie Byrne"`
	CustomerEmail string `json:"customerEmail" binding:"required,email" example:"jamie@example.com"`
	CustomerPhone string `json:"customerPhone" binding:"required" example:"+353871234567"`
}

type BookingRequest struct {
	Location      string `json:"location" binding:"required" example:"dublin"`
	VehicleType   string `json:"vehicleType" binding:"required" example:"suv"`
	StartDateTime string `json:"startDateTime" binding:"required" example:"2026-09-08T10:00:00Z"`
	DurationMins  int    `json:"durationMins" binding:"required,min=1,max=480" example:"45"`
	CustomerName  string `json:"customerName" binding:"required" example:"Jamie Byrne"`
	CustomerEmail string `json:"customerEmail" binding:"required,email" example:"jamie@example.com"`
	CustomerPhone string `json:"customerPhone" binding:"required" example:"+353871234567"`
}

type CheckAvailabilityRequest struct {
	Location      string `form:"location" binding:"required"`
	VehicleType   string `form:"vehicleType" binding:"required"`
	StartDateTime string `form:"startDateTime" binding:"required"`
	DurationMins  int    `form:"durationMins" binding:"required,min=1,max=480"`
}

type BookingResponse struct {
	Available   bool                `json:"available"`
	Reservation *domain.Reservation `json:"reservation"`
}

func NewReservationHandler(
	reservationService *services.ReservationService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		logger:             logger,
		metrics:            metrics,
	}
}

// @Summary Check availability
// @Description Check whether any vehicle of the given type at the location can take the requested slot
// @Tags reservations
// @Produce json
// @Param location query string true "Location"
// @Param vehicleType query string true "Vehicle type"
// @Param startDateTime query string true "Requested start, ISO-8601 UTC"
// @Param durationMins query int true "Duration in minutes (1-480)"
// @Success 200 {object} domain.AvailabilityResult "Availability result"
// @Failure 400 {object} errorResponse "Invalid parameters"
// @Router /availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CheckAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Failed query parse in availability check", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.reservationService.CheckAvailability(
		c.Request.Context(),
		req.Location,
		req.VehicleType,
		req.StartDateTime,
		req.DurationMins,
	)
	if err != nil {
		h.logger.Error("Availability check failed", map[string]interface{}{
			"error":    err.Error(),
			"location": req.Location,
			"type":     req.VehicleType,
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Create reservation
// @Description Book a test drive on a specific vehicle
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body ScheduleReservationRequest true "Reservation data"
// @Success 201 {object} domain.Reservation "Reservation created"
// @Failure 400 {object} errorResponse "Invalid request or slot not bookable"
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req ScheduleReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create reservation", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	reservation, err := h.reservationService.Schedule(c.Request.Context(), ports.ScheduleInput{
		VehicleID:     req.VehicleID,
		StartDateTime: req.StartDateTime,
		DurationMins:  req.DurationMins,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		h.logger.Warn("Reservation rejected", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": req.VehicleID,
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// @Summary Book a test drive
// @Description Pick the first available vehicle of the requested type at the location and book it
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking data"
// @Success 201 {object} BookingResponse "Booking confirmed"
// @Failure 400 {object} errorResponse "Slot unavailable or invalid request"
// @Router /book [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in booking", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	reservation, err := h.reservationService.CheckAndBook(
		c.Request.Context(),
		req.Location,
		req.VehicleType,
		ports.ScheduleInput{
			StartDateTime: req.StartDateTime,
			DurationMins:  req.DurationMins,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		},
	)
	if err != nil {
		h.logger.Warn("Booking rejected", map[string]interface{}{
			"error":    err.Error(),
			"location": req.Location,
			"type":     req.VehicleType,
		})
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("Booking confirmed", map[string]interface{}{
		"reservation_id": reservation.ID,
		"vehicle_id":     reservation.VehicleID,
	})

	c.JSON(http.StatusCreated, BookingResponse{
		Available:   true,
		Reservation: reservation,
	})
}
