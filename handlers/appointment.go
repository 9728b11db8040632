package handlers

import (
	"net/http"
	"time"

	"opdflow/models"
	appointmentSvc "opdflow/services/appointment"
	"opdflow/utils"

	"github.com/gin-gonic/gin"
)

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	appt, err := h.AppointmentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, appt)
}

// UpdateStatusHandler handles PUT /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	appt, err := h.AppointmentService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, appt)
}

// ListAppointmentsHandler handles GET /api/appointments. The role query
// parameter selects the caller's view: "patient" (default) lists their own
// bookings, "doctor" lists the schedule of the profile they own. Results are
// classified into upcoming and past server-side; ?bucket= narrows the
// response to one bucket and ?filter= narrows the past bucket to completed
// or not-completed entries.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var (
		appts []models.Appointment
		err   error
	)
	switch role := c.DefaultQuery("role", "patient"); role {
	case "patient":
		appts, err = h.AppointmentService.ListForPatient(c.Request.Context(), userID)
	case "doctor":
		appts, err = h.AppointmentService.ListForDoctor(c.Request.Context(), userID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "role must be patient or doctor")
		return
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	upcoming, past := appointmentSvc.Partition(appts, time.Now())
	past = appointmentSvc.FilterPastBucket(past, appointmentSvc.PastFilter(c.DefaultQuery("filter", "all")))

	if upcoming == nil {
		upcoming = []models.Appointment{}
	}
	if past == nil {
		past = []models.Appointment{}
	}

	switch c.Query("bucket") {
	case "upcoming":
		respondData(c, http.StatusOK, gin.H{"upcoming": upcoming})
	case "past":
		respondData(c, http.StatusOK, gin.H{"past": past})
	default:
		respondData(c, http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
	}
}

// PatientStatsHandler handles GET /api/appointments/stats.
func (h *AppointmentHandler) PatientStatsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	stats, err := h.AppointmentService.PatientStats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}

// DoctorStatsHandler handles GET /api/appointments/doctor-stats.
func (h *AppointmentHandler) DoctorStatsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	stats, err := h.AppointmentService.DoctorStats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
