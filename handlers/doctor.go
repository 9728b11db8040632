package handlers

import (
	"net/http"

	"opdflow/models"
	"opdflow/utils"

	"github.com/gin-gonic/gin"
)

// ListDoctorsHandler handles GET /api/doctors. Accepts an optional
// ?specialization= filter.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.List(c.Query("specialization"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	respondData(c, http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorHandler handles GET /api/doctors/:id.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	doc, err := h.DoctorService.GetByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, doc)
}

// GetSlotsHandler handles GET /api/doctors/:id/slots?date=YYYY-MM-DD. A date
// the doctor does not work yields an empty slot list, not an error.
func (h *DoctorHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	slots, err := h.DoctorService.GetSlots(c.Param("id"), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	respondData(c, http.StatusOK, gin.H{"date": date, "slots": slots})
}

// RegisterDoctorHandler handles POST /api/doctors.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.DoctorRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.DoctorService.Register(userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, doc)
}

// MyProfileHandler handles GET /api/doctors/me.
func (h *DoctorHandler) MyProfileHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	doc, err := h.DoctorService.GetByUserID(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, doc)
}

// UpdateDoctorHandler handles PUT /api/doctors/me.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.DoctorUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.DoctorService.Update(userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, doc)
}

// UpdateTimingsHandler handles PUT /api/doctors/me/timings.
func (h *DoctorHandler) UpdateTimingsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.TimingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.DoctorService.UpdateTimings(userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, doc)
}
