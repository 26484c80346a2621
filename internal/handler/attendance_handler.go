package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/middleware"
	"github.com/sinergi-org/sinergi-backend/internal/service"
)

// AttendanceHandler handles meeting attendance roster HTTP requests
type AttendanceHandler struct {
	service service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type reconcileRequest struct {
	Items []service.ReconcileItem `json:"items" binding:"required"`
}

type addAttendeeRequest struct {
	MemberID uint    `json:"member_id" binding:"required"`
	Status   string  `json:"status"`
	Note     *string `json:"note"`
}

// GenerateRoster handles POST /meetings/:id/attendance/generate
// @Summary Bangun daftar hadir dari aturan target rapat
// @Tags attendance
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} common.APIResponse{data=[]domain.AttendanceResponse}
// @Security BearerAuth
// @Router /meetings/{id}/attendance/generate [post]
func (h *AttendanceHandler) GenerateRoster(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	roster, err := h.service.Generate(id, middleware.GetActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	middleware.CountRosterWrite("generate")
	common.SuccessResponse(c, roster, nil)
}

// ListRoster handles GET /meetings/:id/attendance
// @Summary Daftar hadir rapat
// @Tags attendance
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} common.APIResponse{data=[]domain.AttendanceResponse}
// @Security BearerAuth
// @Router /meetings/{id}/attendance [get]
func (h *AttendanceHandler) ListRoster(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	roster, err := h.service.List(id, middleware.GetActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, roster, nil)
}

// ReconcileRoster handles PUT /meetings/:id/attendance
// @Summary Perbarui status kehadiran secara massal (semua atau tidak sama sekali)
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body reconcileRequest true "Item kehadiran"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /meetings/{id}/attendance [put]
func (h *AttendanceHandler) ReconcileRoster(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	if err := h.service.Reconcile(id, middleware.GetActor(c), req.Items); err != nil {
		writeServiceError(c, err)
		return
	}
	middleware.CountRosterWrite("reconcile")
	c.Status(http.StatusNoContent)
}

// AddAttendee handles POST /meetings/:id/attendance
// @Summary Tambah peserta secara manual (default: hadir)
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body addAttendeeRequest true "Peserta"
// @Success 200 {object} common.APIResponse{data=domain.AttendanceResponse}
// @Security BearerAuth
// @Router /meetings/{id}/attendance [post]
func (h *AttendanceHandler) AddAttendee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req addAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	record, err := h.service.AddManual(id, middleware.GetActor(c), req.MemberID, req.Status, req.Note)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	middleware.CountRosterWrite("add_manual")
	common.SuccessResponse(c, record, nil)
}

// RemoveAttendee handles DELETE /meetings/:id/attendance/:member_id
// @Summary Hapus peserta dari daftar hadir
// @Tags attendance
// @Produce json
// @Param id path int true "Meeting ID"
// @Param member_id path int true "Member ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /meetings/{id}/attendance/{member_id} [delete]
func (h *AttendanceHandler) RemoveAttendee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseIDParam(c, "member_id")
	if !ok {
		return
	}

	if err := h.service.Remove(id, middleware.GetActor(c), memberID); err != nil {
		writeServiceError(c, err)
		return
	}
	middleware.CountRosterWrite("remove")
	c.Status(http.StatusNoContent)
}
