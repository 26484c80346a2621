package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/middleware"
	"github.com/sinergi-org/sinergi-backend/internal/service"
)

// ProgramHandler handles program ("proker") HTTP requests
type ProgramHandler struct {
	service service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler
func NewProgramHandler(service service.ProgramService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type changeLeadRequest struct {
	LeadMemberID *uint `json:"lead_member_id"`
}

// GetProgram handles GET /programs/:id
// @Summary Detail proker beserta riwayat ketua
// @Tags programs
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} common.APIResponse{data=domain.Program}
// @Router /programs/{id} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	program, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, program, nil)
}

// GetTeam handles GET /programs/:id/team
// @Summary Susunan kepanitiaan proker
// @Tags programs
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} common.APIResponse{data=[]domain.ProgramStaffAssignment}
// @Router /programs/{id}/team [get]
func (h *ProgramHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.service.ListTeam(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, team, nil)
}

// TransitionStatus handles POST /programs/:id/status
// @Summary Ubah status proker
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param request body transitionRequest true "Status tujuan"
// @Success 200 {object} common.APIResponse{data=domain.Program}
// @Security BearerAuth
// @Router /programs/{id}/status [post]
func (h *ProgramHandler) TransitionStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	program, err := h.service.TransitionStatus(c.Request.Context(), id, req.Status, middleware.GetActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, program, nil)
}

// ChangeLead handles POST /programs/:id/lead
// @Summary Ganti ketua proker (riwayat tercatat)
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param request body changeLeadRequest true "Ketua baru (null untuk mengosongkan)"
// @Success 200 {object} common.APIResponse{data=domain.Program}
// @Security BearerAuth
// @Router /programs/{id}/lead [post]
func (h *ProgramHandler) ChangeLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req changeLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	program, err := h.service.ChangeLead(c.Request.Context(), id, req.LeadMemberID, middleware.GetActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, program, nil)
}
