package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/internal/middleware"
	"github.com/sinergi-org/sinergi-backend/internal/service"
)

// MeetingHandler handles meeting ("rapat") HTTP requests
type MeetingHandler struct {
	service service.MeetingService
}

// NewMeetingHandler creates a new MeetingHandler
func NewMeetingHandler(service service.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

type createMeetingRequest struct {
	Title     string            `json:"title" binding:"required"`
	Category  string            `json:"category" binding:"required"`
	ProgramID *uint             `json:"program_id"`
	Target    domain.TargetView `json:"target" binding:"required"`
	Location  string            `json:"location"`
	Date      time.Time         `json:"date" binding:"required"`
	Notes     string            `json:"notes"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// CreateMeeting handles POST /meetings
// @Summary Buat rapat baru (status awal: draft)
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body createMeetingRequest true "Data rapat"
// @Success 201 {object} common.APIResponse{data=domain.MeetingResponse}
// @Security BearerAuth
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	meeting, err := h.service.Create(middleware.GetActor(c), service.CreateMeetingInput{
		Title:     req.Title,
		Category:  req.Category,
		ProgramID: req.ProgramID,
		Target:    req.Target,
		Location:  req.Location,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.APIResponse{Data: meeting})
}

// GetMeeting handles GET /meetings/:id
// @Summary Detail rapat
// @Tags meetings
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} common.APIResponse{data=domain.MeetingResponse}
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	meeting, err := h.service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, meeting, nil)
}

// TransitionStatus handles POST /meetings/:id/status
// @Summary Ubah status rapat
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body transitionRequest true "Status tujuan"
// @Success 200 {object} common.APIResponse{data=domain.MeetingResponse}
// @Security BearerAuth
// @Router /meetings/{id}/status [post]
func (h *MeetingHandler) TransitionStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	meeting, err := h.service.TransitionStatus(id, req.Status, middleware.GetActor(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, meeting, nil)
}

// ResolveAudience handles GET /meetings/:id/audience
// @Summary Pratinjau peserta yang diharapkan hadir
// @Tags meetings
// @Produce json
// @Param id path int true "Meeting ID"
// @Success 200 {object} common.APIResponse{data=[]domain.MemberResponse}
// @Router /meetings/{id}/audience [get]
func (h *MeetingHandler) ResolveAudience(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.service.ResolveAudience(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, members, nil)
}

// UpdateNotes handles PUT /meetings/:id/notes
// @Summary Ubah notulensi rapat
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path int true "Meeting ID"
// @Param request body updateNotesRequest true "Notulensi"
// @Success 200 {object} common.APIResponse{data=domain.MeetingResponse}
// @Security BearerAuth
// @Router /meetings/{id}/notes [put]
func (h *MeetingHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	meeting, err := h.service.UpdateNotes(id, middleware.GetActor(c), req.Notes)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	common.SuccessResponse(c, meeting, nil)
}
