package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/service"
)

// MemberHandler handles member directory HTTP requests
type MemberHandler struct {
	service service.MemberService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(service service.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers handles GET /members
// @Summary Direktori anggota
// @Tags members
// @Produce json
// @Param page query int false "Halaman"
// @Param limit query int false "Jumlah per halaman"
// @Success 200 {object} common.APIResponse{data=[]domain.MemberResponse}
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	members, meta, err := h.service.ListMembers(c.Request.Context(), page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Gagal memuat direktori anggota", err)
		return
	}
	c.JSON(http.StatusOK, common.APIResponse{Data: members, Meta: meta})
}
