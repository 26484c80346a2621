package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/common"
)

// writeServiceError maps service-layer sentinel errors to HTTP responses.
// Authorization denials and missing entities get distinct statuses but no
// extra detail, so a denied caller cannot probe what exists.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, "Akses ditolak", err)
	case errors.Is(err, common.ErrMeetingNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Rapat tidak ditemukan", err)
	case errors.Is(err, common.ErrProgramNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Proker tidak ditemukan", err)
	case errors.Is(err, common.ErrMemberNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Anggota tidak ditemukan", err)
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Data tidak ditemukan", err)
	case errors.Is(err, common.ErrInvalidTransition):
		common.ErrorResponse(c, http.StatusConflict, "Perubahan status tidak diizinkan", err)
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "Data tidak valid", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Terjadi kesalahan internal", err)
	}
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "ID tidak valid", err)
		return 0, false
	}
	return uint(id), true
}
