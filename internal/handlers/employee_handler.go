package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/dto"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/media"
	"github.com/washpoint/carwash-api/internal/middleware"
	"github.com/washpoint/carwash-api/internal/models"
	"github.com/washpoint/carwash-api/internal/storage"
)

const maxUploadBytes = 5 << 20

// EmployeeHandler is the employee self-service surface: own profile with
// accumulated work history, and profile-image upload.
type EmployeeHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	store storage.ObjectStore
	log   *zap.Logger
}

func NewEmployeeHandler(
	db *gorm.DB,
	repo domain.Repository,
	store storage.ObjectStore,
	log *zap.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{db: db, repo: repo, store: store, log: log}
}

// --------- Details ---------

func (h *EmployeeHandler) ExternDetails(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var emp models.ExternEmployee
	if err := h.db.WithContext(c.Request.Context()).First(&emp, p.ID).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "no such extern employee")
		return
	}

	rows, err := h.repo.ListExternHistory(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	history := make([]dto.ExternHistoryDTO, 0, len(rows))
	for _, row := range rows {
		history = append(history, dto.NewExternHistoryDTO(row))
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": emp,
		"history":  history,
	})
}

func (h *EmployeeHandler) InternDetails(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var emp models.InternEmployee
	if err := h.db.WithContext(c.Request.Context()).First(&emp, p.ID).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "no such intern employee")
		return
	}

	rows, err := h.repo.ListInternHistory(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	history := make([]dto.InternHistoryDTO, 0, len(rows))
	for _, row := range rows {
		history = append(history, dto.NewInternHistoryDTO(row))
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": emp,
		"history":  history,
	})
}

// --------- Profile image ---------

// UploadExternProfileImage accepts a multipart "image" file, normalizes it
// to a bounded webp and stores it; the resulting URL is persisted on the
// employee row.
func (h *EmployeeHandler) UploadExternProfileImage(c *gin.Context) {
	h.uploadProfileImage(c, "extern")
}

func (h *EmployeeHandler) UploadInternProfileImage(c *gin.Context) {
	h.uploadProfileImage(c, "intern")
}

func (h *EmployeeHandler) uploadProfileImage(c *gin.Context, kind string) {
	p := middleware.CurrentPrincipal(c)

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "multipart field 'image' is required")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "image exceeds the 5MB limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	normalized, err := media.NormalizeProfileImage(raw)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	key := fmt.Sprintf("profile_images/%s_%d_%d.webp", kind, p.ID, time.Now().Unix())
	url, err := h.store.Put(c.Request.Context(), key, "image/webp", normalized)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	var updateErr error
	if kind == "extern" {
		updateErr = h.db.WithContext(c.Request.Context()).
			Model(&models.ExternEmployee{}).
			Where("id = ?", p.ID).
			Update("profile_image", url).Error
	} else {
		updateErr = h.db.WithContext(c.Request.Context()).
			Model(&models.InternEmployee{}).
			Where("id = ?", p.ID).
			Update("profile_image", url).Error
	}
	if updateErr != nil {
		writeError(c, h.log, updateErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image": url})
}
