package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/washpoint/carwash-api/internal/audit"
	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/middleware"
	"github.com/washpoint/carwash-api/internal/models"
	ucAppointment "github.com/washpoint/carwash-api/internal/usecase/appointment"
)

// AdminHandler covers workforce and client management plus the aggregate
// projections. Everything here sits behind the admin role gate.
type AdminHandler struct {
	db      *gorm.DB
	statsUC *ucAppointment.AppointmentStats
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewAdminHandler(
	db *gorm.DB,
	statsUC *ucAppointment.AppointmentStats,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{db: db, statsUC: statsUC, audit: auditDispatcher, log: log}
}

// --------- Extern employees ---------

func (h *AdminHandler) ListExternEmployees(c *gin.Context) {
	var rows []models.ExternEmployee
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) GetExternEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var row models.ExternEmployee
	if err := h.db.WithContext(c.Request.Context()).First(&row, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "no such extern employee")
		return
	}
	c.JSON(http.StatusOK, row)
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Age      *int    `json:"age"`
}

func (h *AdminHandler) UpdateExternEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var row models.ExternEmployee
	if err := h.db.WithContext(c.Request.Context()).First(&row, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "no such extern employee")
		return
	}

	if req.FullName != nil {
		row.FullName = *req.FullName
	}
	if req.Phone != nil {
		row.Phone = *req.Phone
	}
	if req.Age != nil {
		row.Age = *req.Age
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&row).Error; err != nil {
		writeError(c, h.log, err)
		return
	}

	h.dispatchAdminAudit(c, "extern_employee_updated", "extern_employee", row.ID)
	c.JSON(http.StatusOK, row)
}

func (h *AdminHandler) DeleteExternEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.ExternEmployee{}, id)
	if res.Error != nil {
		writeError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "no such extern employee")
		return
	}

	h.dispatchAdminAudit(c, "extern_employee_deleted", "extern_employee", id)
	c.Status(http.StatusNoContent)
}

// --------- Intern employees ---------

func (h *AdminHandler) ListInternEmployees(c *gin.Context) {
	var rows []models.InternEmployee
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) GetInternEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var row models.InternEmployee
	if err := h.db.WithContext(c.Request.Context()).First(&row, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "no such intern employee")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *AdminHandler) UpdateInternEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var row models.InternEmployee
	if err := h.db.WithContext(c.Request.Context()).First(&row, id).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "no such intern employee")
		return
	}

	if req.FullName != nil {
		row.FullName = *req.FullName
	}
	if req.Phone != nil {
		row.Phone = *req.Phone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&row).Error; err != nil {
		writeError(c, h.log, err)
		return
	}

	h.dispatchAdminAudit(c, "intern_employee_updated", "intern_employee", row.ID)
	c.JSON(http.StatusOK, row)
}

func (h *AdminHandler) DeleteInternEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.InternEmployee{}, id)
	if res.Error != nil {
		writeError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "no such intern employee")
		return
	}

	h.dispatchAdminAudit(c, "intern_employee_deleted", "intern_employee", id)
	c.Status(http.StatusNoContent)
}

// --------- Clients ---------

func (h *AdminHandler) ListClients(c *gin.Context) {
	var rows []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var row models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&row, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "no such client")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Client{}, id)
	if res.Error != nil {
		writeError(c, h.log, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "no such client")
		return
	}

	h.dispatchAdminAudit(c, "client_deleted", "client", id)
	c.Status(http.StatusNoContent)
}

// --------- Projections ---------

func (h *AdminHandler) Stats(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Param("kind"))
	if !ok {
		httperr.BadRequest(c, "invalid_kind", "kind must be e (domicile) or i (location)")
		return
	}

	stats, err := h.statsUC.Stats(c.Request.Context(), kind, c.Query("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Revenue(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Param("kind"))
	if !ok {
		httperr.BadRequest(c, "invalid_kind", "kind must be e (domicile) or i (location)")
		return
	}

	rev, err := h.statsUC.Revenue(c.Request.Context(), kind, c.Query("date"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

func (h *AdminHandler) dispatchAdminAudit(c *gin.Context, action, entity string, entityID uint) {
	p := middleware.CurrentPrincipal(c)
	if p == nil {
		return
	}
	actorID := p.ID
	h.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: string(p.Role),
		Action:    action,
		Entity:    entity,
		EntityID:  &entityID,
	})
}
