package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/httpresp"
	"github.com/washpoint/carwash-api/internal/middleware"
	ucAppointment "github.com/washpoint/carwash-api/internal/usecase/appointment"
)

type AppointmentDomicileHandler struct {
	createUC *ucAppointment.CreateAppointment
	claimUC  *ucAppointment.ClaimAppointment
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
	log      *zap.Logger
}

func NewAppointmentDomicileHandler(
	createUC *ucAppointment.CreateAppointment,
	claimUC *ucAppointment.ClaimAppointment,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	log *zap.Logger,
) *AppointmentDomicileHandler {
	return &AppointmentDomicileHandler{
		createUC: createUC,
		claimUC:  claimUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		log:      log,
	}
}

// --------- Requests ---------

type CreateDomicileRequest struct {
	Time     time.Time `json:"time" binding:"required"`
	CarType  string    `json:"car_type" binding:"required"`
	CarName  string    `json:"car_name" binding:"required"`
	WashType string    `json:"wash_type" binding:"required"`
	Place    string    `json:"place" binding:"required"`
	// free washes are legal; negative prices are rejected downstream
	Price float64 `json:"price"`
}

type UpdateDomicileRequest struct {
	Time     *time.Time `json:"time"`
	CarType  *string    `json:"car_type"`
	CarName  *string    `json:"car_name"`
	WashType *string    `json:"wash_type"`
	Place    *string    `json:"place"`
	Price    *float64   `json:"price"`
	Status   *string    `json:"status"`
}

// --------- Handlers ---------

func (h *AppointmentDomicileHandler) Create(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req CreateDomicileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.ExecuteDomicile(c.Request.Context(), ucAppointment.CreateDomicileInput{
		ClientID: p.ID,
		Time:     req.Time,
		CarType:  req.CarType,
		CarName:  req.CarName,
		WashType: req.WashType,
		Place:    req.Place,
		Price:    req.Price,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

// GetAll lists Pending appointments for extern employees to claim.
func (h *AppointmentDomicileHandler) GetAll(c *gin.Context) {
	aps, err := h.listUC.PendingDomicile(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentDomicileHandler) Mine(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	aps, err := h.listUC.MineDomicile(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentDomicileHandler) Claim(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.claimUC.Execute(c.Request.Context(), p.ID, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentDomicileHandler) Get(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Domicile(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentDomicileHandler) Update(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateDomicileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.updateUC.ExecuteDomicile(c.Request.Context(), p, id, ucAppointment.UpdateDomicileInput{
		Time:     req.Time,
		CarType:  req.CarType,
		CarName:  req.CarName,
		WashType: req.WashType,
		Place:    req.Place,
		Price:    req.Price,
		Status:   req.Status,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentDomicileHandler) Delete(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Domicile(c.Request.Context(), p, id); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
