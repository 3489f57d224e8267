package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/washpoint/carwash-api/internal/httpresp"
	"github.com/washpoint/carwash-api/internal/middleware"
	ucAppointment "github.com/washpoint/carwash-api/internal/usecase/appointment"
)

type AppointmentLocationHandler struct {
	createUC *ucAppointment.CreateAppointment
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
	log      *zap.Logger
}

func NewAppointmentLocationHandler(
	createUC *ucAppointment.CreateAppointment,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	log *zap.Logger,
) *AppointmentLocationHandler {
	return &AppointmentLocationHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		log:      log,
	}
}

// --------- Requests ---------

type CreateLocationRequest struct {
	Date     string  `json:"date" binding:"required"`
	Time     string  `json:"time" binding:"required"`
	CarType  string  `json:"car_type" binding:"required"`
	CarName  string  `json:"car_name" binding:"required"`
	WashType string  `json:"wash_type" binding:"required"`
	// free washes are legal; negative prices are rejected downstream
	Price float64 `json:"price"`
}

type UpdateLocationRequest struct {
	Date     *string  `json:"date"`
	Time     *string  `json:"time"`
	CarType  *string  `json:"car_type"`
	CarName  *string  `json:"car_name"`
	WashType *string  `json:"wash_type"`
	Price    *float64 `json:"price"`
	Status   *string  `json:"status"`
}

// --------- Handlers ---------

func (h *AppointmentLocationHandler) Create(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	ap, err := h.createUC.ExecuteLocation(c.Request.Context(), ucAppointment.CreateLocationInput{
		ClientID: p.ID,
		Date:     date,
		Time:     req.Time,
		CarType:  req.CarType,
		CarName:  req.CarName,
		WashType: req.WashType,
		Price:    req.Price,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentLocationHandler) List(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	aps, err := h.listUC.Location(c.Request.Context(), p)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentLocationHandler) Get(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Location(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentLocationHandler) Update(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}
		date = &parsed
	}

	ap, err := h.updateUC.ExecuteLocation(c.Request.Context(), p, id, ucAppointment.UpdateLocationInput{
		Date:     date,
		Time:     req.Time,
		CarType:  req.CarType,
		CarName:  req.CarName,
		WashType: req.WashType,
		Price:    req.Price,
		Status:   req.Status,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentLocationHandler) Delete(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Location(c.Request.Context(), p, id); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
