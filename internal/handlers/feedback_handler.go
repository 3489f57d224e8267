package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/httpresp"
	"github.com/washpoint/carwash-api/internal/middleware"
	ucFeedback "github.com/washpoint/carwash-api/internal/usecase/feedback"
)

type FeedbackHandler struct {
	service *ucFeedback.Service
	log     *zap.Logger
}

func NewFeedbackHandler(service *ucFeedback.Service, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{service: service, log: log}
}

// --------- Requests ---------

type SubmitFeedbackRequest struct {
	ExternEmployeeID uint   `json:"extern_employee_id" binding:"required"`
	Rating           int    `json:"rating" binding:"required"`
	Text             string `json:"text"`
}

type ApproveFeedbackRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type SubmitRatingRequest struct {
	ExternEmployeeID uint `json:"extern_employee_id" binding:"required"`
	Score            int  `json:"score" binding:"required"`
}

// --------- Client ---------

func (h *FeedbackHandler) Submit(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	fb, err := h.service.Submit(c.Request.Context(), p.ID, req.ExternEmployeeID, req.Rating, req.Text)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, fb)
}

func (h *FeedbackHandler) SubmitRating(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rt, final, err := h.service.SubmitRating(c.Request.Context(), p.ID, req.ExternEmployeeID, req.Score)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"rating":       rt,
		"final_rating": final,
	})
}

// --------- Public ---------

// ListPublic only ever returns approved feedback; fresh submissions stay
// hidden until moderation.
func (h *FeedbackHandler) ListPublic(c *gin.Context) {
	rows, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *FeedbackHandler) ListRatings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rows, err := h.service.ListRatings(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, rows)
}

// --------- Admin ---------

func (h *FeedbackHandler) ListAdmin(c *gin.Context) {
	var approved *bool
	if q := c.Query("approved"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			httperr.BadRequest(c, "invalid_filter", "approved must be true or false")
			return
		}
		approved = &v
	}

	rows, err := h.service.ListAdmin(c.Request.Context(), approved)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *FeedbackHandler) Approve(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ApproveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	fb, err := h.service.Moderate(c.Request.Context(), p.ID, id, *req.Approved)
	if err != nil {
		if errors.Is(err, ucFeedback.ErrNotFound) {
			httperr.NotFound(c, "feedback_not_found", "no such feedback")
			return
		}
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, fb)
}

func (h *FeedbackHandler) Delete(c *gin.Context) {
	p := middleware.CurrentPrincipal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p.ID, id); err != nil {
		if errors.Is(err, ucFeedback.ErrNotFound) {
			httperr.NotFound(c, "feedback_not_found", "no such feedback")
			return
		}
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FeedbackHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
