package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/procrm-api/internal/application"
	repo "github.com/oksasatya/procrm-api/internal/domain/repository"
	"github.com/oksasatya/procrm-api/pkg/response"
	"github.com/oksasatya/procrm-api/pkg/validation"
)

type LeadHandler struct {
	Svc    *application.LeadService
	Logger *logrus.Logger
}

func NewLeadHandler(svc *application.LeadService, logger *logrus.Logger) *LeadHandler {
	return &LeadHandler{Svc: svc, Logger: logger}
}

type createLeadRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Company   string  `json:"company" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Position  string  `json:"position"`
	Phone     string  `json:"phone"`
	DealValue float64 `json:"dealValue" binding:"omitempty,gte=0"`
	Stage     string  `json:"stage" binding:"omitempty,stage"`
	Notes     string  `json:"notes"`
}

type updateLeadRequest struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Company   *string  `json:"company"`
	Email     *string  `json:"email" binding:"omitempty,email"`
	Position  *string  `json:"position"`
	Phone     *string  `json:"phone"`
	DealValue *float64 `json:"dealValue" binding:"omitempty,gte=0"`
	Stage     *string  `json:"stage" binding:"omitempty,stage"`
	Notes     *string  `json:"notes"`
}

// List GET /api/leads?stage=&search=
func (h *LeadHandler) List(c *gin.Context) {
	filter := application.LeadFilter{
		Stage:  c.Query("stage"),
		Search: c.Query("search"),
	}
	leads, err := h.Svc.List(filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"count": len(leads), "leads": leads})
}

// ByStage GET /api/leads/stage/:stage
func (h *LeadHandler) ByStage(c *gin.Context) {
	stage := c.Param("stage")
	leads, err := h.Svc.List(application.LeadFilter{Stage: stage})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"stage": stage, "count": len(leads), "leads": leads})
}

// Get GET /api/leads/:id
func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"lead": lead})
}

// Create POST /api/leads
func (h *LeadHandler) Create(c *gin.Context) {
	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}
	lead, err := h.Svc.Create(application.CreateLeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Position:  req.Position,
		Email:     req.Email,
		Phone:     req.Phone,
		DealValue: req.DealValue,
		Stage:     req.Stage,
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{"message": "Lead created successfully", "lead": lead})
}

// Update PUT /api/leads/:id
func (h *LeadHandler) Update(c *gin.Context) {
	var req updateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}
	lead, err := h.Svc.Update(c.Param("id"), application.UpdateLeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Position:  req.Position,
		Email:     req.Email,
		Phone:     req.Phone,
		DealValue: req.DealValue,
		Stage:     req.Stage,
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Lead updated successfully", "lead": lead})
}

// Delete DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

func (h *LeadHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrLeadNotFound):
		response.Err(c, http.StatusNotFound, "Lead not found")
	case errors.Is(err, application.ErrInvalidStage):
		response.Err(c, http.StatusBadRequest, "Invalid stage")
	case errors.Is(err, application.ErrNegativeValue):
		response.Err(c, http.StatusBadRequest, "Deal value must not be negative")
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("lead operation failed")
		}
		response.Err(c, http.StatusInternalServerError, "Internal server error")
	}
}
