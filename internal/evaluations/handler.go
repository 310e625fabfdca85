package evaluations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"airscore-backend/internal/catalog"
	"airscore-backend/internal/scoring"
	"airscore-backend/internal/shared/server/middleware"
	"airscore-backend/internal/shared/server/respond"
)

const maxBodySize = 1 << 20 // 1MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scoring and catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.evaluate)
	rg.POST("/simulations", h.simulate)
	rg.POST("/comparisons", h.compare)

	rg.GET("/occupations", h.listOccupations)
	rg.GET("/occupations/:name", h.getOccupation)
	rg.GET("/occupations/:name/skills", h.requiredSkills)
	rg.GET("/pathways", h.listPathways)
	rg.GET("/pathways/:name", h.getPathway)
	rg.GET("/education-levels", h.educationLevels)
	rg.GET("/samples/profile", h.sampleProfile)
}

// RateLimitGroup puts every scoring POST into the scoring bucket.
func RateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		return middleware.ScoringGroup
	}
	return ""
}

func (h *Handler) evaluate(c *gin.Context) {
	var req EvaluateInput
	if !bindJSON(c, &req) {
		return
	}
	c.Set(middleware.OccupationKey, strings.TrimSpace(req.Occupation))

	ev, err := h.Svc.Evaluate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to evaluate profile")
		return
	}
	respond.JSON(c, http.StatusCreated, ev)
}

func (h *Handler) simulate(c *gin.Context) {
	var req SimulateInput
	if !bindJSON(c, &req) {
		return
	}
	c.Set(middleware.PathwayKey, strings.TrimSpace(req.Pathway))
	if req.Evaluation != nil {
		c.Set(middleware.OccupationKey, strings.TrimSpace(req.Evaluation.Occupation))
	}

	sim, err := h.Svc.Simulate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to simulate pathway")
		return
	}
	respond.OK(c, sim)
}

func (h *Handler) compare(c *gin.Context) {
	var req CompareInput
	if !bindJSON(c, &req) {
		return
	}

	ranked, err := h.Svc.Compare(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to compare occupations")
		return
	}
	respond.OK(c, gin.H{"comparisons": ranked})
}

func (h *Handler) listOccupations(c *gin.Context) {
	occupations, err := h.Svc.Catalog.ListOccupations(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list occupations")
		return
	}
	respond.OK(c, gin.H{"occupations": occupations})
}

func (h *Handler) getOccupation(c *gin.Context) {
	name := c.Param("name")
	c.Set(middleware.OccupationKey, name)

	occupation, err := h.Svc.Catalog.GetOccupation(c.Request.Context(), name)
	if err != nil {
		writeError(c, err, "failed to fetch occupation")
		return
	}
	respond.OK(c, occupation)
}

func (h *Handler) requiredSkills(c *gin.Context) {
	name := c.Param("name")
	c.Set(middleware.OccupationKey, name)

	ctx := c.Request.Context()
	occupation, err := h.Svc.Catalog.GetOccupation(ctx, name)
	if err != nil {
		writeError(c, err, "failed to fetch occupation")
		return
	}
	skills, err := h.Svc.Catalog.RequiredSkills(ctx, occupation.Name)
	if err != nil {
		writeError(c, err, "failed to fetch required skills")
		return
	}
	respond.OK(c, gin.H{"occupation": occupation.Name, "skills": skills})
}

func (h *Handler) listPathways(c *gin.Context) {
	pathways, err := h.Svc.Catalog.ListPathways(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list pathways")
		return
	}
	respond.OK(c, gin.H{"pathways": pathways})
}

func (h *Handler) getPathway(c *gin.Context) {
	name := c.Param("name")
	c.Set(middleware.PathwayKey, name)

	pathway, err := h.Svc.Catalog.GetPathway(c.Request.Context(), name)
	if err != nil {
		writeError(c, err, "failed to fetch pathway")
		return
	}
	respond.OK(c, pathway)
}

func (h *Handler) educationLevels(c *gin.Context) {
	respond.OK(c, gin.H{"educationLevels": scoring.EducationLevels()})
}

func (h *Handler) sampleProfile(c *gin.Context) {
	respond.OK(c, EvaluateInput{
		Profile:    catalog.SampleProfile(),
		Occupation: catalog.SampleOccupation,
		Skills:     catalog.SampleSkills(),
	})
}

func bindJSON(c *gin.Context, dst any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	if err := c.ShouldBindJSON(dst); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return false
	}
	return true
}

func writeError(c *gin.Context, err error, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "request is invalid", verr.Fields)
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, catalog.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
