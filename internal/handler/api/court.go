package api

import (
	"net/http"

	reqdto "badminton-club/internal/handler/dto/request"
	resdto "badminton-club/internal/handler/dto/response"
	"badminton-club/internal/handler/httperr"
	"badminton-club/internal/handler/middleware"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	cmds commands.CourtCommands
	q    queries.CourtQueries
}

func NewCourtHandler(cmds commands.CourtCommands, q queries.CourtQueries) *CourtHandler {
	return &CourtHandler{cmds: cmds, q: q}
}

// @Summary List courts
// @Description List all active courts
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Failure 500 {object} httperr.Response
// @Router /courts [get]
func (h *CourtHandler) List(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtViews(views))
}

// @Summary Get court
// @Description Get a court by ID
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} httperr.Response
// @Router /courts/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrCourtNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// @Summary Create court
// @Description Create a court (admin only)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /courts [post]
func (h *CourtHandler) Create(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBindError(c, err)
		return
	}

	view, err := h.cmds.CreateCourt(c.Request.Context(), req, caller)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAdminRequired):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied. Admin privileges required.", nil)
		case errs.Is(err, commands.ErrInvalidCourt):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Header("Location", "/api/courts/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCourtView(view))
}
