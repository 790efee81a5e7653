package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/service"
)

const notFoundMessage = "Not Found"

// Handler bundles the dependencies for board HTTP endpoints.
type Handler struct {
	svc *service.BoardService
}

func New(svc *service.BoardService) *Handler {
	return &Handler{svc: svc}
}

// NotFound renders the single not-found body used for every unresolved id
// and unknown route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{Error: notFoundMessage})
}

// pathID parses the :id parameter. A non-numeric id never matches a row.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		NotFound(c)
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c)
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrCompanyRequired),
		errors.Is(err, domain.ErrColumnIDRequired):
		badRequest(c, err.Error())
	case errors.Is(err, domain.ErrColumnNotExists):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrColumnHasLeads):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", middleware.GetRequestID(c.Request.Context()),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}
