package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/leadboard-backend/internal/board/domain"
)

func (h *Handler) createColumn(c *gin.Context) {
	var req columnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Name == nil {
		writeError(c, domain.ErrNameRequired)
		return
	}

	col, err := h.svc.CreateColumn(c.Request.Context(), *req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toColumnResponse(*col))
}

func (h *Handler) listColumns(c *gin.Context) {
	cols, err := h.svc.ListColumnsWithLeads(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toColumnResponses(cols))
}

func (h *Handler) getColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	col, err := h.svc.GetColumnWithLeads(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toColumnResponse(*col))
}

func (h *Handler) updateColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// An unknown id is reported before the body is looked at.
	if _, err := h.svc.GetColumn(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	var req columnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Name == nil {
		writeError(c, domain.ErrNameRequired)
		return
	}

	col, err := h.svc.RenameColumn(c.Request.Context(), id, *req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toColumnResponse(*col))
}

func (h *Handler) deleteColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteColumn(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
