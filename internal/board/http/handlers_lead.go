package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createLead(c *gin.Context) {
	var req leadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(c, err)
		return
	}

	lead, err := h.svc.CreateLead(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toLeadResponse(*lead))
}

func (h *Handler) listLeads(c *gin.Context) {
	leads, err := h.svc.ListLeads(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLeadResponses(leads))
}

func (h *Handler) getLead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	lead, err := h.svc.GetLead(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLeadResponse(*lead))
}

func (h *Handler) updateLead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// An unknown id is reported before the body is looked at.
	if _, err := h.svc.GetLead(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	var req leadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(c, err)
		return
	}

	lead, err := h.svc.UpdateLead(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLeadResponse(*lead))
}

func (h *Handler) deleteLead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteLead(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
