package http

import "github.com/gin-gonic/gin"

// Register attaches the board routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/column", h.createColumn)
	r.GET("/columns", h.listColumns)
	r.GET("/column/:id", h.getColumn)
	r.PUT("/column/:id", h.updateColumn)
	r.DELETE("/column/:id", h.deleteColumn)

	r.POST("/lead", h.createLead)
	r.GET("/leads", h.listLeads)
	r.GET("/lead/:id", h.getLead)
	r.PUT("/lead/:id", h.updateLead)
	r.DELETE("/lead/:id", h.deleteLead)
}
