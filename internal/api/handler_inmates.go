package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/mw"
)

// ListInmates handles GET /api/wardens/me/inmates: the occupants of the
// warden's hostel joined with their room details.
func (h *Handler) ListInmates(c *gin.Context) {
	ctx := c.Request.Context()

	hostel, err := h.store.GetHostelByWarden(ctx, mw.AccountID(c))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "you have not registered a hostel yet"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
		return
	}

	inmates, err := h.store.ListInmates(ctx, hostel.HostelID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve inmates"})
		return
	}
	c.JSON(http.StatusOK, inmates)
}

type removeInmateRequest struct {
	RoomID string `json:"roomid" binding:"required"`
}

// RemoveInmate handles DELETE /api/wardens/me/inmates/:user_id. The hostel is
// always the caller's own, so a warden cannot evict across hostels.
func (h *Handler) RemoveInmate(c *gin.Context) {
	var req removeInmateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	hostel, err := h.store.GetHostelByWarden(ctx, mw.AccountID(c))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "you have not registered a hostel yet"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
		return
	}

	res := h.workflow.Remove(ctx, c.Param("user_id"), req.RoomID, hostel.HostelID)
	writeResult(c, res)
}
