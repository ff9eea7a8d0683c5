package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/mw"
)

// ApplyToRoom handles POST /api/hostels/:hostel_id/rooms/:room_id/apply.
// The caller's identity comes from the session middleware and is passed
// explicitly into the workflow.
func (h *Handler) ApplyToRoom(c *gin.Context) {
	res := h.workflow.Apply(
		c.Request.Context(),
		mw.AccountID(c),
		c.Param("hostel_id"),
		c.Param("room_id"),
	)
	writeResult(c, res)
}

// profileResponse is the student home view: the profile plus, when assigned,
// the hostel, room, and warden details.
type profileResponse struct {
	User   *model.User   `json:"user"`
	Hostel *model.Hostel `json:"hostel,omitempty"`
	Room   *model.Room   `json:"room,omitempty"`
	Warden *model.Warden `json:"warden,omitempty"`
}

// GetMyProfile handles GET /api/students/me.
func (h *Handler) GetMyProfile(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.store.GetUserByID(ctx, mw.AccountID(c))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	// A dangling assignment reference renders as unassigned; any other store
	// failure is a real error.
	resp := profileResponse{User: user}
	if user.HostelID != nil {
		hostel, err := h.store.GetHostel(ctx, *user.HostelID)
		if err != nil && !notFound(err) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
			return
		}
		if hostel != nil {
			resp.Hostel = hostel
			warden, err := h.store.GetWardenByID(ctx, hostel.WardenID)
			if err != nil && !notFound(err) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve warden"})
				return
			}
			resp.Warden = warden
		}
	}
	if user.RoomID != nil {
		room, err := h.store.GetRoom(ctx, *user.RoomID)
		if err != nil && !notFound(err) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room"})
			return
		}
		resp.Room = room
	}

	c.JSON(http.StatusOK, resp)
}
