package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/mw"
)

// ListHostels handles GET /api/hostels, the student-facing hostel search.
func (h *Handler) ListHostels(c *gin.Context) {
	hostels, err := h.store.ListHostels(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostels"})
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// GetHostel handles GET /api/hostels/:hostel_id.
func (h *Handler) GetHostel(c *gin.Context) {
	hostel, err := h.store.GetHostel(c.Request.Context(), c.Param("hostel_id"))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "hostel not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// ListHostelRooms handles GET /api/hostels/:hostel_id/rooms.
func (h *Handler) ListHostelRooms(c *gin.Context) {
	rooms, err := h.store.ListRoomsByHostel(c.Request.Context(), c.Param("hostel_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type hostelRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Gender        string `json:"gender" binding:"required,oneof=Male Female Co-ed"`
	OccupantType  string `json:"occupanttype" binding:"required"`
	MessAvailable bool   `json:"mess_available"`
}

// CreateHostel handles POST /api/hostels. A warden manages at most one
// hostel; the unique index on wardenid rejects a second.
func (h *Handler) CreateHostel(c *gin.Context) {
	var req hostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hostel := model.Hostel{
		HostelID:      uuid.NewString(),
		WardenID:      mw.AccountID(c),
		Name:          req.Name,
		Address:       req.Address,
		Gender:        req.Gender,
		OccupantType:  req.OccupantType,
		MessAvailable: req.MessAvailable,
	}
	if err := h.store.CreateHostel(c.Request.Context(), &hostel); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "you already manage a hostel"})
		return
	}
	c.JSON(http.StatusCreated, hostel)
}

// UpdateHostel handles PUT /api/hostels/:hostel_id. Only the managing warden
// may edit.
func (h *Handler) UpdateHostel(c *gin.Context) {
	var req hostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hostel, err := h.store.GetHostel(c.Request.Context(), c.Param("hostel_id"))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "hostel not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
		return
	}
	if hostel.WardenID != mw.AccountID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your hostel"})
		return
	}

	hostel.Name = req.Name
	hostel.Address = req.Address
	hostel.Gender = req.Gender
	hostel.OccupantType = req.OccupantType
	hostel.MessAvailable = req.MessAvailable

	if err := h.store.SaveHostel(c.Request.Context(), hostel); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hostel"})
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// GetMyHostel handles GET /api/wardens/me/hostel.
func (h *Handler) GetMyHostel(c *gin.Context) {
	hostel, err := h.store.GetHostelByWarden(c.Request.Context(), mw.AccountID(c))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "you have not registered a hostel yet"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
		return
	}
	c.JSON(http.StatusOK, hostel)
}
