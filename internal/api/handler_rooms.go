package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/mw"
)

type roomRequest struct {
	MaxOccupants       int     `json:"maxoccupants" binding:"required,min=1,max=4"`
	RentPerPerson      float64 `json:"rentperperson" binding:"required"`
	RentDueDate        string  `json:"rentduedate" binding:"required"`
	AttachedBathroom   bool    `json:"attachedbathroom"`
	FurnitureAvailable bool    `json:"furnitureavailable"`
	ACAvailable        bool    `json:"acavailable"`
}

// CreateRoom handles POST /api/hostels/:hostel_id/rooms. Vacancies start
// equal to the room capacity.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.Parse(time.RFC3339, req.RentDueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rentduedate must be RFC3339"})
		return
	}

	hostelID := c.Param("hostel_id")
	if !h.wardenOwnsHostel(c, hostelID) {
		return
	}

	room := model.Room{
		RoomID:             uuid.NewString(),
		HostelID:           hostelID,
		MaxOccupants:       req.MaxOccupants,
		Vacancies:          req.MaxOccupants,
		RentPerPerson:      req.RentPerPerson,
		RentDueDate:        dueDate,
		AttachedBathroom:   req.AttachedBathroom,
		FurnitureAvailable: req.FurnitureAvailable,
		ACAvailable:        req.ACAvailable,
	}
	if err := h.store.CreateRoom(c.Request.Context(), &room); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/:room_id. Changing capacity adjusts
// vacancies by the same delta so current occupants stay accounted for.
func (h *Handler) UpdateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.Parse(time.RFC3339, req.RentDueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rentduedate must be RFC3339"})
		return
	}

	room, err := h.store.GetRoom(c.Request.Context(), c.Param("room_id"))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room"})
		return
	}
	if !h.wardenOwnsHostel(c, room.HostelID) {
		return
	}

	occupied := room.MaxOccupants - room.Vacancies
	if req.MaxOccupants < occupied {
		c.JSON(http.StatusConflict, gin.H{"error": "room capacity cannot drop below current occupancy"})
		return
	}

	room.MaxOccupants = req.MaxOccupants
	room.Vacancies = req.MaxOccupants - occupied
	room.RentPerPerson = req.RentPerPerson
	room.RentDueDate = dueDate
	room.AttachedBathroom = req.AttachedBathroom
	room.FurnitureAvailable = req.FurnitureAvailable
	room.ACAvailable = req.ACAvailable

	if err := h.store.SaveRoom(c.Request.Context(), room); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:room_id. Only empty rooms may go.
func (h *Handler) DeleteRoom(c *gin.Context) {
	room, err := h.store.GetRoom(c.Request.Context(), c.Param("room_id"))
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room"})
		return
	}
	if !h.wardenOwnsHostel(c, room.HostelID) {
		return
	}
	if room.Vacancies < room.MaxOccupants {
		c.JSON(http.StatusConflict, gin.H{"error": "room still has occupants"})
		return
	}

	if err := h.store.DeleteRoom(c.Request.Context(), room.RoomID); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}
	c.Status(http.StatusNoContent)
}

// wardenOwnsHostel verifies the caller manages the given hostel, writing the
// error response itself when not.
func (h *Handler) wardenOwnsHostel(c *gin.Context, hostelID string) bool {
	hostel, err := h.store.GetHostel(c.Request.Context(), hostelID)
	if notFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "hostel not found"})
		return false
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve hostel"})
		return false
	}
	if hostel.WardenID != mw.AccountID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your hostel"})
		return false
	}
	return true
}
