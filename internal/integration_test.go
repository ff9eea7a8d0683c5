package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/config"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/api"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/auth"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/db"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/model"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/store"
)

// TestHostelLifecycle walks the whole product flow end to end: a warden
// registers a hostel and a room, a student finds it and applies, the warden
// sees and removes the occupant, and the bed becomes available again.
func TestHostelLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))

	cfg := &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	}
	sessions := auth.NewManager("integration-secret", time.Hour)
	router := api.NewRouter(cfg, store.NewGormStore(testDB), sessions)

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		t.Helper()
		var reader *bytes.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(nil)
		}
		req, err := http.NewRequest(method, path, reader)
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(t *testing.T, w *httptest.ResponseRecorder, out any) {
		t.Helper()
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}

	// --- Warden onboarding ---

	w := do("POST", "/api/auth/wardens/signup", "", gin.H{
		"email": "warden@example.com", "password": "longenough",
		"name": "Asha", "gender": "Female", "contact": "111",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var wardenSession struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	decode(t, w, &wardenSession)
	require.NotEmpty(t, wardenSession.Token)

	w = do("POST", "/api/hostels", wardenSession.Token, gin.H{
		"name": "North Wing", "address": "Campus Rd",
		"gender": "Female", "occupanttype": "Students", "mess_available": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var hostel model.Hostel
	decode(t, w, &hostel)

	// One hostel per warden.
	w = do("POST", "/api/hostels", wardenSession.Token, gin.H{
		"name": "Second", "address": "Elsewhere", "gender": "Male", "occupanttype": "Students",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do("POST", fmt.Sprintf("/api/hostels/%s/rooms", hostel.HostelID), wardenSession.Token, gin.H{
		"maxoccupants": 1, "rentperperson": 4500.0,
		"rentduedate": "2026-01-05T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var room model.Room
	decode(t, w, &room)
	assert.Equal(t, 1, room.Vacancies)

	// --- Student applies ---

	w = do("POST", "/api/auth/students/signup", "", gin.H{
		"email": "meera@example.com", "password": "longenough",
		"name": "Meera", "gender": "Female",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var studentSession struct {
		Token string `json:"token"`
	}
	decode(t, w, &studentSession)

	w = do("GET", "/api/hostels", studentSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var hostels []model.Hostel
	decode(t, w, &hostels)
	require.Len(t, hostels, 1)

	// A male student is refused by the Female hostel while the bed is still
	// free; with the room full the vacancy check would answer first.
	w = do("POST", "/api/auth/students/signup", "", gin.H{
		"email": "rahul@example.com", "password": "longenough",
		"name": "Rahul", "gender": "Male",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var otherSession struct {
		Token string `json:"token"`
	}
	decode(t, w, &otherSession)

	applyPath := fmt.Sprintf("/api/hostels/%s/rooms/%s/apply", hostel.HostelID, room.RoomID)
	var applied struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	w = do("POST", applyPath, otherSession.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	decode(t, w, &applied)
	assert.False(t, applied.Success)
	assert.Contains(t, applied.Message, "Female")

	w = do("POST", applyPath, studentSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &applied)
	assert.True(t, applied.Success)
	assert.Equal(t, "Successfully joined the hostel room!", applied.Message)

	// A second apply from the same student must refuse, not double-insert.
	w = do("POST", applyPath, studentSession.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	decode(t, w, &applied)
	assert.False(t, applied.Success)
	assert.Equal(t, "You are already assigned to a hostel.", applied.Message)

	// Now that the room is full, the vacancy check answers before the
	// gender check.
	w = do("POST", applyPath, otherSession.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	decode(t, w, &applied)
	assert.Equal(t, "No vacancies available in this room.", applied.Message)

	// The student home view shows the assignment.
	w = do("GET", "/api/students/me", studentSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		User   model.User    `json:"user"`
		Hostel *model.Hostel `json:"hostel"`
		Room   *model.Room   `json:"room"`
	}
	decode(t, w, &profile)
	require.NotNil(t, profile.Hostel)
	require.NotNil(t, profile.Room)
	assert.Equal(t, hostel.HostelID, profile.Hostel.HostelID)
	assert.Equal(t, 0, profile.Room.Vacancies)

	// --- Warden reviews and removes ---

	w = do("GET", "/api/wardens/me/inmates", wardenSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var inmates []store.Inmate
	decode(t, w, &inmates)
	require.Len(t, inmates, 1)
	assert.Equal(t, "Meera", inmates[0].Name)
	assert.Equal(t, room.RoomID, inmates[0].RoomID)

	w = do("DELETE", "/api/wardens/me/inmates/"+inmates[0].UserID, wardenSession.Token, gin.H{
		"roomid": room.RoomID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do("GET", "/api/wardens/me/inmates", wardenSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	inmates = nil
	decode(t, w, &inmates)
	assert.Empty(t, inmates)

	// The bed is free again.
	w = do("GET", fmt.Sprintf("/api/hostels/%s/rooms", hostel.HostelID), studentSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []model.Room
	decode(t, w, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, 1, rooms[0].Vacancies)

	w = do("POST", applyPath, studentSession.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &applied)
	assert.True(t, applied.Success)
}
