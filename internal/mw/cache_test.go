package mw

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func setupCacheRouter() (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)

	var hits int
	r := gin.New()
	r.Use(Cache(cache.New(time.Minute, time.Minute), time.Minute))
	r.GET("/rooms", func(c *gin.Context) {
		hits++
		c.String(http.StatusOK, "serving "+strconv.Itoa(hits))
	})
	return r, &hits
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/rooms", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCacheServesRepeatedGets(t *testing.T) {
	router, hits := setupCacheRouter()

	first := get(router, "")
	second := get(router, "")

	assert.Equal(t, 1, *hits)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

// Requests carrying credentials must bypass the cache in both directions: a
// cached anonymous response is never replayed to an authenticated caller,
// and an authenticated response is never stored for anonymous callers.
func TestCacheBypassesAuthenticatedRequests(t *testing.T) {
	router, hits := setupCacheRouter()

	get(router, "")
	assert.Equal(t, 1, *hits)

	authed := get(router, "session-token")
	assert.Equal(t, 2, *hits)
	assert.Equal(t, "serving 2", authed.Body.String())

	// A second authenticated request hits the handler again.
	get(router, "session-token")
	assert.Equal(t, 3, *hits)

	// The anonymous entry is still the original response.
	anon := get(router, "")
	assert.Equal(t, 3, *hits)
	assert.Equal(t, "serving 1", anon.Body.String())
}
