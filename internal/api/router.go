package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/config"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/application"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/auth"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/mw"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, s store.Store, am *auth.Manager) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, application.NewWorkflow(s), am)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	studentAuth := mw.RequireAuth(am, auth.RoleStudent)
	wardenAuth := mw.RequireAuth(am, auth.RoleWarden)
	anyAuth := mw.RequireAuth(am, "")

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/students/signup", handler.StudentSignUp)
			authGroup.POST("/students/signin", handler.StudentSignIn)
			authGroup.POST("/wardens/signup", handler.WardenSignUp)
			authGroup.POST("/wardens/signin", handler.WardenSignIn)
			authGroup.POST("/signout", anyAuth, handler.SignOut)
		}

		// Public, cacheable reads
		api.GET("/hostels", caching, handler.ListHostels)
		api.GET("/hostels/:hostel_id", caching, handler.GetHostel)
		api.GET("/hostels/:hostel_id/rooms", caching, handler.ListHostelRooms)

		// Student routes
		api.POST("/hostels/:hostel_id/rooms/:room_id/apply", studentAuth, handler.ApplyToRoom)
		api.GET("/students/me", studentAuth, handler.GetMyProfile)

		// Warden routes
		api.POST("/hostels", wardenAuth, handler.CreateHostel)
		api.PUT("/hostels/:hostel_id", wardenAuth, handler.UpdateHostel)
		api.POST("/hostels/:hostel_id/rooms", wardenAuth, handler.CreateRoom)
		api.PUT("/rooms/:room_id", wardenAuth, handler.UpdateRoom)
		api.DELETE("/rooms/:room_id", wardenAuth, handler.DeleteRoom)
		api.GET("/wardens/me/hostel", wardenAuth, handler.GetMyHostel)
		api.GET("/wardens/me/inmates", wardenAuth, handler.ListInmates)
		api.DELETE("/wardens/me/inmates/:user_id", wardenAuth, handler.RemoveInmate)
	}

	return r
}
