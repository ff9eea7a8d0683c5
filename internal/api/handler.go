package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/application"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/auth"
	"github.com/Ivin-Mathew/DBMS-HostelManagement/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	workflow *application.Workflow
	auth     *auth.Manager
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, wf *application.Workflow, am *auth.Manager) *Handler {
	return &Handler{
		store:    s,
		workflow: wf,
		auth:     am,
	}
}

// writeResult maps a workflow result onto an HTTP response. The body always
// carries {success, kind, message}; the status code reflects the kind.
func writeResult(c *gin.Context, res application.Result) {
	c.JSON(statusFor(res.Kind), res)
}

func statusFor(kind application.Kind) int {
	switch kind {
	case application.KindOK:
		return http.StatusOK
	case application.KindNotAuthenticated:
		return http.StatusUnauthorized
	case application.KindAlreadyAssigned, application.KindNoVacancy:
		return http.StatusConflict
	case application.KindRoomNotFound, application.KindOccupantNotFound:
		return http.StatusNotFound
	case application.KindProfileIncomplete:
		return http.StatusUnprocessableEntity
	case application.KindGenderMismatch:
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}

// notFound reports whether err is the store's no-rows case.
func notFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
