// Package adapthttp is the driving HTTP adapter that routes requests to
// application services.
package adapthttp

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hydration/internal/app"
)

// Server is the driving HTTP adapter that exposes the API surface.
type Server struct {
	users    *app.UserService
	intake   *app.IntakeService
	progress *app.ProgressService
	log      *logrus.Logger
}

// New creates a Server wired to the given application services.
func New(us *app.UserService, is *app.IntakeService, ps *app.ProgressService, log *logrus.Logger) *Server {
	initValidator()
	return &Server{users: us, intake: is, progress: ps, log: log}
}

// Handler returns the root gin.Engine for the application. allowedOrigins
// configures CORS for browser clients; empty disables it.
func (s *Server) Handler(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	if len(allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/users", s.handleCreateUser)
	r.GET("/users", s.handleListUsers)
	r.GET("/users/:id", s.handleGetUser)
	r.GET("/users/name/:name", s.handleGetUserByName)

	r.POST("/users/:id/water_intake", s.handleRecordIntake)
	r.GET("/users/:id/daily_progress", s.handleDailyProgress)
	r.GET("/users/:id/history", s.handleHistory)

	return r
}
