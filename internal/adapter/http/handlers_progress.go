package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hydration/internal/app"
	"hydration/internal/domain"
)

func (s *Server) handleDailyProgress(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	day := c.Query("date")
	if day == "" {
		day = domain.LocalDay(time.Now())
	} else if _, err := time.ParseInLocation("2006-01-02", day, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted 2006-01-02"})
		return
	}

	progress, err := s.progress.Daily(c.Request.Context(), id, day)
	if errors.Is(err, app.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (s *Server) handleHistory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	items, err := s.progress.History(c.Request.Context(), id)
	if errors.Is(err, app.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}
