package adapthttp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hydration/internal/app"
)

type recordIntakeRequest struct {
	AmountML int64 `json:"amount_ml" binding:"required,gt=0"`
}

func (s *Server) handleRecordIntake(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req recordIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	event, err := s.intake.Record(c.Request.Context(), id, req.AmountML)
	if errors.Is(err, app.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	var verr *app.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}
