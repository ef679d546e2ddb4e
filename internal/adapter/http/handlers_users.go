package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hydration/internal/app"
	"hydration/internal/domain"
)

type createUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	WeightKG float64 `json:"weight_kg" binding:"required,gt=0"`
}

// userResponse is the wire shape for a user, carrying the derived daily goal.
type userResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	WeightKG    float64   `json:"weight_kg"`
	CreatedAt   time.Time `json:"created_at"`
	DailyGoalML float64   `json:"daily_goal_ml"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		WeightKG:    u.WeightKG,
		CreatedAt:   u.CreatedAt,
		DailyGoalML: domain.DailyGoalML(u.WeightKG),
	}
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingError(err)})
		return
	}

	user, err := s.users.Create(c.Request.Context(), req.Name, req.WeightKG)
	var verr *app.ValidationError
	if errors.Is(err, app.ErrDuplicateName) || errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), id)
	if errors.Is(err, app.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) handleGetUserByName(c *gin.Context) {
	user, err := s.users.GetByName(c.Request.Context(), c.Param("name"))
	if errors.Is(err, app.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) handleListUsers(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)

	users, err := s.users.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}
