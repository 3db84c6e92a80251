package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mindpulse-backend/internal/http/response"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{log: log.With("handler", "UserHandler"), userService: userService}
}

// GET /api/user/:id
func (uh *UserHandler) GetUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	u, err := uh.userService.GetByID(c.Request.Context(), id)
	if isNotFound(err) {
		response.Message(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		uh.log.Error("Failed to load user", "error", err)
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.RespondOK(c, u)
}
