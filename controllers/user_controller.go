package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/services"
)

type UserController struct {
	Users  *services.UserService
	logger *zap.Logger
}

func NewUserController(users *services.UserService, logger *zap.Logger) *UserController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserController{Users: users, logger: logger}
}

func (uc *UserController) Create(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := uc.Users.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (uc *UserController) Get(c *gin.Context) {
	u, err := uc.Users.GetUser(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
