package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/quangdng/devlink/internal/application/usecase/auth"
)

type UserHandler struct {
	registerUseCase     *authUC.RegisterUseCase
	uploadAvatarUseCase *authUC.UploadAvatarUseCase
}

func NewUserHandler(registerUC *authUC.RegisterUseCase, avatarUC *authUC.UploadAvatarUseCase) *UserHandler {
	return &UserHandler{
		registerUseCase:     registerUC,
		uploadAvatarUseCase: avatarUC,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": output.AccessToken,
	})
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file cannot open"})
		return
	}
	defer file.Close()

	output, err := h.uploadAvatarUseCase.Execute(c.Request.Context(), authUC.UploadAvatarInput{
		UserID: userID,
		File:   file,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": output.AvatarURL})
}
