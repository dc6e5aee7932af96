package handlers

import (
	"log"
	"net/http"
	"strconv"

	"hr-backend/internal/api/middleware"
	"hr-backend/internal/services"
	"hr-backend/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserHandler holds dependencies for user and authentication operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// Register godoc
//	@Summary		Register a new account
//	@Description	Creates a candidate account and returns a token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.RegisterRequest		true	"Registration details"
//	@Success		201		{object}	dto.TokenPairResponse	"Account created"
//	@Failure		400		{object}	map[string]string		"Bad Request"
//	@Failure		409		{object}	map[string]string		"Email already registered"
//	@Router			/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, accessToken, refreshToken, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         MapUserModelToUserResponse(user),
	})
}

// Login godoc
//	@Summary		Log in
//	@Description	Authenticates a user and returns a token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest		true	"Login credentials"
//	@Success		200			{object}	dto.TokenPairResponse	"Authenticated"
//	@Failure		400			{object}	map[string]string		"Bad Request"
//	@Failure		401			{object}	map[string]string		"Invalid credentials"
//	@Router			/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         MapUserModelToUserResponse(user),
	})
}

// Refresh godoc
//	@Summary		Refresh tokens
//	@Description	Exchanges a refresh token for a new token pair. The old refresh token is revoked.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	map[string]string	"New token pair"
//	@Failure		401		{object}	map[string]string	"Invalid or expired refresh token"
//	@Router			/auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	accessToken, refreshToken, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Logout godoc
//	@Summary		Log out
//	@Description	Revokes the presented refresh token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.LogoutRequest	true	"Refresh token to revoke"
//	@Success		200		{object}	map[string]string	"Logged out"
//	@Router			/auth/logout [post]
//	@Security		BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// UpdatePassword godoc
//	@Summary		Change password
//	@Description	Changes the authenticated user's password.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			passwords	body		dto.UpdatePasswordRequest	true	"Current and new password"
//	@Success		200			{object}	map[string]string			"Password updated"
//	@Failure		401			{object}	map[string]string			"Wrong current password"
//	@Router			/auth/password [put]
//	@Security		BearerAuth
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// Me godoc
//	@Summary		Current user
//	@Description	Returns the authenticated user's profile.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	dto.UserResponse	"Current user"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Router			/users/me [get]
//	@Security		BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.GetUserByIdRequest{ID: userID}
	user, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// GetUsers godoc
//	@Summary		List users
//	@Description	Retrieves registered users. Admin and HR only.
//	@Tags			users
//	@Produce		json
//	@Param			limit	query		int					false	"Page size"		default(20)
//	@Param			offset	query		int					false	"Page offset"	default(0)
//	@Success		200		{array}		dto.UserResponse	"Users"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/users [get]
//	@Security		BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.service.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("Error fetching users: %v", err)
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, MapUserModelToUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// GetUserByID godoc
//	@Summary		Get a user by ID
//	@Description	Retrieves details for a specific user.
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string				true	"User ID"	Format(uuid)
//	@Success		200	{object}	dto.UserResponse	"User"
//	@Failure		404	{object}	map[string]string	"User Not Found"
//	@Router			/users/{id} [get]
//	@Security		BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	req := dto.GetUserByIdRequest{ID: id}
	user, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// CreateUser godoc
//	@Summary		Create a user
//	@Description	Creates a user account with an explicit role. Admin only.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.CreateUserRequest	true	"User to create"
//	@Success		201		{object}	dto.UserResponse		"User created"
//	@Failure		409		{object}	map[string]string		"Email already registered"
//	@Router			/users [post]
//	@Security		BearerAuth
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapUserModelToUserResponse(user))
}

// UpdateUser godoc
//	@Summary		Update a user
//	@Description	Updates profile fields or role of an existing user.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User ID"	Format(uuid)
//	@Param			user	body		dto.UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	dto.UserResponse		"Updated user"
//	@Failure		404		{object}	map[string]string		"User Not Found"
//	@Router			/users/{id} [put]
//	@Security		BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}

// DeleteUser godoc
//	@Summary		Delete a user
//	@Description	Removes a user account. Admin only.
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string				true	"User ID"	Format(uuid)
//	@Success		204	"User deleted"
//	@Failure		404	{object}	map[string]string	"User Not Found"
//	@Router			/users/{id} [delete]
//	@Security		BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	req := dto.DeleteUserRequest{ID: id}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
