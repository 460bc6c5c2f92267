package handler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"streamify/backend/internal/auth"
	"streamify/backend/internal/models"
	"streamify/backend/internal/store"
	"streamify/backend/pkg/jwt"
)

const sessionDuration = 7 * 24 * time.Hour

// ChatProvider mirrors users into the hosted chat/video vendor and mints the
// tokens the frontend SDK connects with.
type ChatProvider interface {
	Token(userID uint) (string, error)
	UpsertUser(ctx context.Context, user *models.User) error
}

// AuthHandler serves signup, login, logout, onboarding and profile reads.
type AuthHandler struct {
	Users     *store.UserStore
	Chat      ChatProvider
	JWTSecret string
	Log       *zap.Logger
}

// SignupInput defines the structure for user registration.
type SignupInput struct {
	FullName string `json:"fullName" binding:"required" example:"Maria Silva"`
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// OnboardingInput defines the profile form completed after signup.
type OnboardingInput struct {
	FullName         string `json:"fullName" binding:"required" example:"Maria Silva"`
	Bio              string `json:"bio" binding:"required"`
	NativeLanguage   string `json:"nativeLanguage" binding:"required" example:"portuguese"`
	LearningLanguage string `json:"learningLanguage" binding:"required" example:"japanese"`
	Location         string `json:"location" binding:"required" example:"Lisbon, Portugal"`
}

// Signup godoc
// @Summary      Register a new user
// @Description  Creates an account, mirrors it into the chat provider and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SignupInput true "Registration Info"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	user := models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		ProfilePic:   randomAvatar(),
	}
	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists, please use a different one"})
			return
		}
		h.Log.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	// Chat-side mirroring is best effort: a provider hiccup should not block
	// signup, the user is upserted again on onboarding.
	if err := h.Chat.UpsertUser(c.Request.Context(), &user); err != nil {
		h.Log.Warn("failed to upsert chat user", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	if err := h.issueSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": newUserResponse(user)})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates with email and password and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := h.issueSession(c, user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": newUserResponse(*user)})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful"})
}

// Onboarding godoc
// @Summary      Complete profile onboarding
// @Description  Fills in the language-exchange profile and marks the user as onboarded.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        input body OnboardingInput true "Profile Info"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/onboarding [post]
func (h *AuthHandler) Onboarding(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), viewerID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	user.FullName = input.FullName
	user.Bio = input.Bio
	user.NativeLanguage = input.NativeLanguage
	user.LearningLanguage = input.LearningLanguage
	user.Location = input.Location
	user.IsOnboarded = true

	if err := h.Users.Update(c.Request.Context(), user); err != nil {
		h.Log.Error("failed to update user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	if err := h.Chat.UpsertUser(c.Request.Context(), user); err != nil {
		h.Log.Warn("failed to upsert chat user", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": newUserResponse(*user)})
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	user, err := h.Users.FindByID(c.Request.Context(), viewerID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": newUserResponse(*user)})
}

func (h *AuthHandler) issueSession(c *gin.Context, userID uint) error {
	token, err := jwt.GenerateToken(userID, h.JWTSecret)
	if err != nil {
		return err
	}
	c.SetCookie(auth.CookieName, token, int(sessionDuration.Seconds()), "/", "", false, true)
	return nil
}

func randomAvatar() string {
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", rand.Intn(100)+1)
}
