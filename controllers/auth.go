// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"barberpro-backend/config"
	"barberpro-backend/models"
	"barberpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	RoleOwner  = "owner"
	RoleBarber = "barber"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be email or phone
	Password   string `json:"password" binding:"required"`
}

// Register creates a staff account. With no staff yet it bootstraps the owner
// and needs no token; afterwards only an authenticated owner may add barbers.
func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staffCount int64
	if err := config.DB.Model(&models.User{}).Count(&staffCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	role := RoleOwner
	if staffCount > 0 {
		if caller, _ := c.Get("role"); caller != RoleOwner {
			utils.RespondWithError(c, http.StatusForbidden, "Registration is closed; ask the shop owner for an account")
			return
		}
		role = RoleBarber
	}

	var existingUser models.User
	err := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	newUser := models.User{
		Email:    input.Email,
		Phone:    input.Phone,
		Name:     input.Name,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     role,
		IsActive: true,
	}
	if err := config.DB.Create(&newUser).Error; err != nil {
		status, msg := createUserFailure(err, role)
		utils.RespondWithError(c, status, msg)
		return
	}

	// Owners adding a barber keep their own session.
	if staffCount > 0 {
		c.JSON(http.StatusCreated, gin.H{"user": newUser})
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	setTokenCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    newUser,
	})
}

// createUserFailure maps an insert error. A duplicate on the bootstrap path
// means a concurrent registration claimed the owner slot first.
func createUserFailure(err error, role string) (int, string) {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusInternalServerError, "Failed to create user"
	}
	if role == RoleOwner {
		return http.StatusConflict, "Owner already registered"
	}
	return http.StatusConflict, "Email or phone already registered"
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	result := config.DB.Where("email = ? OR phone = ?", identifier, identifier).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !user.IsActive || !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	setTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func setTokenCookie(c *gin.Context, token string) {
	expiryHours := 24
	c.SetCookie("token", token, expiryHours*3600, "/", "", true, true)
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetStaff lists active staff, the attendants appointments can be assigned to
func GetStaff(c *gin.Context) {
	var staff []models.User
	if err := config.DB.Where("is_active = ?", true).Order("name").Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}
