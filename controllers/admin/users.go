package adminController

import (
	"log"
	"palpite/database"
	"palpite/middleware"
	"palpite/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListUsers returns all profiles ordered by full name. Blank names sort
// first: the store keeps '' rather than NULL for missing names.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("full_name asc").
		Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched!", users)
}

// SetAdmin flips a user's admin flag. The change takes effect on the
// target's next request because AdminMiddleware re-reads the row, so no
// re-authentication is needed.
func SetAdmin(c *fiber.Ctx) error {
	targetId, err := c.ParamsInt("id")
	if err != nil || targetId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedSetAdmin").(*struct {
		IsAdmin *bool `json:"isAdmin"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", targetId).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	user.IsAdmin = *reqData.IsAdmin
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating admin flag: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated!", user)
}
