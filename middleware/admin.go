package middleware

import (
	"palpite/database"
	"palpite/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminMiddleware checks the is_admin flag against the database on every
// request. The flag is deliberately not read from the token so a revoked
// admin loses access without re-authentication.
func AdminMiddleware(c *fiber.Ctx) error {
	// Get user ID from context (set by the JWT middleware)
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_admin = true AND is_deleted = false",
		userID).First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}
		// Other DB error
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while checking permissions!",
			"data":    nil,
		})
	}

	// Admin confirmed, proceed
	return c.Next()
}
