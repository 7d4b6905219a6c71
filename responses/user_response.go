package responses

import "github.com/gofiber/fiber/v2"

// UserResponse is the JSON envelope every endpoint responds with.
type UserResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}
