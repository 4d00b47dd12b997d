package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"kampusku_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware; origins can be overridden via
// CORS_ORIGINS (comma separated).
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS")
	if strings.TrimSpace(origins) == "" {
		origins = strings.Join([]string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5500",
		}, ", ")
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
