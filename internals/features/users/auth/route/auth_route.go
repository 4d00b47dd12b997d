// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/middlewares"
	authmw "kampusku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	a := api.Group("/auth")
	a.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	a.Post("/refresh", ctrl.Refresh)
	a.Post("/logout", authmw.AuthJWT(authmw.AuthJWTOpts{Secret: configs.JWTSecret}), ctrl.Logout)
}
