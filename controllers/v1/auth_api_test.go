package apiv1

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"hr-crm-backend/config"
)

func authRoutes(t *testing.T) map[string]bool {
	t.Helper()
	config.Conf = new(config.Configuration)
	config.Conf.Auth.JWTSecret = "route-test-secret"
	app := fiber.New()
	InitAuthApiRouters(app)
	routes := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestAuthRoutes(t *testing.T) {
	routes := authRoutes(t)

	t.Run(`account removal lives under delete-account`, func(t *testing.T) {
		require.True(t, routes["DELETE /auth/delete-account"])
		require.False(t, routes["DELETE /auth/account"])
	})

	t.Run(`the public and protected endpoints are registered`, func(t *testing.T) {
		require.True(t, routes["POST /auth/register"])
		require.True(t, routes["POST /auth/login"])
		require.True(t, routes["POST /auth/refresh-token"])
		require.True(t, routes["GET /auth/me"])
		require.True(t, routes["PUT /auth/change-password"])
	})
}
