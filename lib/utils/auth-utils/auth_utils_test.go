package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-crm-backend/config"
	"hr-crm-backend/models"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "unit-test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func TestPasswordHashing(t *testing.T) {
	t.Run(`hash verifies only the original password`, func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		require.Nil(t, err)
		require.NotEqual(t, "correct horse battery staple", hash)
		require.True(t, CheckPassword(hash, "correct horse battery staple"))
		require.False(t, CheckPassword(hash, "correct horse battery"))
	})

	t.Run(`two hashes of one password differ`, func(t *testing.T) {
		first, err := HashPassword("s3cret-password")
		require.Nil(t, err)
		second, err := HashPassword("s3cret-password")
		require.Nil(t, err)
		require.NotEqual(t, first, second)
	})
}

func TestTokens(t *testing.T) {
	initTestConfig()

	t.Run(`access token carries identity claims`, func(t *testing.T) {
		token, err := GetToken("user-1", "hr@example.com", "Jane Doe", models.UserRoleHr)
		require.Nil(t, err)

		claims, err := ParseToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "hr@example.com", claims["email"])
		require.Equal(t, "Jane Doe", claims["name"])
		require.Equal(t, string(models.UserRoleHr), claims["role"])
	})

	t.Run(`refresh token carries the subject only`, func(t *testing.T) {
		token, err := GetRefreshToken("user-2")
		require.Nil(t, err)

		claims, err := ParseToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-2", claims["sub"])
		_, hasRole := claims["role"]
		require.False(t, hasRole)
	})

	t.Run(`tampered token is rejected`, func(t *testing.T) {
		token, err := GetToken("user-3", "a@example.com", "A", models.UserRoleApplicant)
		require.Nil(t, err)
		_, err = ParseToken(token + "x")
		require.NotNil(t, err)
	})
}
