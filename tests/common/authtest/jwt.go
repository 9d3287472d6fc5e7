//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg   config.JWTConfig
	clock clock.Clock
}

func NewJWTHelper(cfg config.JWTConfig, clk clock.Clock) *JWTHelper {
	return &JWTHelper{cfg: cfg, clock: clk}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, h.clock).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token that lapsed a minute before the helper's clock.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := clock.NewMockClock(h.clock.Now().Add(-time.Hour - time.Minute))
	token, err := jwt.NewService(h.cfg.Secret, time.Hour, issued).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
