//go:build unit

package user_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds a member", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", "Mario", "Rossi", user.RoleUser, user.SubTypeShared, 10, b.ExpiresAt)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Mario Rossi", actual.FullName())
		assert.Equal(t, user.SubTypeShared, actual.SubType())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "USER",
				mutate: func(b *builder.UserBuilder) { b.WithRole("USER") },
			},
			{
				name:   "ADMIN",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "lowercase accepted",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("subscription type", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "SINGLE",
				mutate: func(b *builder.UserBuilder) { b.AsSingle() },
			},
			{
				name:   "unknown type",
				mutate: func(b *builder.UserBuilder) { b.WithSubType("FAMILY") },
				errIs:  user.ErrInvalidSubType,
			},
		})
	})
}

func TestUser_CanBook(t *testing.T) {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		accesses int
		expires  time.Time
		errIs    error
	}{
		{name: "active subscription", accesses: 3, expires: now.Add(24 * time.Hour)},
		{name: "no accesses left", accesses: 0, expires: now.Add(24 * time.Hour), errIs: user.ErrNoAccessesLeft},
		{name: "negative balance", accesses: -1, expires: now.Add(24 * time.Hour), errIs: user.ErrNoAccessesLeft},
		{name: "expired", accesses: 3, expires: now.Add(-time.Minute), errIs: user.ErrSubscriptionExpired},
		{name: "expires right now", accesses: 3, expires: now, errIs: user.ErrSubscriptionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().WithAccesses(tt.accesses).WithExpiresAt(tt.expires).BuildDomain()
			require.NoError(t, err)

			err = u.CanBook(now)
			if tt.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
