//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type UserFixture struct {
	Email     string
	Role      string
	SubType   string
	Accesses  int
	ExpiresAt time.Time
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateUser(t, db, UserFixture{Email: email, Role: role})
}

// CreateUser inserts a member; zero fields fall back to a SHARED subscription with
// ten accesses that expires in a year.
func CreateUser(t *testing.T, db DBLike, f UserFixture) uuid.UUID {
	t.Helper()

	if f.Role == "" {
		f.Role = "USER"
	}
	if f.SubType == "" {
		f.SubType = "SHARED"
	}
	if f.Accesses == 0 {
		f.Accesses = 10
	}
	if f.ExpiresAt.IsZero() {
		f.ExpiresAt = time.Now().AddDate(1, 0, 0)
	}

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, sub_type, remaining_accesses, expires_at)
		VALUES ($1, $2, $3, 'Test', 'User', $4, $5, $6, $7)
		ON CONFLICT (email) DO NOTHING`,
		userID, f.Email, PasswordHash, f.Role, f.SubType, f.Accesses, f.ExpiresAt)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", f.Email).Scan(&userID)
	}

	return userID
}

func RemainingAccesses(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT remaining_accesses FROM users WHERE id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// PeopleCount returns -1 when the slot row does not exist.
func PeopleCount(t *testing.T, db DBLike, startsAt time.Time) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT people_count FROM slots WHERE starts_at = $1), -1)", startsAt).Scan(&n)
	require.NoError(t, err)
	return n
}

// EventCount counts audit events, optionally only those of the given types.
func EventCount(t *testing.T, db DBLike, types ...string) int {
	t.Helper()

	query, args := "SELECT count(*) FROM events", []any{}
	if len(types) > 0 {
		query, args = query+" WHERE type = ANY($1)", []any{types}
	}

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
