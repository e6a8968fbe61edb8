package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aquasense/water-quality-api/internal/core/domain"
	"github.com/aquasense/water-quality-api/internal/core/ports"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// UserRepository persists user accounts in the users table.
type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, address, telephone, password_hash, organization, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.Address, user.Telephone, user.PasswordHash, user.Organization, string(user.Role),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx,
		`SELECT id, name, email, address, telephone, password_hash, organization, role, created_at
		 FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx,
		`SELECT id, name, email, address, telephone, password_hash, organization, role, created_at
		 FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var (
		u            domain.User
		organization *string
		role         string
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address, &u.Telephone, &u.PasswordHash, &organization, &role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if organization != nil {
		u.Organization = *organization
	}
	// Stored role strings outside the closed set degrade to community.
	u.Role, _ = domain.ParseRole(role)
	return &u, nil
}

// RoleStatistics returns user count and average account age in days per role.
func (r *UserRepository) RoleStatistics(ctx context.Context) ([]ports.RoleUserStats, error) {
	rows, err := r.db.Query(ctx,
		`SELECT role,
		        COUNT(*),
		        COALESCE(AVG(EXTRACT(EPOCH FROM (NOW() - created_at)) / 86400), 0)
		 FROM users
		 GROUP BY role
		 ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("query role statistics: %w", err)
	}
	defer rows.Close()

	var stats []ports.RoleUserStats
	for rows.Next() {
		var s ports.RoleUserStats
		if err := rows.Scan(&s.Role, &s.UserCount, &s.AvgDaysSinceJoin); err != nil {
			return nil, fmt.Errorf("scan role statistics: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role statistics: %w", err)
	}
	return stats, nil
}
