package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"

	"github.com/aquasense/water-quality-api/internal/core/domain"
)

func TestUserRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Alice", "alice@example.org", "12 River Rd", "555-0101", "hashed", "Leeds Uni", "researcher").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Alice",
		Email:        "alice@example.org",
		Address:      "12 River Rd",
		Telephone:    "555-0101",
		PasswordHash: "hashed",
		Organization: "Leeds Uni",
		Role:         domain.RoleResearcher,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", created.CreatedAt, now)
	}
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Bob", "alice@example.org", "addr", "tel", "hash", "", "community").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &domain.User{
		Name: "Bob", Email: "alice@example.org", Address: "addr", Telephone: "tel",
		PasswordHash: "hash", Role: domain.RoleCommunity,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	now := time.Now().UTC()
	org := "Water Board"
	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("gov@example.org").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "address", "telephone",
			"password_hash", "organization", "role", "created_at"}).
			AddRow(int64(3), "Gwen", "gov@example.org", "addr", "tel", "hash", &org, "government", now))

	user, err := repo.FindByEmail(context.Background(), "gov@example.org")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user.Role != domain.RoleGovernment {
		t.Errorf("Role = %q, want government", user.Role)
	}
	if user.Organization != "Water Board" {
		t.Errorf("Organization = %q", user.Organization)
	}
}

func TestUserRepositoryFindByEmailNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \$1`).
		WithArgs("missing@example.org").
		WillReturnError(pgx.ErrNoRows)

	if _, err := repo.FindByEmail(context.Background(), "missing@example.org"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepositoryFindByIDUnknownRole(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "address", "telephone",
			"password_hash", "organization", "role", "created_at"}).
			AddRow(int64(9), "X", "x@example.org", "a", "t", "h", nil, "superuser", now))

	user, err := repo.FindByID(context.Background(), 9)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user.Role != domain.RoleCommunity {
		t.Errorf("unknown stored role should degrade to community, got %q", user.Role)
	}
	if user.Organization != "" {
		t.Errorf("NULL organization should scan to empty, got %q", user.Organization)
	}
}

func TestUserRepositoryRoleStatistics(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT role,`).
		WillReturnRows(pgxmock.NewRows([]string{"role", "count", "avg_days"}).
			AddRow("admin", int64(1), 120.5).
			AddRow("community", int64(8), 14.2))

	stats, err := repo.RoleStatistics(context.Background())
	if err != nil {
		t.Fatalf("RoleStatistics: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len = %d, want 2", len(stats))
	}
	if stats[0].Role != "admin" || stats[0].UserCount != 1 {
		t.Errorf("first row = %+v", stats[0])
	}
	if stats[1].AvgDaysSinceJoin != 14.2 {
		t.Errorf("AvgDaysSinceJoin = %v, want 14.2", stats[1].AvgDaysSinceJoin)
	}
}
