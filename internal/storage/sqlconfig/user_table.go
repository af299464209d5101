package sqlconfig

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec Executor
}

// NewUsersTable creates a UsersTable over the given executor.
func NewUsersTable(exec Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

const userColumns = "id, name, email, password_hash, role, created_at"

// FindByID retrieves a user by primary key. Returns nil when no row matches.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := t.exec.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// FindByEmail retrieves a user by unique email. Returns nil when no row matches.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := t.exec.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

// Insert creates a new user and returns its generated ID. A unique-violation
// on email maps to ErrDuplicateEmail.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		create.Name, create.Email, create.PasswordHash, string(create.Role),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, ErrDuplicateEmail
		}
		return uuid.Nil, err
	}
	return id, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.Role = Role(role)
	return &u, nil
}
