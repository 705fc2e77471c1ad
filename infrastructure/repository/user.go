// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password_hash", "active", "role_id", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}
