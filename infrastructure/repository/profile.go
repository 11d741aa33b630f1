package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yhaox11/SaaSBuilder/infrastructure/database/postgres"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
)

const (
	profilesTable = "profiles p"
)

type ProfileRepository interface {
	GetByEmail(email string) (*domain.Profile, error)
	GetByID(id string) (*domain.Profile, error)
	Create(profile *domain.Profile) (*domain.Profile, error)
	ListByTenant(tenantID string) ([]*domain.Profile, error)
	CountByTenant(tenantID string) (int, error)
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) GetByEmail(email string) (*domain.Profile, error) {
	if r.conn == nil {
		return nil, nil
	}

	query, args, err := profileSelect().
		Where(squirrel.Eq{"p.email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanProfile(r.conn.QueryRow(query, args...))
}

func (r *profileRepository) GetByID(id string) (*domain.Profile, error) {
	if r.conn == nil {
		return nil, nil
	}

	query, args, err := profileSelect().
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanProfile(r.conn.QueryRow(query, args...))
}

func (r *profileRepository) Create(profile *domain.Profile) (*domain.Profile, error) {
	if r.conn == nil {
		return nil, fmt.Errorf("banco de dados não configurado")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("profiles").
		Columns("id", "tenant_id", "full_name", "email", "role", "status", "avatar_url", "password_hash").
		Values(
			profile.ID,
			profile.TenantID,
			profile.Name,
			profile.Email,
			profile.Role,
			profile.Status,
			profile.AvatarURL,
			profile.PasswordHash,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&profile.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir perfil: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) ListByTenant(tenantID string) ([]*domain.Profile, error) {
	if r.conn == nil {
		return []*domain.Profile{}, nil
	}

	query, args, err := profileSelect().
		Where(squirrel.Eq{"p.tenant_id": tenantID}).
		OrderBy("p.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := r.scanProfileRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) CountByTenant(tenantID string) (int, error) {
	if r.conn == nil {
		return 0, nil
	}

	query, args, err := squirrel.
		Select("COUNT(*)").
		From(profilesTable).
		Where(squirrel.Eq{"p.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar perfis: %w", err)
	}

	return count, nil
}

func profileSelect() squirrel.SelectBuilder {
	return squirrel.
		Select("p.id, p.tenant_id, p.full_name, p.email, p.role, p.status, p.last_active, p.avatar_url, p.password_hash, p.created_at").
		From(profilesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *profileRepository) scanProfile(row *sql.Row) (*domain.Profile, error) {
	profile, err := scanProfileColumns(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) scanProfileRows(rows *sql.Rows) (*domain.Profile, error) {
	return scanProfileColumns(rows.Scan)
}

func scanProfileColumns(scan func(dest ...any) error) (*domain.Profile, error) {
	var (
		profile    domain.Profile
		lastActive sql.NullTime
		avatarURL  sql.NullString
	)

	err := scan(
		&profile.ID,
		&profile.TenantID,
		&profile.Name,
		&profile.Email,
		&profile.Role,
		&profile.Status,
		&lastActive,
		&avatarURL,
		&profile.PasswordHash,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastActive.Valid {
		profile.LastActive = lastActive.Time
	}
	if avatarURL.Valid {
		profile.AvatarURL = &avatarURL.String
	}

	return &profile, nil
}
