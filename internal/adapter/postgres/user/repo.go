// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{
	"id", "username", "email", "role", "is_superuser",
	"bio", "first_name", "last_name", "last_login_at", "created_at", "updated_at",
}

type row struct {
	ID          uuid.UUID  `db:"id"`
	Username    string     `db:"username"`
	Email       string     `db:"email"`
	Role        string     `db:"role"`
	IsSuperuser bool       `db:"is_superuser"`
	Bio         string     `db:"bio"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	LastLoginAt *time.Time `db:"last_login_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		Role:        domain.UserRole(r.Role),
		IsSuperuser: r.IsSuperuser,
		Bio:         r.Bio,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		LastLoginAt: r.LastLoginAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := got.toDomain()
	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, username)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, email)
}

// List returns a page of users ordered by username. A non-empty search keeps
// only the user with exactly that username.
func (r *Repo) List(ctx context.Context, search string, page domain.PageRequest) (domain.Page[domain.User], error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if search != "" {
		where = append(where, sq.Eq{"username": search})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("users").Where(where).ToSql()
	if err != nil {
		return domain.Page[domain.User]{}, postgres.MapError(err, "user", "list")
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.User]{}, postgres.MapError(err, "user", "list")
	}

	query, args, err := postgres.Builder.
		Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("username").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[domain.User]{}, postgres.MapError(err, "user", "list")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.User]{}, postgres.MapError(err, "user", "list")
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return domain.Page[domain.User]{}, postgres.MapError(err, "user", "list")
	}

	items := make([]domain.User, len(collected))
	for i, c := range collected {
		items[i] = c.toDomain()
	}
	return domain.Page[domain.User]{Items: items, Total: total}, nil
}

// Create inserts a new user and returns the persisted row.
// A taken username or email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = domain.UserRoleUser
	}

	query, args, err := postgres.Builder.
		Insert("users").
		Columns("id", "username", "email", "role", "is_superuser", "bio", "first_name", "last_name").
		Values(u.ID, u.Username, u.Email, string(u.Role), u.IsSuperuser, u.Bio, u.FirstName, u.LastName).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created := got.toDomain()
	return &created, nil
}

// Update applies a partial update and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	set := map[string]any{"updated_at": sq.Expr("now()")}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Role != nil {
		set["role"] = string(*upd.Role)
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}

	query, args, err := postgres.Builder.
		Update("users").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := got.toDomain()
	return &u, nil
}

// SetSuperuser toggles the superuser flag.
func (r *Repo) SetSuperuser(ctx context.Context, id uuid.UUID, superuser bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE users SET is_superuser = $2, updated_at = now() WHERE id = $1`, id, superuser)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// TouchLastLogin records a login at the given time and returns the updated row.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`UPDATE users SET last_login_at = $2 WHERE id = $1 RETURNING `+joinColumns(),
		id, at,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := got.toDomain()
	return &u, nil
}

// Delete removes a user together with their reviews and comments.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// ReviewedTitleIDs returns the titles the user has reviewed.
func (r *Repo) ReviewedTitleIDs(ctx context.Context, id uuid.UUID) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT DISTINCT title_id FROM reviews WHERE author_id = $1 ORDER BY title_id`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return ids, nil
}

func joinColumns() string {
	return strings.Join(userColumns, ", ")
}
