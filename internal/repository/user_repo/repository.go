package user_repo

import (
	"context"
	"errors"
	"time"

	"spinx_backend/internal/model"
	"spinx_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colResetToken   = "reset_token"
	colResetExpires = "reset_expires"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colUsername, colEmail, colPasswordHash, colBalance).
		Values(user.Username, user.Email, user.Password, int64(user.Balance)).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByUsername - возвращает модель пользователя по его имени
func (r *repo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colUsername: username})
}

// GetUserByEmail - возвращает модель пользователя по email
func (r *repo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUserWhere(ctx, sq.Eq{colEmail: email})
}

func (r *repo) getUserWhere(ctx context.Context, where sq.Eq) (*model.User, error) {
	// Формируем запрос
	query := psql.Select(colID, colUsername, colEmail, colPasswordHash, colBalance).
		From(table).
		Where(where)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	user.Balance = int(balance)
	return &user, nil
}

// ExistsByUsernameOrEmail - проверяет, занято ли имя или email
func (r *repo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	// Формируем запрос
	query := psql.Select(colID).
		From(table).
		Where(sq.Or{sq.Eq{colUsername: username}, sq.Eq{colEmail: email}}).
		Limit(1)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetBalance - получение баланса пользователя по имени
func (r *repo) GetBalance(ctx context.Context, username string) (int, error) {
	// Формируем запрос
	query := psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colUsername: username})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}

	return int(balance), nil
}

// UpdateBalance - обновляет баланс пользователя.
// Принимает имя пользователя и новую сумму баланса
func (r *repo) UpdateBalance(ctx context.Context, username string, amount int) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colBalance, int64(amount)).
		Where(sq.Eq{colUsername: username})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// SetResetToken - записывает токен сброса пароля и срок его жизни
func (r *repo) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colResetToken, token).
		Set(colResetExpires, expires).
		Where(sq.Eq{colEmail: email})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetUserByResetToken - возвращает пользователя по непросроченному токену сброса
func (r *repo) GetUserByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	// Формируем запрос
	query := psql.Select(colID, colUsername, colEmail, colPasswordHash, colBalance).
		From(table).
		Where(sq.Eq{colResetToken: token}).
		Where(sq.Gt{colResetExpires: now})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	user.Balance = int(balance)
	return &user, nil
}

// UpdatePassword - меняет хэш пароля и очищает токен сброса
func (r *repo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	// Формируем запрос
	query := psql.Update(table).
		Set(colPasswordHash, passwordHash).
		Set(colResetToken, nil).
		Set(colResetExpires, nil).
		Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
