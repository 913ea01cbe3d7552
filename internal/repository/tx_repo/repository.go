package tx_repo

import (
	"context"

	"spinx_backend/internal/model"
	"spinx_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "transactions"
	colID        = "id"
	colUsername  = "username"
	colType      = "type"
	colAmount    = "amount"
	colTimestamp = "timestamp"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransactionRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.TransactionRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Create - добавляет строку в журнал транзакций
func (r *repo) Create(ctx context.Context, tx *model.Transaction) error {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colUsername, colType, colAmount, colTimestamp).
		Values(tx.Username, tx.Type, int64(tx.Amount), tx.Timestamp)

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

// ListByUsername - история транзакций пользователя, новые сверху
func (r *repo) ListByUsername(ctx context.Context, username string) ([]model.Transaction, error) {
	// Формируем запрос
	query := psql.Select(colID, colType, colAmount, colTimestamp).
		From(table).
		Where(sq.Eq{colUsername: username}).
		OrderBy(colTimestamp + " DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var amount int64
		if err := rows.Scan(&tx.ID, &tx.Type, &amount, &tx.Timestamp); err != nil {
			return nil, err
		}
		tx.Username = username
		tx.Amount = int(amount)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
