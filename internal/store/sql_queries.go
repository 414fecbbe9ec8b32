package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-exchange-admin/models"
)

const (
	exchangeUsersTable = "exchange_users"
	adminEventsTable   = "admin_events"

	// EXCLUSIVE blocks concurrent inserts but not plain SELECTs.
	lockAdminEventsQuery = "LOCK TABLE " + adminEventsTable + " IN EXCLUSIVE MODE"
)

func buildInsertExchangeUserQuery(b sq.StatementBuilderType, user models.ExchangeUser) (string, []any, error) {
	query, args, err := b.
		Insert(exchangeUsersTable).
		Columns("uid", "created_by", "created_at").
		Values(user.UID, user.CreatedBy, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertEventQuery(b sq.StatementBuilderType, result models.CommandResult) (string, []any, error) {
	query, args, err := b.
		Insert(adminEventsTable).
		Columns("uid", "result_code", "message").
		Values(result.UID, int32(result.ResultCode), result.Message).
		Suffix("RETURNING idx").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectEventsFromQuery(b sq.StatementBuilderType, fromIndex int64, limit uint64) (string, []any, error) {
	query, args, err := b.
		Select("idx", "uid", "result_code", "message").
		From(adminEventsTable).
		Where(sq.GtOrEq{"idx": fromIndex}).
		OrderBy("idx ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
