package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// exchangeUserRepository is the SQL implementation of
// [ExchangeUserRepository] over the "exchange_users" table.
type exchangeUserRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExchangeUserRepository constructs an [ExchangeUserRepository] backed by
// db.
func NewExchangeUserRepository(db *DB, logger *logger.Logger) ExchangeUserRepository {
	logger.Debug().Msg("creating exchange user repository")
	return &exchangeUserRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new exchange account. A zero CreatedAt is set to the
// current UTC time.
//
// Error handling:
//   - unique violation on uid → [ErrUserAlreadyExists].
//   - any other driver-level error → [ErrExecutingQuery], plus [ErrTransient]
//     when retryable.
func (r *exchangeUserRepository) CreateUser(ctx context.Context, user models.ExchangeUser) (models.ExchangeUser, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertExchangeUserQuery(r.db.builder, user)
	if err != nil {
		return models.ExchangeUser{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Int64("uid", user.UID).Msg("exchange user already exists")
			return models.ExchangeUser{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*exchangeUserRepository.CreateUser").Int64("uid", user.UID).Msg("error creating exchange user")
		return models.ExchangeUser{}, r.db.queryError(err)
	}

	return user, nil
}
