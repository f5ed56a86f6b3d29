package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/models"
)

// contactRepository is the SQL-backed implementation of [Storage]. The whole
// address book is persisted as a snapshot: Save rewrites the contacts and
// phones tables inside one transaction, Load reads them back in display
// order.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type contactRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewContactRepository constructs a [Storage] backed by the provided
// database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) Storage {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:      db,
		builder: newStatementBuilder(db.dialect),
		logger:  logger,
	}
}

// Load reads the persisted snapshot: contacts ordered by position, then all
// phone numbers attached to their contacts in phone position order.
//
// Stored values pass through the model constructors on the way in, so a
// snapshot written by another program with malformed phones or birthdays is
// reported as [ErrSnapshotCorrupted] rather than admitted into the book.
func (r *contactRepository) Load(ctx context.Context) ([]*models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectContactsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Load").
			Msg("failed to execute query for contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []*models.Record
	byID := make(map[string]*models.Record)

	for rows.Next() {
		var (
			id, name string
			birthday sql.NullString
		)
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			log.Err(err).
				Str("func", "contactRepository.Load").
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record := &models.Record{ID: id, Name: name}
		if birthday.Valid {
			if err := record.SetBirthday(birthday.String); err != nil {
				return nil, fmt.Errorf("%w: contact %q: %w", ErrSnapshotCorrupted, name, err)
			}
		}

		records = append(records, record)
		byID[id] = record
	}
	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "contactRepository.Load").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := r.loadPhones(ctx, byID); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *contactRepository) loadPhones(ctx context.Context, byID map[string]*models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := r.selectPhonesQuery().ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.loadPhones").
			Msg("failed to execute query for phones")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var contactID, number string
		if err := rows.Scan(&contactID, &number); err != nil {
			log.Err(err).
				Str("func", "contactRepository.loadPhones").
				Msg("failed to scan phone row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record, ok := byID[contactID]
		if !ok {
			// orphaned phone row, snapshot was edited by hand
			continue
		}
		if err := record.AddPhone(number); err != nil {
			return fmt.Errorf("%w: contact %q: %w", ErrSnapshotCorrupted, record.Name, err)
		}
	}
	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "contactRepository.loadPhones").
			Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Save rewrites the snapshot inside a single transaction: both tables are
// cleared and the given records inserted in display order.
func (r *contactRepository) Save(ctx context.Context, records []*models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Save").
			Msg("failed to begin snapshot transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{phonesTable, contactsTable} {
		query, args, err := r.builder.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logExecError(log, "contactRepository.Save", err, "failed to clear table "+table)
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for position, record := range records {
		var birthday *string
		if record.Birthday != nil {
			value := record.Birthday.String()
			birthday = &value
		}

		query, args, err := r.insertContactQuery(record.ID, record.Name, birthday, position).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logExecError(log, "contactRepository.Save", err, "failed to insert contact "+record.Name)
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for i, phone := range record.Phones {
			query, args, err := r.insertPhoneQuery(record.ID, i, phone.String()).ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				r.logExecError(log, "contactRepository.Save", err, "failed to insert phone for "+record.Name)
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "contactRepository.Save").
			Msg("failed to commit snapshot transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *contactRepository) Close() error {
	return r.db.Close()
}

// logExecError logs a failed statement, marking whether the driver considers
// the failure transient (PostgreSQL only; SQLite has no classifier).
func (r *contactRepository) logExecError(log *logger.Logger, fn string, err error, msg string) {
	event := log.Err(err).Str("func", fn)
	if r.db.errorClassificator != nil {
		event = event.Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable)
		if code := postgresError(err); code != "" {
			event = event.Str("sqlstate", code)
		}
	}
	event.Msg(msg)
}
