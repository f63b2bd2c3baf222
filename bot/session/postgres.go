package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/anorbot/core/logger"
)

// PostgresStore persists sessions in the bot_sessions table so conversations
// survive restarts.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type sessionRow struct {
	State string          `db:"state"`
	Data  json.RawMessage `db:"data"`
}

func (s *PostgresStore) Get(ctx context.Context, userID int64) (*Session, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row,
		`SELECT state, data FROM bot_sessions WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session for user %d: %w", userID, err)
	}

	sess := &Session{State: State(row.State)}
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &sess.Data); err != nil {
			return nil, fmt.Errorf("decode session data for user %d: %w", userID, err)
		}
	}
	// Stored states from an older build fall back to idle but keep the
	// locale, so the user only loses their place, not their language.
	if !sess.State.Known() {
		logger.Warn(ctx, "session", "session.state.unknown",
			slog.Int64("user_id", userID),
			slog.String("state", string(sess.State)),
		)
		sess.Reset()
	}
	return sess, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID int64, sess *Session) error {
	data, err := json.Marshal(sess.Data)
	if err != nil {
		return fmt.Errorf("encode session data for user %d: %w", userID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO bot_sessions (user_id, state, data, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id)
		 DO UPDATE SET state = EXCLUDED.state, data = EXCLUDED.data, updated_at = NOW()`,
		userID, string(sess.State), data)
	if err != nil {
		return fmt.Errorf("save session for user %d: %w", userID, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return nil
}
