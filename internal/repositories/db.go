package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor prefers the request transaction over the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id       UUID PRIMARY KEY,
	first_name    VARCHAR(100) NOT NULL,
	last_name     VARCHAR(100) NOT NULL,
	phone_number  VARCHAR(32)  NOT NULL,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT clock_timestamp(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT clock_timestamp()
);

CREATE TABLE IF NOT EXISTS posts (
	post_id      UUID PRIMARY KEY,
	item_name    VARCHAR(255) NOT NULL,
	description  TEXT         NOT NULL,
	question     TEXT         NOT NULL DEFAULT '',
	category     VARCHAR(5)   NOT NULL CHECK (category IN ('lost', 'found')),
	image_url    TEXT         NOT NULL DEFAULT '',
	author_id    UUID         NOT NULL REFERENCES users(user_id),
	author_name  VARCHAR(255) NOT NULL,
	author_email VARCHAR(255) NOT NULL,
	created_at   TIMESTAMPTZ  NOT NULL DEFAULT clock_timestamp()
);

CREATE INDEX IF NOT EXISTS posts_created_at_idx ON posts (created_at DESC);

CREATE TABLE IF NOT EXISTS responses (
	response_id     UUID PRIMARY KEY,
	post_id         UUID         NOT NULL,
	post_owner_id   UUID         NOT NULL REFERENCES users(user_id),
	responder_id    UUID         NOT NULL REFERENCES users(user_id),
	responder_name  VARCHAR(255) NOT NULL,
	responder_email VARCHAR(255) NOT NULL,
	security_answer TEXT         NOT NULL,
	response_type   VARCHAR(7)   NOT NULL DEFAULT 'found' CHECK (response_type IN ('found', 'contact')),
	status          VARCHAR(8)   NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
	item_name       VARCHAR(255) NOT NULL,
	created_at      TIMESTAMPTZ  NOT NULL DEFAULT clock_timestamp(),
	updated_at      TIMESTAMPTZ  NOT NULL DEFAULT clock_timestamp(),
	UNIQUE (post_id, responder_id)
);

CREATE INDEX IF NOT EXISTS responses_owner_idx ON responses (post_owner_id, created_at DESC);
CREATE INDEX IF NOT EXISTS responses_responder_idx ON responses (responder_id, created_at DESC);
`

// ApplySchema creates the board tables if they do not exist.
// responses.post_id has no foreign key so responses survive post deletion.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	logQuery("apply schema", nil, nil, err)
	return err
}
