package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

const responseColumns = `response_id, post_id, post_owner_id, responder_id, responder_name, responder_email,
	security_answer, response_type, status, item_name, created_at, updated_at`

// ResponseWriteRepository handles response inserts and status changes.
type ResponseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewResponseWriteRepository(db *sqlx.DB, txGetter TxGetter) *ResponseWriteRepository {
	return &ResponseWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a pending response. The (post_id, responder_id) unique key makes
// the insert atomic: it returns sql.ErrNoRows when the pair already exists,
// including when a concurrent insert for the same pair won.
func (r *ResponseWriteRepository) Save(ctx context.Context, resp *models.ResponseDB) (*models.ResponseDB, error) {
	const query = `
		INSERT INTO responses (response_id, post_id, post_owner_id, responder_id, responder_name, responder_email,
			security_answer, response_type, status, item_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9)
		ON CONFLICT (post_id, responder_id) DO NOTHING
		RETURNING ` + responseColumns

	responseID := resp.ResponseID
	if responseID == uuid.Nil {
		responseID = uuid.New()
	}
	args := []any{
		responseID, resp.PostID, resp.PostOwnerID, resp.ResponderID, resp.ResponderName,
		resp.ResponderEmail, resp.SecurityAnswer, resp.ResponseType, resp.ItemName,
	}

	var saved models.ResponseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(query, args, saved.ResponseID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateStatus moves a response from one status to another as a single
// compare-and-set. It returns sql.ErrNoRows when the response does not exist
// or is no longer in the from status.
func (r *ResponseWriteRepository) UpdateStatus(ctx context.Context, responseID uuid.UUID, from, to string) (*models.ResponseDB, error) {
	const query = `
		UPDATE responses
		SET status = $3, updated_at = clock_timestamp()
		WHERE response_id = $1 AND status = $2
		RETURNING ` + responseColumns

	args := []any{responseID, from, to}

	var updated models.ResponseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)
	logQuery(query, args, updated.Status, err)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ResponseReadRepository handles response reads and the read-time joins of
// both response queues.
type ResponseReadRepository struct {
	db *sqlx.DB
}

func NewResponseReadRepository(db *sqlx.DB) *ResponseReadRepository {
	return &ResponseReadRepository{db: db}
}

// GetByID returns the response with the given id, or nil.
func (r *ResponseReadRepository) GetByID(ctx context.Context, responseID uuid.UUID) (*models.ResponseDB, error) {
	const query = `SELECT ` + responseColumns + ` FROM responses WHERE response_id = $1`

	var resp models.ResponseDB
	err := r.db.GetContext(ctx, &resp, query, responseID)
	logQuery(query, []any{responseID}, resp.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// joinedResponseRow is a response row with the LEFT JOINed post and user columns.
type joinedResponseRow struct {
	models.ResponseDB
	JoinedPostID  *uuid.UUID `db:"joined_post_id"`
	PostItemName  *string    `db:"joined_item_name"`
	PostCategory  *string    `db:"joined_category"`
	JoinedUserID  *uuid.UUID `db:"joined_user_id"`
	UserFirstName *string    `db:"joined_first_name"`
	UserLastName  *string    `db:"joined_last_name"`
	UserEmail     *string    `db:"joined_email"`
	UserPhone     *string    `db:"joined_phone_number"`
}

func (row *joinedResponseRow) post() *models.PostSummary {
	if row.JoinedPostID == nil {
		return nil
	}
	return &models.PostSummary{
		PostID:   *row.JoinedPostID,
		ItemName: deref(row.PostItemName),
		Category: deref(row.PostCategory),
	}
}

func (row *joinedResponseRow) user() *models.UserSummary {
	if row.JoinedUserID == nil {
		return nil
	}
	return &models.UserSummary{
		UserID:    *row.JoinedUserID,
		FirstName: deref(row.UserFirstName),
		LastName:  deref(row.UserLastName),
		Email:     deref(row.UserEmail),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListByPostOwner returns responses to the owner's posts, newest first,
// joined with the post and the responder.
func (r *ResponseReadRepository) ListByPostOwner(ctx context.Context, ownerID uuid.UUID) ([]models.OwnerResponse, error) {
	const query = `
		SELECT r.response_id, r.post_id, r.post_owner_id, r.responder_id, r.responder_name, r.responder_email,
		       r.security_answer, r.response_type, r.status, r.item_name, r.created_at, r.updated_at,
		       p.post_id AS joined_post_id, p.item_name AS joined_item_name, p.category AS joined_category,
		       u.user_id AS joined_user_id, u.first_name AS joined_first_name,
		       u.last_name AS joined_last_name, u.email AS joined_email
		FROM responses r
		LEFT JOIN posts p ON p.post_id = r.post_id
		LEFT JOIN users u ON u.user_id = r.responder_id
		WHERE r.post_owner_id = $1
		ORDER BY r.created_at DESC
	`

	var rows []joinedResponseRow
	err := r.db.SelectContext(ctx, &rows, query, ownerID)
	logQuery(query, []any{ownerID}, len(rows), err)
	if err != nil {
		return nil, err
	}

	responses := make([]models.OwnerResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, models.OwnerResponse{
			ResponseDB: rows[i].ResponseDB,
			Post:       rows[i].post(),
			Responder:  rows[i].user(),
		})
	}
	return responses, nil
}

// ListByResponder returns the responder's own responses, newest first,
// joined with the post and the post owner. A missing owner resolves to Unknown.
func (r *ResponseReadRepository) ListByResponder(ctx context.Context, responderID uuid.UUID) ([]models.ResponderResponse, error) {
	const query = `
		SELECT r.response_id, r.post_id, r.post_owner_id, r.responder_id, r.responder_name, r.responder_email,
		       r.security_answer, r.response_type, r.status, r.item_name, r.created_at, r.updated_at,
		       p.post_id AS joined_post_id, p.item_name AS joined_item_name, p.category AS joined_category,
		       o.user_id AS joined_user_id, o.first_name AS joined_first_name,
		       o.last_name AS joined_last_name, o.email AS joined_email,
		       o.phone_number AS joined_phone_number
		FROM responses r
		LEFT JOIN posts p ON p.post_id = r.post_id
		LEFT JOIN users o ON o.user_id = r.post_owner_id
		WHERE r.responder_id = $1
		ORDER BY r.created_at DESC
	`

	var rows []joinedResponseRow
	err := r.db.SelectContext(ctx, &rows, query, responderID)
	logQuery(query, []any{responderID}, len(rows), err)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ResponderResponse, 0, len(rows))
	for i := range rows {
		view := models.ResponderResponse{
			ResponseDB: rows[i].ResponseDB,
			Post:       rows[i].post(),
			OwnerName:  models.UnknownOwner,
			OwnerEmail: models.UnknownOwner,
		}
		if owner := rows[i].user(); owner != nil {
			view.OwnerName = owner.FirstName + " " + owner.LastName
			view.OwnerEmail = owner.Email
			view.OwnerPhone = deref(rows[i].UserPhone)
		}
		responses = append(responses, view)
	}
	return responses, nil
}
