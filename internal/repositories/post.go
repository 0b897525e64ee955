package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
)

const postColumns = `post_id, item_name, description, question, category, image_url, author_id, author_name, author_email, created_at`

// PostWriteRepository handles post inserts and deletes.
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPostWriteRepository(db *sqlx.DB, txGetter TxGetter) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a post and returns the stored row.
func (r *PostWriteRepository) Save(ctx context.Context, post *models.PostDB) (*models.PostDB, error) {
	const query = `
		INSERT INTO posts (post_id, item_name, description, question, category, image_url, author_id, author_name, author_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + postColumns

	postID := post.PostID
	if postID == uuid.Nil {
		postID = uuid.New()
	}
	args := []any{
		postID, post.ItemName, post.Description, post.Question, post.Category,
		post.ImageURL, post.AuthorID, post.AuthorName, post.AuthorEmail,
	}

	var saved models.PostDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(query, args, saved.PostID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes a post and returns the deleted row.
// It returns sql.ErrNoRows when the post does not exist.
func (r *PostWriteRepository) Delete(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	const query = `DELETE FROM posts WHERE post_id = $1 RETURNING ` + postColumns

	var deleted models.PostDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deleted, query, postID)
	logQuery(query, []any{postID}, deleted.PostID, err)

	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// PostReadRepository handles post reads.
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// GetByID returns the post with the given id, or nil.
func (r *PostReadRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	const query = `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1`

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, postID)
	logQuery(query, []any{postID}, post.PostID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts newest first, optionally narrowed by category and a
// case-insensitive substring of the item name or description.
func (r *PostReadRepository) List(ctx context.Context, filter models.PostFilter) ([]models.PostDB, error) {
	const query = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE ($1::VARCHAR IS NULL OR category = $1)
		  AND ($2::TEXT IS NULL OR item_name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
	`

	var search *string
	if filter.Search != nil {
		escaped := escapeLike(*filter.Search)
		search = &escaped
	}
	args := []any{filter.Category, search}

	posts := []models.PostDB{}
	err := r.db.SelectContext(ctx, &posts, query, args...)
	logQuery(query, args, len(posts), err)

	if err != nil {
		return nil, err
	}
	return posts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
