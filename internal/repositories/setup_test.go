package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-lost-found/internal/logger"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)

	require.NoError(t, ApplySchema(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Setup Redis ---
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	require.NoError(t, rdb.Ping(ctx).Err())

	return rdb, func() {
		rdb.Close()
		redisC.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, db *sqlx.DB, first, last, email string) *models.UserDB {
	t.Helper()
	user, err := NewUserWriteRepository(db, nil).Save(context.Background(), &models.UserDB{
		FirstName:    first,
		LastName:     last,
		PhoneNumber:  "+1-555-0100",
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func createPost(t *testing.T, db *sqlx.DB, author *models.UserDB, itemName, category string) *models.PostDB {
	t.Helper()
	post, err := NewPostWriteRepository(db, nil).Save(context.Background(), &models.PostDB{
		ItemName:    itemName,
		Description: "Left in library",
		Category:    category,
		AuthorID:    author.UserID,
		AuthorName:  author.FullName(),
		AuthorEmail: author.Email,
	})
	require.NoError(t, err)
	return post
}

func newResponse(post *models.PostDB, responder *models.UserDB) *models.ResponseDB {
	return &models.ResponseDB{
		ResponseID:     uuid.New(),
		PostID:         post.PostID,
		PostOwnerID:    post.AuthorID,
		ResponderID:    responder.UserID,
		ResponderName:  responder.FullName(),
		ResponderEmail: responder.Email,
		SecurityAnswer: "red zipper",
		ResponseType:   models.ResponseTypeFound,
		ItemName:       post.ItemName,
	}
}

func TestApplySchema_Idempotent(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	assert.NoError(t, ApplySchema(context.Background(), db))
}
