package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lost-found/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriteRepository_SaveIsUniquePerPair(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	owner := createUser(t, db, "Ann", "Owner", "ann@example.com")
	responder := createUser(t, db, "Bob", "Finder", "bob@example.com")
	post := createPost(t, db, owner, "Blue Backpack", models.CategoryLost)
	writer := NewResponseWriteRepository(db, nil)

	saved, err := writer.Save(ctx, newResponse(post, responder))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, saved.Status)
	assert.Equal(t, owner.UserID, saved.PostOwnerID)

	dup, err := writer.Save(ctx, newResponse(post, responder))
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, dup)
}

func TestResponseWriteRepository_ConcurrentSaveCreatesOneRow(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	owner := createUser(t, db, "Ann", "Owner", "ann@example.com")
	responder := createUser(t, db, "Bob", "Finder", "bob@example.com")
	post := createPost(t, db, owner, "Blue Backpack", models.CategoryLost)
	writer := NewResponseWriteRepository(db, nil)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dups      int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := writer.Save(ctx, newResponse(post, responder))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case err == sql.ErrNoRows:
				dups++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, dups)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM responses WHERE post_id = $1 AND responder_id = $2", post.PostID, responder.UserID))
	assert.Equal(t, 1, count)
}

func TestResponseWriteRepository_UpdateStatusCompareAndSet(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	owner := createUser(t, db, "Ann", "Owner", "ann@example.com")
	responder := createUser(t, db, "Bob", "Finder", "bob@example.com")
	post := createPost(t, db, owner, "Blue Backpack", models.CategoryLost)
	writer := NewResponseWriteRepository(db, nil)

	saved, err := writer.Save(ctx, newResponse(post, responder))
	require.NoError(t, err)

	updated, err := writer.UpdateStatus(ctx, saved.ResponseID, models.StatusPending, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	_, err = writer.UpdateStatus(ctx, saved.ResponseID, models.StatusPending, models.StatusRejected)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	_, err = writer.UpdateStatus(ctx, uuid.New(), models.StatusPending, models.StatusRejected)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	current, err := NewResponseReadRepository(db).GetByID(ctx, saved.ResponseID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, current.Status)
}

func TestResponseWriteRepository_ConcurrentTransitionsHaveOneWinner(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	owner := createUser(t, db, "Ann", "Owner", "ann@example.com")
	responder := createUser(t, db, "Bob", "Finder", "bob@example.com")
	post := createPost(t, db, owner, "Blue Backpack", models.CategoryLost)
	writer := NewResponseWriteRepository(db, nil)

	saved, err := writer.Save(ctx, newResponse(post, responder))
	require.NoError(t, err)

	targets := []string{models.StatusAccepted, models.StatusRejected, models.StatusAccepted, models.StatusRejected}
	results := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, to := range targets {
		wg.Add(1)
		go func(i int, to string) {
			defer wg.Done()
			_, results[i] = writer.UpdateStatus(ctx, saved.ResponseID, models.StatusPending, to)
		}(i, to)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, sql.ErrNoRows)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestResponseReadRepository_Queues(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	owner := createUser(t, db, "Ann", "Owner", "ann@example.com")
	bob := createUser(t, db, "Bob", "Finder", "bob@example.com")
	carol := createUser(t, db, "Carol", "Finder", "carol@example.com")
	backpack := createPost(t, db, owner, "Blue Backpack", models.CategoryLost)
	keys := createPost(t, db, owner, "Keys", models.CategoryFound)

	writer := NewResponseWriteRepository(db, nil)
	reader := NewResponseReadRepository(db)

	first, err := writer.Save(ctx, newResponse(backpack, bob))
	require.NoError(t, err)
	second, err := writer.Save(ctx, newResponse(keys, bob))
	require.NoError(t, err)
	third, err := writer.Save(ctx, newResponse(backpack, carol))
	require.NoError(t, err)

	t.Run("OwnerQueueNewestFirstWithJoins", func(t *testing.T) {
		responses, err := reader.ListByPostOwner(ctx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, responses, 3)
		assert.Equal(t, third.ResponseID, responses[0].ResponseID)
		assert.Equal(t, second.ResponseID, responses[1].ResponseID)
		assert.Equal(t, first.ResponseID, responses[2].ResponseID)

		require.NotNil(t, responses[0].Post)
		assert.Equal(t, "Blue Backpack", responses[0].Post.ItemName)
		assert.Equal(t, models.CategoryLost, responses[0].Post.Category)
		require.NotNil(t, responses[0].Responder)
		assert.Equal(t, "Carol", responses[0].Responder.FirstName)
		assert.Equal(t, "carol@example.com", responses[0].Responder.Email)
	})

	t.Run("ResponderQueueWithOwner", func(t *testing.T) {
		responses, err := reader.ListByResponder(ctx, bob.UserID)
		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, second.ResponseID, responses[0].ResponseID)
		assert.Equal(t, "Ann Owner", responses[0].OwnerName)
		assert.Equal(t, "ann@example.com", responses[0].OwnerEmail)
		assert.Equal(t, "+1-555-0100", responses[0].OwnerPhone)
		require.NotNil(t, responses[0].Post)
		assert.Equal(t, models.CategoryFound, responses[0].Post.Category)
	})

	t.Run("DeletedPostResolvesToNil", func(t *testing.T) {
		_, err := NewPostWriteRepository(db, nil).Delete(ctx, keys.PostID)
		require.NoError(t, err)

		responses, err := reader.ListByResponder(ctx, bob.UserID)
		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Nil(t, responses[0].Post)
		assert.Equal(t, "Keys", responses[0].ItemName)

		owned, err := reader.ListByPostOwner(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, owned, 3)
	})

	t.Run("EmptyQueues", func(t *testing.T) {
		responses, err := reader.ListByResponder(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Empty(t, responses)

		owned, err := reader.ListByPostOwner(ctx, bob.UserID)
		require.NoError(t, err)
		assert.Empty(t, owned)
	})

	t.Run("GetByIDUnknown", func(t *testing.T) {
		resp, err := reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, resp)
	})
}
