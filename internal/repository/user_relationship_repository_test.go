package repository

import (
	"context"
	"errors"
	"relationship_service/internal/model"
	"relationship_service/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createRelationship(t *testing.T, repo *UserRelationshipRepository, user1, user2, typeID uint, status model.RelationshipStatus) *model.UserRelationship {
	t.Helper()
	rel := &model.UserRelationship{
		User1ID:            user1,
		User2ID:            user2,
		RelationshipTypeID: typeID,
		Status:             status,
	}
	require.NoError(t, repo.Create(context.Background(), rel))
	return rel
}

func TestUserRelationshipRepository_Normalization(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRelationshipRepository(db)
	friend := testutil.MustCreateType(t, db, "Friend", model.CategorySocial, true)

	ctxID := uint(7)
	rel := &model.UserRelationship{
		User1ID:            20,
		User2ID:            10,
		RelationshipTypeID: friend.ID,
		ContextID:          &ctxID,
		Status:             model.StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), rel))

	assert.Equal(t, uint(10), rel.UserLowID)
	assert.Equal(t, uint(20), rel.UserHighID)
	assert.Equal(t, uint(7), rel.ContextKey)
}

func TestUserRelationshipRepository_UniquePairIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRelationshipRepository(db)
	friend := testutil.MustCreateType(t, db, "Friend", model.CategorySocial, true)
	ctx := context.Background()

	createRelationship(t, repo, 10, 20, friend.ID, model.StatusActive)

	err := repo.Create(ctx, &model.UserRelationship{
		User1ID:            20,
		User2ID:            10,
		RelationshipTypeID: friend.ID,
		Status:             model.StatusActive,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "reversed pair must hit the unique index, got %v", err)

	// 不同上下文可以共存
	ctxID := uint(3)
	require.NoError(t, repo.Create(ctx, &model.UserRelationship{
		User1ID:            20,
		User2ID:            10,
		RelationshipTypeID: friend.ID,
		ContextID:          &ctxID,
		Status:             model.StatusActive,
	}))

	dup, err := repo.ExistsDuplicate(ctx, 20, 10, friend.ID, nil)
	require.NoError(t, err)
	assert.True(t, dup)

	dup, err = repo.ExistsDuplicate(ctx, 10, 20, friend.ID, &ctxID)
	require.NoError(t, err)
	assert.True(t, dup)

	other := uint(4)
	dup, err = repo.ExistsDuplicate(ctx, 10, 20, friend.ID, &other)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestUserRelationshipRepository_FindByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRelationshipRepository(db)
	friend := testutil.MustCreateType(t, db, "Friend", model.CategorySocial, true)
	colleague := testutil.MustCreateType(t, db, "Colleague", model.CategoryProfessional, true)
	ctx := context.Background()

	createRelationship(t, repo, 1, 2, friend.ID, model.StatusActive)
	createRelationship(t, repo, 3, 1, friend.ID, model.StatusEnded)
	createRelationship(t, repo, 1, 4, colleague.ID, model.StatusActive)
	createRelationship(t, repo, 2, 3, friend.ID, model.StatusActive)

	rels, total, err := repo.FindByUser(ctx, 1, UserRelationshipFilter{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rels, 2)
	require.NotNil(t, rels[0].RelationshipType)
	assert.Equal(t, "Friend", rels[0].RelationshipType.Name)

	rels, total, err = repo.FindByUser(ctx, 1, UserRelationshipFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rels, 1)

	active := model.StatusActive
	rels, total, err = repo.FindByUser(ctx, 1, UserRelationshipFilter{Status: &active}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rels, 2)

	professional := model.CategoryProfessional
	rels, total, err = repo.FindByUser(ctx, 1, UserRelationshipFilter{Category: &professional}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rels, 1)
	assert.Equal(t, uint(4), rels[0].User2ID)
}

func TestUserRelationshipRepository_BetweenAndCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRelationshipRepository(db)
	friend := testutil.MustCreateType(t, db, "Friend", model.CategorySocial, true)
	colleague := testutil.MustCreateType(t, db, "Colleague", model.CategoryProfessional, true)
	ctx := context.Background()

	createRelationship(t, repo, 10, 20, friend.ID, model.StatusActive)
	createRelationship(t, repo, 20, 10, colleague.ID, model.StatusEnded)

	rels, err := repo.FindBetween(ctx, 20, 10, false)
	require.NoError(t, err)
	assert.Len(t, rels, 2)

	rels, err = repo.FindBetween(ctx, 20, 10, true)
	require.NoError(t, err)
	assert.Len(t, rels, 1)

	exists, err := repo.ExistsBetween(ctx, 20, 10, true)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBetween(ctx, 10, 30, false)
	require.NoError(t, err)
	assert.False(t, exists)

	total, err := repo.CountByUser(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	active, err := repo.CountActiveByUser(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	byType, err := repo.CountByType(ctx, friend.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byType)
}

func TestUserRelationshipRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewUserRelationshipRepository(db)
	friend := testutil.MustCreateType(t, db, "Friend", model.CategorySocial, true)
	ctx := context.Background()

	rel := createRelationship(t, repo, 1, 2, friend.ID, model.StatusActive)

	affected, err := repo.Delete(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	_, err = repo.FindByID(ctx, rel.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
