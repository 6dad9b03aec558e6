package service

import (
	"context"
	"encoding/json"
	"errors"
	"relationship_service/internal/model"
	"relationship_service/internal/repository"
	"relationship_service/internal/testutil"
	"relationship_service/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustDate(t *testing.T, s string) *datatypes.Date {
	t.Helper()
	d, err := util.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestUserRelationshipService_Create(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	rel, err := s.rels.Create(ctx, CreateRelationshipInput{
		User1ID:            10,
		User2ID:            20,
		RelationshipTypeID: friend.ID,
		StartDate:          mustDate(t, "2020-01-01"),
		Metadata:           json.RawMessage(`{"met":"school"}`),
	})
	require.NoError(t, err)
	assert.NotZero(t, rel.ID)
	assert.Equal(t, model.StatusActive, rel.Status)
	require.NotNil(t, rel.RelationshipType)
	assert.Equal(t, "Friend", rel.RelationshipType.Name)

	fetched, err := s.rels.GetByID(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", *util.FormatDate(fetched.StartDate))
	assert.JSONEq(t, `{"met":"school"}`, string(fetched.Metadata))
}

func TestUserRelationshipService_CreateValidation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	tests := []struct {
		name    string
		input   CreateRelationshipInput
		wantErr error
	}{
		{
			name:    "self relationship",
			input:   CreateRelationshipInput{User1ID: 5, User2ID: 5, RelationshipTypeID: friend.ID},
			wantErr: util.ErrSelfRelationship,
		},
		{
			name:    "unknown type",
			input:   CreateRelationshipInput{User1ID: 1, User2ID: 2, RelationshipTypeID: 999},
			wantErr: util.ErrRelationshipTypeNotFound,
		},
		{
			name: "end before start",
			input: CreateRelationshipInput{
				User1ID:            1,
				User2ID:            2,
				RelationshipTypeID: friend.ID,
				StartDate:          mustDate(t, "2021-05-01"),
				EndDate:            mustDate(t, "2021-04-30"),
			},
			wantErr: util.ErrInvalidDateRange,
		},
		{
			name:    "unknown initial status",
			input:   CreateRelationshipInput{User1ID: 1, User2ID: 2, RelationshipTypeID: friend.ID, Status: strPtr("FROZEN")},
			wantErr: util.ErrInvalidStatus,
		},
		{
			name:    "zero context",
			input:   CreateRelationshipInput{User1ID: 1, User2ID: 2, RelationshipTypeID: friend.ID, ContextID: uintPtr(0)},
			wantErr: util.ErrInvalidContextID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.rels.Create(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	count, err := s.rels.CountForUser(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, count.Total, "rejected creates must not persist")
}

func TestUserRelationshipService_CreateDuplicate(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")
	colleague := mustCreateType(t, s.types, "Colleague", "PROFESSIONAL")

	_, err := s.rels.Create(ctx, CreateRelationshipInput{User1ID: 10, User2ID: 20, RelationshipTypeID: friend.ID})
	require.NoError(t, err)

	_, err = s.rels.Create(ctx, CreateRelationshipInput{User1ID: 10, User2ID: 20, RelationshipTypeID: friend.ID})
	assert.True(t, errors.Is(err, util.ErrRelationshipExists))

	_, err = s.rels.Create(ctx, CreateRelationshipInput{User1ID: 20, User2ID: 10, RelationshipTypeID: friend.ID})
	assert.True(t, errors.Is(err, util.ErrRelationshipExists), "reversed order is the same pair")
	assert.True(t, errors.Is(err, util.ErrConflict))

	_, err = s.rels.Create(ctx, CreateRelationshipInput{User1ID: 20, User2ID: 10, RelationshipTypeID: colleague.ID})
	assert.NoError(t, err, "a different type is not a duplicate")

	_, err = s.rels.Create(ctx, CreateRelationshipInput{User1ID: 10, User2ID: 20, RelationshipTypeID: friend.ID, ContextID: uintPtr(42)})
	assert.NoError(t, err, "a different context is not a duplicate")
}

// 查重通过后、插入之前另一请求写入了反向记录，唯一索引仍应返回冲突
func TestUserRelationshipService_CreateDuplicateFromIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	typeRepo := repository.NewRelationshipTypeRepository(db, nil, 0)
	svc := NewUserRelationshipService(repository.NewUserRelationshipRepository(db), typeRepo)
	friend := testutil.MustCreateType(t, db, "Friend", model.CategorySocial, true)

	interleaved := false
	err := db.Callback().Create().Before("gorm:create").Register("test:interleave_mirror", func(tx *gorm.DB) {
		if interleaved || tx.Statement.Table != "user_relationships" {
			return
		}
		interleaved = true
		now := time.Now()
		if err := tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO user_relationships (created_at, updated_at, user1_id, user2_id, relationship_type_id, status, user_low_id, user_high_id, context_key) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			now, now, 20, 10, friend.ID, string(model.StatusActive), 10, 20, 0,
		).Error; err != nil {
			tx.AddError(err)
		}
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateRelationshipInput{User1ID: 10, User2ID: 20, RelationshipTypeID: friend.ID})
	require.True(t, interleaved, "mirror row must be written between the check and the insert")
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrRelationshipExists), "got %v", err)
	assert.True(t, errors.Is(err, util.ErrConflict))
}

func TestUserRelationshipService_ExistsBetweenIsSymmetric(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	_, err := s.rels.Create(ctx, CreateRelationshipInput{User1ID: 10, User2ID: 20, RelationshipTypeID: friend.ID})
	require.NoError(t, err)

	for _, activeOnly := range []bool{true, false} {
		ab, err := s.rels.ExistsBetween(ctx, 10, 20, activeOnly)
		require.NoError(t, err)
		ba, err := s.rels.ExistsBetween(ctx, 20, 10, activeOnly)
		require.NoError(t, err)
		assert.True(t, ab)
		assert.Equal(t, ab, ba)
	}

	between, err := s.rels.ListBetween(ctx, 20, 10, false)
	require.NoError(t, err)
	assert.Len(t, between, 1)
}

func TestUserRelationshipService_Update(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	rel, err := s.rels.Create(ctx, CreateRelationshipInput{
		User1ID:            1,
		User2ID:            2,
		RelationshipTypeID: friend.ID,
		StartDate:          mustDate(t, "2020-01-01"),
		Metadata:           json.RawMessage(`{"a":1}`),
	})
	require.NoError(t, err)

	t.Run("status and end date", func(t *testing.T) {
		updated, err := s.rels.Update(ctx, rel.ID, UpdateRelationshipInput{
			Status:  strPtr("ENDED"),
			EndDate: mustDate(t, "2021-06-30"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.StatusEnded, updated.Status)

		fetched, err := s.rels.GetByID(ctx, rel.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusEnded, fetched.Status)
		assert.Equal(t, "2021-06-30", *util.FormatDate(fetched.EndDate))
		assert.JSONEq(t, `{"a":1}`, string(fetched.Metadata), "metadata untouched")
	})

	t.Run("any transition allowed", func(t *testing.T) {
		updated, err := s.rels.Update(ctx, rel.ID, UpdateRelationshipInput{Status: strPtr("active")})
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, updated.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := s.rels.Update(ctx, rel.ID, UpdateRelationshipInput{Status: strPtr("BROKEN")})
		assert.True(t, errors.Is(err, util.ErrInvalidStatus))
		assert.True(t, errors.Is(err, util.ErrInvalidArgument))
	})

	t.Run("end date before start date", func(t *testing.T) {
		_, err := s.rels.Update(ctx, rel.ID, UpdateRelationshipInput{EndDate: mustDate(t, "2019-12-31")})
		assert.True(t, errors.Is(err, util.ErrInvalidDateRange))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.rels.Update(ctx, 999, UpdateRelationshipInput{Status: strPtr("ENDED")})
		assert.True(t, errors.Is(err, util.ErrRelationshipNotFound))
	})
}

func TestUserRelationshipService_Delete(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	rel, err := s.rels.Create(ctx, CreateRelationshipInput{User1ID: 1, User2ID: 2, RelationshipTypeID: friend.ID})
	require.NoError(t, err)

	require.NoError(t, s.rels.Delete(ctx, rel.ID))

	err = s.rels.Delete(ctx, rel.ID)
	assert.True(t, errors.Is(err, util.ErrRelationshipNotFound))

	err = s.rels.Delete(ctx, 12345)
	assert.True(t, errors.Is(err, util.ErrNotFound))
}

func TestUserRelationshipService_CountForUser(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	_, err := s.rels.Create(ctx, CreateRelationshipInput{User1ID: 1, User2ID: 2, RelationshipTypeID: friend.ID})
	require.NoError(t, err)
	_, err = s.rels.Create(ctx, CreateRelationshipInput{User1ID: 3, User2ID: 1, RelationshipTypeID: friend.ID})
	require.NoError(t, err)
	ended, err := s.rels.Create(ctx, CreateRelationshipInput{User1ID: 1, User2ID: 4, RelationshipTypeID: friend.ID})
	require.NoError(t, err)
	_, err = s.rels.Update(ctx, ended.ID, UpdateRelationshipInput{Status: strPtr("ENDED")})
	require.NoError(t, err)

	stats, err := s.rels.CountForUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, RelationshipStats{Total: 3, Active: 2, Ended: 1}, *stats)
}

func TestUserRelationshipService_ListForUser(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	friend := mustCreateType(t, s.types, "Friend", "SOCIAL")

	for other := uint(2); other <= 6; other++ {
		_, err := s.rels.Create(ctx, CreateRelationshipInput{User1ID: 1, User2ID: other, RelationshipTypeID: friend.ID, ContextID: uintPtr(other%2 + 1)})
		require.NoError(t, err)
	}

	page, err := s.rels.ListForUser(ctx, 1, repository.UserRelationshipFilter{}, PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, uint(4), page.Items[0].User2ID)

	contextID := uint(1)
	filtered, err := s.rels.ListForUser(ctx, 1, repository.UserRelationshipFilter{ContextID: &contextID}, PageRequest{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), filtered.Total)
}
