package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCloseLatest(t *testing.T) {
	key := HistoryKey{
		EntityType: model.KindRole,
		EntityID:   uuid.New(),
		UserID:     uuid.New(),
	}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	openQuery := `SELECT \* FROM "officer_histories" WHERE entity_type = \$1 AND entity_id = \$2 AND user_id = \$3 AND end_date IS NULL ORDER BY start_date DESC`

	t.Run("no open row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(openQuery).
			WithArgs(key.EntityType, key.EntityID, key.UserID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		closed, err := NewHistoryRepository(db).CloseLatest(context.Background(), key, at)
		require.NoError(t, err)
		assert.False(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ends the open row", func(t *testing.T) {
		db, mock := newMockDB(t)
		openID := uuid.New()
		mock.ExpectQuery(openQuery).
			WillReturnRows(sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "user_id"}).
				AddRow(openID.String(), string(key.EntityType), key.EntityID.String(), key.UserID.String()))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "officer_histories" SET "end_date"=\$1 WHERE id = \$2`).
			WithArgs(at, openID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		closed, err := NewHistoryRepository(db).CloseLatest(context.Background(), key, at)
		require.NoError(t, err)
		assert.True(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scoped to the affiliate", func(t *testing.T) {
		db, mock := newMockDB(t)
		affiliateID := uuid.New()
		scoped := key
		scoped.AffiliateID = &affiliateID
		mock.ExpectQuery(`end_date IS NULL\) AND affiliate_id = \$4 ORDER BY start_date DESC`).
			WithArgs(key.EntityType, key.EntityID, key.UserID, affiliateID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		closed, err := NewHistoryRepository(db).CloseLatest(context.Background(), scoped, at)
		require.NoError(t, err)
		assert.False(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestHistoryClosed(t *testing.T) {
	entityID := uuid.New()
	userID := uuid.New()
	filter := HistoryFilter{EntityType: model.KindRole, EntityID: entityID}

	t.Run("ended rows, latest end first", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "officer_histories" WHERE \(officer_histories.entity_type = \$1 AND officer_histories.entity_id = \$2\) AND officer_histories.end_date IS NOT NULL`).
			WithArgs(model.KindRole, entityID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT \* FROM "officer_histories" WHERE .*officer_histories.end_date IS NOT NULL ORDER BY "officer_histories"."end_date" DESC LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "user_id"}).
				AddRow(uuid.NewString(), string(model.KindRole), entityID.String(), userID.String()))
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(userID.String(), "a@example.org"))

		page, err := NewHistoryRepository(db).Closed(context.Background(), filter, PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		require.NotNil(t, page.Data[0].User)
		assert.Equal(t, "a@example.org", page.Data[0].User.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("level and affiliate narrow the rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		affiliateID := uuid.New()
		narrowed := filter
		narrowed.AffiliateID = &affiliateID
		narrowed.Level = model.LevelAffiliate
		mock.ExpectQuery(`officer_histories.end_date IS NOT NULL AND officer_histories.affiliate_id = \$3 AND officer_histories.level = \$4`).
			WithArgs(model.KindRole, entityID, affiliateID, model.LevelAffiliate).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		page, err := NewHistoryRepository(db).Closed(context.Background(), narrowed, PageRequest{})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit sort overrides the default", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\)`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`ORDER BY "officer_histories"."start_date" LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewHistoryRepository(db).Closed(context.Background(), filter, PageRequest{SortBy: "start_date", SortOrder: "asc"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
