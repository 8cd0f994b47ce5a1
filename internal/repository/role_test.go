package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAssign(t *testing.T) {
	roleID := uuid.New()
	userID := uuid.New()
	lookup := `SELECT \* FROM "role_users" WHERE role_id = \$1 AND user_id = \$2`
	insert := `INSERT INTO "role_users" \(.*\) VALUES \(.*\) ON CONFLICT \("role_id","user_id"\) DO NOTHING RETURNING "id"`

	t.Run("creates a new assignment", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(lookup).
			WithArgs(roleID, userID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectBegin()
		mock.ExpectQuery(insert).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
		mock.ExpectCommit()

		created, err := NewRoleRepository(db).Assign(context.Background(), roleID, userID)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent insert loses the race quietly", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(lookup).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectBegin()
		mock.ExpectQuery(insert).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		created, err := NewRoleRepository(db).Assign(context.Background(), roleID, userID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing assignment is touched", func(t *testing.T) {
		db, mock := newMockDB(t)
		assignmentID := uuid.New()
		mock.ExpectQuery(lookup).
			WillReturnRows(sqlmock.NewRows([]string{"id", "role_id", "user_id", "created_at"}).
				AddRow(assignmentID.String(), roleID.String(), userID.String(), time.Now()))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "role_users" SET "updated_at"=\$1 WHERE "role_users"."id" = \$2`).
			WithArgs(sqlmock.AnyArg(), assignmentID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := NewRoleRepository(db).Assign(context.Background(), roleID, userID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
