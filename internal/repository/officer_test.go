package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentScope(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	var officers []model.AffiliateOfficer
	stmt := dryRun(t).Model(&model.AffiliateOfficer{}).Scopes(current(at)).Find(&officers).Statement

	assert.Contains(t, stmt.SQL.String(),
		`WHERE affiliate_officers.is_vacant = $1 AND ((affiliate_officers.end_date IS NULL OR affiliate_officers.end_date > $2))`)
	assert.Equal(t, []interface{}{false, at}, stmt.Vars)
}

func TestOfficerFindCurrent(t *testing.T) {
	affiliateID := uuid.New()
	positionID := uuid.New()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	query := `SELECT \* FROM "affiliate_officers" WHERE \(affiliate_officers.affiliate_id = \$1 AND affiliate_officers.position_id = \$2\) AND affiliate_officers.is_vacant = \$3 AND \(\(affiliate_officers.end_date IS NULL OR affiliate_officers.end_date > \$4\)\) ORDER BY affiliate_officers.start_date DESC`

	t.Run("vacant or ended holders are not current", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(affiliateID, positionID, false, at, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewOfficerRepository(db).FindCurrent(context.Background(), affiliateID, positionID, at)
		assert.True(t, errors.Is(err, domain.ErrOfficerNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the holder", func(t *testing.T) {
		db, mock := newMockDB(t)
		officerID := uuid.New()
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"id", "affiliate_id", "position_id"}).
				AddRow(officerID.String(), affiliateID.String(), positionID.String()))

		officer, err := NewOfficerRepository(db).FindCurrent(context.Background(), affiliateID, positionID, at)
		require.NoError(t, err)
		assert.Equal(t, officerID, officer.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOfficerLeaders(t *testing.T) {
	db, mock := newMockDB(t)
	affiliateID := uuid.New()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`JOIN officer_positions ON officer_positions.id = affiliate_officers.position_id WHERE \(affiliate_officers.affiliate_id = \$1 AND affiliate_officers.member_id IS NOT NULL\) AND affiliate_officers.is_vacant = \$2 AND \(\(affiliate_officers.end_date IS NULL OR affiliate_officers.end_date > \$3\)\) ORDER BY officer_positions."order" ASC,affiliate_officers.start_date ASC`).
		WithArgs(affiliateID, false, at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	leaders, err := NewOfficerRepository(db).Leaders(context.Background(), affiliateID, at)
	require.NoError(t, err)
	assert.Empty(t, leaders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
