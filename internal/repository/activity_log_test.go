package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuditTypes(t *testing.T) {
	t.Run("expands aliases without duplicates", func(t *testing.T) {
		kinds, err := ParseAuditTypes([]string{"Affiliate,member", "document"})
		require.NoError(t, err)
		assert.Equal(t, []model.AuditableKind{model.KindAffiliate, model.KindMember, model.KindDocument}, kinds)
	})

	t.Run("national covers organization subjects", func(t *testing.T) {
		kinds, err := ParseAuditTypes([]string{"national"})
		require.NoError(t, err)
		assert.Equal(t, []model.AuditableKind{model.KindRole, model.KindDocument}, kinds)
	})

	t.Run("empty adds nothing", func(t *testing.T) {
		kinds, err := ParseAuditTypes(nil)
		require.NoError(t, err)
		assert.Empty(t, kinds)
	})

	t.Run("unknown type is an error", func(t *testing.T) {
		_, err := ParseAuditTypes([]string{"role,vehicle"})
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "audit_type")
	})
}

func TestActivityLogFilterScope(t *testing.T) {
	build := func(f ActivityLogFilter) (string, []interface{}) {
		var logs []model.ActivityLog
		stmt := dryRun(t).Model(&model.ActivityLog{}).Scopes(f.Scope).Find(&logs).Statement
		return stmt.SQL.String(), stmt.Vars
	}

	t.Run("no predicates", func(t *testing.T) {
		sql, _ := build(ActivityLogFilter{})
		assert.NotContains(t, sql, "WHERE")
	})

	t.Run("affiliate covers its members", func(t *testing.T) {
		affiliateID := uuid.New()
		sql, vars := build(ActivityLogFilter{
			AffiliateID: &affiliateID,
			Actions:     []string{model.ActionAssigned},
		})

		assert.Contains(t, sql, "activity_logs.action IN ($1)")
		assert.Contains(t, sql, "activity_logs.auditable_id IN (SELECT id FROM members WHERE affiliate_id = $3)")
		assert.Contains(t, sql, "OR (activity_logs.auditable_type = $4 AND activity_logs.auditable_id = $5)")
		assert.Equal(t, []interface{}{
			model.ActionAssigned,
			model.KindMember, affiliateID,
			model.KindAffiliate, affiliateID,
		}, vars)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		sql, vars := build(ActivityLogFilter{Search: " 50%_off "})
		assert.Contains(t, sql, "(activity_logs.auditable_name ILIKE $1 OR activity_logs.action ILIKE $2)")
		assert.Equal(t, `%50\%\_off%`, vars[0])
	})

	t.Run("subject and date range", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		subject := model.MemberSubject(uuid.New())

		sql, vars := build(ActivityLogFilter{Subject: &subject, DateFrom: &from, DateTo: &to})
		assert.Contains(t, sql, "activity_logs.created_at >= $1")
		assert.Contains(t, sql, "activity_logs.created_at <= $2")
		assert.Contains(t, sql, "activity_logs.auditable_type = $3 AND activity_logs.auditable_id = $4")
		assert.Equal(t, subject.ID, vars[3])
	})
}
