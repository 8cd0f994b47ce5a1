package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/cache"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/mocks"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passthroughTx runs the callback with the caller's context, as a
// transaction manager does when no database is involved.
func passthroughTx(ctrl *gomock.Controller) *mocks.MockTransactorIface {
	tx := mocks.NewMockTransactorIface(ctrl)
	tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func testActor() audit.Actor {
	ip := "203.0.113.7"
	return audit.Actor{
		UserID:  uuid.New(),
		Request: audit.RequestMetadata{IP: &ip},
	}
}

// recordEntries makes recorder accept any entry and collect it.
func recordEntries(recorder *mocks.MockRecorder, entries *[]audit.Entry) *mocks.MockRecorderRecordCall {
	return recorder.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e audit.Entry) (*model.ActivityLog, error) {
			*entries = append(*entries, e)
			return &model.ActivityLog{
				ID:            uuid.New(),
				UserID:        e.Actor.UserID,
				Action:        e.Action,
				AuditableType: e.Subject.Kind,
				AuditableID:   e.Subject.ID,
				AuditableName: e.SubjectLabel,
			}, nil
		})
}

func strPtr(s string) *string {
	return &s
}

func newDashboardCache() *service.CacheService {
	return service.NewCacheService(cache.NewMemoryStore(), service.CacheConfig{TTL: time.Minute})
}

// seedDashboards stores a cached dashboard for each user.
func seedDashboards(t *testing.T, c *service.CacheService, userIDs ...uuid.UUID) {
	t.Helper()
	for _, id := range userIDs {
		require.NoError(t, c.Set(context.Background(), "dashboard:"+id.String(), service.Dashboard{}))
	}
}

func dashboardCached(t *testing.T, c *service.CacheService, userID uuid.UUID) bool {
	t.Helper()
	var d service.Dashboard
	err := c.Get(context.Background(), "dashboard:"+userID.String(), &d)
	if errors.Is(err, domain.ErrNotFound) {
		return false
	}
	require.NoError(t, err)
	return true
}
