package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/mocks"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestAuditRecord(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("writes the entry with request metadata", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		svc := service.NewAuditService(repo)
		actor := testActor()
		roleID := uuid.New()

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *model.ActivityLog) error {
				assert.Equal(t, actor.UserID, l.UserID)
				assert.Equal(t, model.KindRole, l.AuditableType)
				assert.Equal(t, roleID, l.AuditableID)
				assert.Equal(t, "203.0.113.7", *l.IPAddress)
				assert.Nil(t, l.UserAgent)
				return nil
			})

		log, err := svc.Record(context.Background(), audit.Entry{
			Actor:        actor,
			Action:       model.ActionAssigned,
			Subject:      model.RoleSubject(roleID),
			SubjectLabel: "Trustee",
			NewValues:    map[string]interface{}{"Trustee": map[string]interface{}{"status": "assigned"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Trustee", log.AuditableName)
	})

	t.Run("rejects incomplete entries", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		svc := service.NewAuditService(repo)

		_, err := svc.Record(context.Background(), audit.Entry{
			Action:  "renamed",
			Subject: model.Auditable{Kind: "vehicle"},
		})
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "user_id")
		assert.Contains(t, ve.Fields, "action")
		assert.Contains(t, ve.Fields, "auditable_type")
		assert.Contains(t, ve.Fields, "auditable_id")
	})

	t.Run("propagates write failures", func(t *testing.T) {
		repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
		svc := service.NewAuditService(repo)
		cause := errors.New("deadlock detected")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(cause)

		_, err := svc.Record(context.Background(), audit.Entry{
			Actor:   testActor(),
			Action:  model.ActionDeleted,
			Subject: model.DocumentSubject(uuid.New()),
		})
		assert.ErrorIs(t, err, cause)
	})
}

func TestAuditExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityLogRepositoryIface(ctrl)
	svc := service.NewAuditService(repo)

	filter := repository.ActivityLogFilter{Actions: []string{model.ActionAssigned}}
	page := repository.PageRequest{All: true}
	repo.EXPECT().FindAll(gomock.Any(), filter, page).Return([]model.ActivityLog{
		{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			Action:        model.ActionAssigned,
			AuditableType: model.KindRole,
			AuditableName: "Trustee",
			NewValues:     map[string]interface{}{"Trustee": "assigned"},
			CreatedAt:     time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC),
			User:          &model.User{FirstName: "Jo", LastName: "Park"},
		},
	}, nil)

	data, err := svc.ExportAuditLogs(context.Background(), filter, page)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Activity Log")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2024-03-04T05:06:07Z", rows[1][0])
	assert.Equal(t, "Jo Park", rows[1][1])
	assert.Equal(t, `{"Trustee":"assigned"}`, rows[1][6])
}
