package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/mocks"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roleMocks struct {
	roles      *mocks.MockRoleRepositoryIface
	users      *mocks.MockUserRepositoryIface
	officers   *mocks.MockOfficerRepositoryIface
	history    *mocks.MockHistoryRepositoryIface
	recorder   *mocks.MockRecorder
	dashboards *service.CacheService
}

func newRoleService(t *testing.T) (*service.RoleService, roleMocks) {
	ctrl := gomock.NewController(t)
	m := roleMocks{
		roles:      mocks.NewMockRoleRepositoryIface(ctrl),
		users:      mocks.NewMockUserRepositoryIface(ctrl),
		officers:   mocks.NewMockOfficerRepositoryIface(ctrl),
		history:    mocks.NewMockHistoryRepositoryIface(ctrl),
		recorder:   mocks.NewMockRecorder(ctrl),
		dashboards: newDashboardCache(),
	}
	svc := service.NewRoleService(passthroughTx(ctrl), m.roles, m.users, m.officers, m.history, m.recorder, m.dashboards)
	return svc, m
}

func TestRoleAssign(t *testing.T) {
	role := &model.Role{ID: uuid.New(), Name: "Treasurer", Slug: "treasurer"}
	alice := &model.User{ID: uuid.New(), Email: "alice@example.org", FirstName: "Alice", LastName: "Ng"}
	bob := &model.User{ID: uuid.New(), Email: "bob@example.org", FirstName: "Bob"}

	t.Run("assigns every user and logs each", func(t *testing.T) {
		svc, m := newRoleService(t)
		actor := testActor()
		seedDashboards(t, m.dashboards, alice.ID, bob.ID)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.roles.EXPECT().HasChildren(gomock.Any(), role.ID).Return(false, nil)
		m.users.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		m.users.EXPECT().FindByID(gomock.Any(), bob.ID).Return(bob, nil)
		m.roles.EXPECT().Assign(gomock.Any(), role.ID, alice.ID).Return(true, nil)
		m.roles.EXPECT().Assign(gomock.Any(), role.ID, bob.ID).Return(true, nil)

		var opened []*model.OfficerHistory
		m.history.EXPECT().
			Open(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *model.OfficerHistory) error {
				opened = append(opened, h)
				return nil
			}).
			Times(2)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries).Times(2)

		logs, err := svc.Assign(context.Background(), actor, service.AssignRoleInput{
			RoleID:  role.ID,
			UserIDs: []uuid.UUID{alice.ID, bob.ID},
		})
		require.NoError(t, err)
		assert.Len(t, logs, 2)

		require.Len(t, opened, 2)
		for _, h := range opened {
			assert.Equal(t, model.KindRole, h.EntityType)
			assert.Equal(t, role.ID, h.EntityID)
			assert.Equal(t, model.LevelNational, h.Level)
			assert.Nil(t, h.EndDate)
		}

		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, model.ActionAssigned, e.Action)
			assert.Equal(t, model.RoleSubject(role.ID), e.Subject)
			assert.Equal(t, actor.UserID, e.Actor.UserID)
		}
		assert.Equal(t, map[string]interface{}{
			"Treasurer": map[string]interface{}{
				"user":    "Alice Ng",
				"user_id": alice.ID.String(),
				"status":  "assigned",
			},
		}, entries[0].NewValues)
		assert.Equal(t, "unassigned", entries[0].OldValues["Treasurer"].(map[string]interface{})["status"])
		assert.False(t, dashboardCached(t, m.dashboards, alice.ID))
		assert.False(t, dashboardCached(t, m.dashboards, bob.ID))
	})

	t.Run("existing assignment keeps history", func(t *testing.T) {
		svc, m := newRoleService(t)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.roles.EXPECT().HasChildren(gomock.Any(), role.ID).Return(false, nil)
		m.users.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		m.roles.EXPECT().Assign(gomock.Any(), role.ID, alice.ID).Return(false, nil)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries)

		logs, err := svc.Assign(context.Background(), testActor(), service.AssignRoleInput{
			RoleID:  role.ID,
			UserIDs: []uuid.UUID{alice.ID, alice.ID},
		})
		require.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, "assigned", entries[0].OldValues["Treasurer"].(map[string]interface{})["status"])
	})

	t.Run("role with children is rejected", func(t *testing.T) {
		svc, m := newRoleService(t)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.roles.EXPECT().HasChildren(gomock.Any(), role.ID).Return(true, nil)

		_, err := svc.Assign(context.Background(), testActor(), service.AssignRoleInput{
			RoleID:  role.ID,
			UserIDs: []uuid.UUID{alice.ID},
		})
		assert.ErrorIs(t, err, domain.ErrRoleNotAssignable)
	})

	t.Run("missing user aborts the batch", func(t *testing.T) {
		svc, m := newRoleService(t)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.roles.EXPECT().HasChildren(gomock.Any(), role.ID).Return(false, nil)
		m.users.EXPECT().FindByID(gomock.Any(), alice.ID).Return(nil, domain.ErrUserNotFound)

		_, err := svc.Assign(context.Background(), testActor(), service.AssignRoleInput{
			RoleID:  role.ID,
			UserIDs: []uuid.UUID{alice.ID, bob.ID},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("empty user list fails validation", func(t *testing.T) {
		svc, _ := newRoleService(t)

		_, err := svc.Assign(context.Background(), testActor(), service.AssignRoleInput{RoleID: role.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "user_ids")
	})

	t.Run("audit failure fails the assignment", func(t *testing.T) {
		svc, m := newRoleService(t)
		seedDashboards(t, m.dashboards, alice.ID)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.roles.EXPECT().HasChildren(gomock.Any(), role.ID).Return(false, nil)
		m.users.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		m.roles.EXPECT().Assign(gomock.Any(), role.ID, alice.ID).Return(true, nil)
		m.history.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil)
		m.recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))

		_, err := svc.Assign(context.Background(), testActor(), service.AssignRoleInput{
			RoleID:  role.ID,
			UserIDs: []uuid.UUID{alice.ID},
		})
		assert.EqualError(t, err, "insert failed")
		assert.True(t, dashboardCached(t, m.dashboards, alice.ID), "rolled back changes keep the cache")
	})
}

func TestRoleDetach(t *testing.T) {
	role := &model.Role{ID: uuid.New(), Name: "Treasurer", Slug: "treasurer"}
	user := &model.User{ID: uuid.New(), Email: "carol@example.org", FirstName: "Carol"}

	t.Run("removes the assignment and closes history", func(t *testing.T) {
		svc, m := newRoleService(t)
		assignment := &model.RoleUser{ID: uuid.New(), RoleID: role.ID, UserID: user.ID}
		seedDashboards(t, m.dashboards, user.ID)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.roles.EXPECT().FindAssignment(gomock.Any(), role.ID, user.ID).Return(assignment, nil)
		m.roles.EXPECT().Unassign(gomock.Any(), assignment).Return(nil)
		m.history.EXPECT().
			CloseLatest(gomock.Any(), repository.HistoryKey{
				EntityType: model.KindRole,
				EntityID:   role.ID,
				UserID:     user.ID,
			}, gomock.Any()).
			Return(true, nil)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries)

		log, err := svc.Detach(context.Background(), testActor(), service.DetachRoleInput{RoleID: role.ID, UserID: user.ID})
		require.NoError(t, err)
		require.NotNil(t, log)
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionRemoved, entries[0].Action)
		assert.Equal(t, "removed", entries[0].NewValues["Treasurer"].(map[string]interface{})["status"])
		assert.False(t, dashboardCached(t, m.dashboards, user.ID))
	})

	t.Run("missing history row is tolerated", func(t *testing.T) {
		svc, m := newRoleService(t)
		assignment := &model.RoleUser{ID: uuid.New(), RoleID: role.ID, UserID: user.ID}

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.roles.EXPECT().FindAssignment(gomock.Any(), role.ID, user.ID).Return(assignment, nil)
		m.roles.EXPECT().Unassign(gomock.Any(), assignment).Return(nil)
		m.history.EXPECT().CloseLatest(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries)

		_, err := svc.Detach(context.Background(), testActor(), service.DetachRoleInput{RoleID: role.ID, UserID: user.ID})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unassigned user is not found and nothing is logged", func(t *testing.T) {
		svc, m := newRoleService(t)

		m.roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.roles.EXPECT().FindAssignment(gomock.Any(), role.ID, user.ID).Return(nil, domain.ErrRoleAssignmentNotFound)

		_, err := svc.Detach(context.Background(), testActor(), service.DetachRoleInput{RoleID: role.ID, UserID: user.ID})
		assert.ErrorIs(t, err, domain.ErrRoleAssignmentNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRoleHistory(t *testing.T) {
	id := uuid.New()
	page := repository.PageRequest{Page: 1, PerPage: 15}

	t.Run("national reads role history", func(t *testing.T) {
		svc, m := newRoleService(t)

		m.roles.EXPECT().FindByID(gomock.Any(), id).Return(&model.Role{ID: id}, nil)
		m.history.EXPECT().
			Closed(gomock.Any(), repository.HistoryFilter{
				EntityType: model.KindRole,
				EntityID:   id,
				Level:      model.LevelNational,
			}, page).
			Return(&repository.Page[model.OfficerHistory]{}, nil)

		_, err := svc.History(context.Background(), id, service.HistoryQuery{}, page)
		require.NoError(t, err)
	})

	t.Run("affiliate reads position history", func(t *testing.T) {
		svc, m := newRoleService(t)
		affiliateID := uuid.New()

		m.officers.EXPECT().FindPosition(gomock.Any(), id).Return(&model.OfficerPosition{ID: id}, nil)
		m.history.EXPECT().
			Closed(gomock.Any(), repository.HistoryFilter{
				EntityType:  model.KindOfficerPosition,
				EntityID:    id,
				Level:       model.LevelAffiliate,
				AffiliateID: &affiliateID,
			}, page).
			Return(&repository.Page[model.OfficerHistory]{}, nil)

		_, err := svc.History(context.Background(), id, service.HistoryQuery{Type: "Affiliate", AffiliateID: &affiliateID}, page)
		require.NoError(t, err)
	})

	t.Run("affiliate without id is rejected", func(t *testing.T) {
		svc, _ := newRoleService(t)

		_, err := svc.History(context.Background(), id, service.HistoryQuery{Type: "affiliate"}, page)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		svc, _ := newRoleService(t)

		_, err := svc.History(context.Background(), id, service.HistoryQuery{Type: "regional"}, page)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestRoleSelectable(t *testing.T) {
	svc, m := newRoleService(t)

	rootID := uuid.New()
	m.roles.EXPECT().FindAll(gomock.Any()).Return([]model.Role{
		{ID: rootID, Name: "National", Order: 1},
		{ID: uuid.New(), Name: "President", ParentRoleID: &rootID, Order: 1},
		{ID: uuid.New(), Name: "Auditor", Order: 2},
	}, nil)

	roles, err := svc.Selectable(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"President", "Auditor"}, names)
}
