package service_test

import (
	"context"
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
	"go.uber.org/mock/gomock"
)

type officerMocks struct {
	officers   *mocks.MockOfficerRepositoryIface
	members    *mocks.MockMemberRepositoryIface
	affiliates *mocks.MockAffiliateRepositoryIface
	history    *mocks.MockHistoryRepositoryIface
	recorder   *mocks.MockRecorder
	dashboards *service.CacheService
}

func newOfficerService(t *testing.T) (*service.OfficerService, officerMocks) {
	ctrl := gomock.NewController(t)
	m := officerMocks{
		officers:   mocks.NewMockOfficerRepositoryIface(ctrl),
		members:    mocks.NewMockMemberRepositoryIface(ctrl),
		affiliates: mocks.NewMockAffiliateRepositoryIface(ctrl),
		history:    mocks.NewMockHistoryRepositoryIface(ctrl),
		recorder:   mocks.NewMockRecorder(ctrl),
		dashboards: newDashboardCache(),
	}
	return service.NewOfficerService(passthroughTx(ctrl), m.officers, m.members, m.affiliates, m.history, m.recorder, m.dashboards), m
}

func TestOfficerAssign(t *testing.T) {
	affiliateID := uuid.New()
	position := &model.OfficerPosition{ID: uuid.New(), Name: "President"}

	newMember := func(first string) *model.Member {
		userID := uuid.New()
		return &model.Member{ID: uuid.New(), AffiliateID: &affiliateID, UserID: &userID, FirstName: first, LastName: "Diaz"}
	}

	t.Run("ends the current holder before assigning", func(t *testing.T) {
		svc, m := newOfficerService(t)
		incoming := newMember("Dana")
		outgoing := newMember("Eli")
		current := &model.AffiliateOfficer{
			ID:          uuid.New(),
			AffiliateID: affiliateID,
			PositionID:  position.ID,
			MemberID:    &outgoing.ID,
			StartDate:   time.Now().AddDate(-1, 0, 0),
			Member:      outgoing,
		}
		seedDashboards(t, m.dashboards, *incoming.UserID, *outgoing.UserID)

		m.officers.EXPECT().FindPosition(gomock.Any(), position.ID).Return(position, nil)
		m.members.EXPECT().FindByID(gomock.Any(), incoming.ID).Return(incoming, nil)
		m.officers.EXPECT().FindCurrent(gomock.Any(), affiliateID, position.ID, gomock.Any()).Return(current, nil)

		gomock.InOrder(
			m.officers.EXPECT().End(gomock.Any(), current, gomock.Any()).Return(nil),
			m.history.EXPECT().
				CloseLatest(gomock.Any(), repository.HistoryKey{
					EntityType:  model.KindOfficerPosition,
					EntityID:    position.ID,
					UserID:      *outgoing.UserID,
					AffiliateID: &affiliateID,
				}, gomock.Any()).
				Return(true, nil),
			m.officers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			m.history.EXPECT().
				Open(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, h *model.OfficerHistory) error {
					assert.Equal(t, *incoming.UserID, h.UserID)
					assert.Equal(t, model.LevelAffiliate, h.Level)
					assert.Equal(t, &affiliateID, h.AffiliateID)
					return nil
				}),
		)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries)

		officer, err := svc.Assign(context.Background(), testActor(), service.AssignOfficerInput{
			AffiliateID: affiliateID,
			PositionID:  position.ID,
			MemberID:    incoming.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, &incoming.ID, officer.MemberID)
		assert.Nil(t, officer.EndDate)

		require.Len(t, entries, 1)
		assert.Equal(t, model.OfficerPositionSubject(position.ID), entries[0].Subject)
		assert.Equal(t, &affiliateID, entries[0].AffiliateID)
		assert.Equal(t, "Eli Diaz", entries[0].OldValues["President"].(map[string]interface{})["member"])
		assert.Equal(t, "Dana Diaz", entries[0].NewValues["President"].(map[string]interface{})["member"])
		assert.False(t, dashboardCached(t, m.dashboards, *incoming.UserID))
		assert.False(t, dashboardCached(t, m.dashboards, *outgoing.UserID))
	})

	t.Run("vacant position", func(t *testing.T) {
		svc, m := newOfficerService(t)
		incoming := newMember("Fay")
		incoming.UserID = nil

		m.officers.EXPECT().FindPosition(gomock.Any(), position.ID).Return(position, nil)
		m.members.EXPECT().FindByID(gomock.Any(), incoming.ID).Return(incoming, nil)
		m.officers.EXPECT().FindCurrent(gomock.Any(), affiliateID, position.ID, gomock.Any()).Return(nil, domain.ErrOfficerNotFound)
		m.officers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries)

		_, err := svc.Assign(context.Background(), testActor(), service.AssignOfficerInput{
			AffiliateID: affiliateID,
			PositionID:  position.ID,
			MemberID:    incoming.ID,
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, map[string]interface{}{"President": nil}, entries[0].OldValues)
	})

	t.Run("current holder is left alone", func(t *testing.T) {
		svc, m := newOfficerService(t)
		holder := newMember("Gus")
		current := &model.AffiliateOfficer{ID: uuid.New(), AffiliateID: affiliateID, PositionID: position.ID, MemberID: &holder.ID}

		m.officers.EXPECT().FindPosition(gomock.Any(), position.ID).Return(position, nil)
		m.members.EXPECT().FindByID(gomock.Any(), holder.ID).Return(holder, nil)
		m.officers.EXPECT().FindCurrent(gomock.Any(), affiliateID, position.ID, gomock.Any()).Return(current, nil)

		officer, err := svc.Assign(context.Background(), testActor(), service.AssignOfficerInput{
			AffiliateID: affiliateID,
			PositionID:  position.ID,
			MemberID:    holder.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, current.ID, officer.ID)
	})

	t.Run("member from another affiliate is rejected", func(t *testing.T) {
		svc, m := newOfficerService(t)
		other := uuid.New()
		outsider := &model.Member{ID: uuid.New(), AffiliateID: &other}

		m.officers.EXPECT().FindPosition(gomock.Any(), position.ID).Return(position, nil)
		m.members.EXPECT().FindByID(gomock.Any(), outsider.ID).Return(outsider, nil)

		_, err := svc.Assign(context.Background(), testActor(), service.AssignOfficerInput{
			AffiliateID: affiliateID,
			PositionID:  position.ID,
			MemberID:    outsider.ID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOfficerEnd(t *testing.T) {
	affiliateID := uuid.New()

	t.Run("ended term cannot be ended again", func(t *testing.T) {
		svc, m := newOfficerService(t)
		ended := time.Now().Add(-time.Hour)
		officer := &model.AffiliateOfficer{ID: uuid.New(), AffiliateID: affiliateID, PositionID: uuid.New(), EndDate: &ended}

		m.officers.EXPECT().FindByID(gomock.Any(), affiliateID, officer.ID).Return(officer, nil)

		_, err := svc.End(context.Background(), testActor(), affiliateID, officer.ID)
		assert.ErrorIs(t, err, domain.ErrOfficerNotActive)
	})

	t.Run("current term is ended and logged", func(t *testing.T) {
		svc, m := newOfficerService(t)
		userID := uuid.New()
		member := &model.Member{ID: uuid.New(), UserID: &userID, FirstName: "Hana", LastName: "Ito"}
		seedDashboards(t, m.dashboards, userID)
		officer := &model.AffiliateOfficer{
			ID:          uuid.New(),
			AffiliateID: affiliateID,
			PositionID:  uuid.New(),
			MemberID:    &member.ID,
			Member:      member,
			Position:    &model.OfficerPosition{Name: "Secretary"},
		}

		m.officers.EXPECT().FindByID(gomock.Any(), affiliateID, officer.ID).Return(officer, nil)
		m.officers.EXPECT().End(gomock.Any(), officer, gomock.Any()).Return(nil)
		m.history.EXPECT().CloseLatest(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		var entries []audit.Entry
		recordEntries(m.recorder, &entries)

		_, err := svc.End(context.Background(), testActor(), affiliateID, officer.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionRemoved, entries[0].Action)
		assert.Equal(t, "Secretary", entries[0].SubjectLabel)
		assert.False(t, dashboardCached(t, m.dashboards, userID))
	})
}

func TestOfficerLeaders(t *testing.T) {
	t.Run("current officers", func(t *testing.T) {
		svc, m := newOfficerService(t)
		affiliateID := uuid.New()

		m.affiliates.EXPECT().FindByID(gomock.Any(), affiliateID).Return(&model.Affiliate{ID: affiliateID}, nil)
		m.officers.EXPECT().
			Leaders(gomock.Any(), affiliateID, gomock.Any()).
			Return([]model.AffiliateOfficer{{ID: uuid.New(), AffiliateID: affiliateID}}, nil)

		leaders, err := svc.Leaders(context.Background(), affiliateID)
		require.NoError(t, err)
		assert.Len(t, leaders, 1)
	})

	t.Run("unknown affiliate", func(t *testing.T) {
		svc, m := newOfficerService(t)

		m.affiliates.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAffiliateNotFound)

		_, err := svc.Leaders(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
