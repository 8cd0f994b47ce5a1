package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardDocuments = 5
	dashboardActivity  = 10
)

// Dashboard is the per-member summary shown after login.
type Dashboard struct {
	Member          *model.Member            `json:"member"`
	Positions       []model.AffiliateOfficer `json:"positions"`
	Roles           []RoleSummary            `json:"roles"`
	Leaders         []model.AffiliateOfficer `json:"leaders"`
	RecentDocuments []model.DocumentSummary  `json:"recent_documents"`
	RecentActivity  []model.ActivityLog      `json:"recent_activity"`
	Counts          DashboardCounts          `json:"counts"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

type DashboardCounts struct {
	AffiliateMembers int64 `json:"affiliate_members"`
	Leaders          int   `json:"leaders"`
	PublicDocuments  int64 `json:"public_documents"`
}

// DashboardService assembles member dashboards. The queries run
// concurrently and are not a consistent snapshot.
type DashboardService struct {
	members   repository.MemberRepositoryIface
	users     repository.UserRepositoryIface
	officers  repository.OfficerRepositoryIface
	documents repository.DocumentRepositoryIface
	logs      repository.ActivityLogRepositoryIface
	cache     *CacheService
	now       func() time.Time
}

func NewDashboardService(
	members repository.MemberRepositoryIface,
	users repository.UserRepositoryIface,
	officers repository.OfficerRepositoryIface,
	documents repository.DocumentRepositoryIface,
	logs repository.ActivityLogRepositoryIface,
	cache *CacheService,
) *DashboardService {
	return &DashboardService{
		members:   members,
		users:     users,
		officers:  officers,
		documents: documents,
		logs:      logs,
		cache:     cache,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func dashboardKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

// Summary returns the dashboard of the member linked to userID.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	if s.cache != nil {
		var cached Dashboard
		err := s.cache.Get(ctx, dashboardKey(userID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "Dashboard cache read failed", "error", err, "userID", userID)
		}
	}

	member, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	d := &Dashboard{
		Member:          member,
		Positions:       []model.AffiliateOfficer{},
		Roles:           []RoleSummary{},
		Leaders:         []model.AffiliateOfficer{},
		RecentDocuments: []model.DocumentSummary{},
		RecentActivity:  []model.ActivityLog{},
		GeneratedAt:     now,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		positions, err := s.officers.CurrentForMember(gctx, member.ID, now)
		if err != nil {
			return err
		}
		d.Positions = positions
		return nil
	})

	g.Go(func() error {
		user, err := s.users.FindWithAccess(gctx, userID)
		if err != nil {
			return err
		}
		roles := make([]RoleSummary, 0, len(user.Roles))
		for _, r := range user.Roles {
			roles = append(roles, RoleSummary{ID: r.ID, Name: r.Name, Slug: r.Slug})
		}
		d.Roles = roles
		return nil
	})

	if member.AffiliateID != nil {
		affiliateID := *member.AffiliateID

		g.Go(func() error {
			leaders, err := s.officers.Leaders(gctx, affiliateID, now)
			if err != nil {
				return err
			}
			d.Leaders = leaders
			d.Counts.Leaders = len(leaders)
			return nil
		})

		g.Go(func() error {
			count, err := s.members.CountByAffiliate(gctx, affiliateID)
			if err != nil {
				return err
			}
			d.Counts.AffiliateMembers = count
			return nil
		})
	}

	g.Go(func() error {
		docs, err := s.documents.RecentPublic(gctx, dashboardDocuments)
		if err != nil {
			return err
		}
		d.RecentDocuments = docs
		return nil
	})

	g.Go(func() error {
		count, err := s.documents.CountPublic(gctx)
		if err != nil {
			return err
		}
		d.Counts.PublicDocuments = count
		return nil
	})

	g.Go(func() error {
		subject := model.MemberSubject(member.ID)
		page, err := s.logs.Query(gctx, repository.ActivityLogFilter{Subject: &subject}, repository.PageRequest{
			Page:    1,
			PerPage: dashboardActivity,
		})
		if err != nil {
			return err
		}
		d.RecentActivity = page.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardKey(userID), d); err != nil {
			slog.WarnContext(ctx, "Dashboard cache write failed", "error", err, "userID", userID)
		}
	}
	return d, nil
}
