package service

import (
	"context"
	"errors"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OfficerService struct {
	tx         repository.TransactorIface
	officers   repository.OfficerRepositoryIface
	members    repository.MemberRepositoryIface
	affiliates repository.AffiliateRepositoryIface
	history    repository.HistoryRepositoryIface
	recorder   audit.Recorder
	cache      *CacheService
	validate   *validator.Validate
	now        func() time.Time
}

func NewOfficerService(
	tx repository.TransactorIface,
	officers repository.OfficerRepositoryIface,
	members repository.MemberRepositoryIface,
	affiliates repository.AffiliateRepositoryIface,
	history repository.HistoryRepositoryIface,
	recorder audit.Recorder,
	cache *CacheService,
) *OfficerService {
	return &OfficerService{
		tx:         tx,
		officers:   officers,
		members:    members,
		affiliates: affiliates,
		history:    history,
		recorder:   recorder,
		cache:      cache,
		validate:   newValidator(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type AssignOfficerInput struct {
	AffiliateID uuid.UUID `json:"affiliate_id" validate:"required"`
	PositionID  uuid.UUID `json:"position_id" validate:"required"`
	MemberID    uuid.UUID `json:"member_id" validate:"required"`
}

// Assign makes the member the holder of the position, ending the current
// holder's term first. Re-assigning the current holder changes nothing.
func (s *OfficerService) Assign(ctx context.Context, actor audit.Actor, input AssignOfficerInput) (*model.AffiliateOfficer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.NewValidationError(err)
	}

	var (
		officer *model.AffiliateOfficer
		touched []uuid.UUID
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		position, err := s.officers.FindPosition(ctx, input.PositionID)
		if err != nil {
			return err
		}
		member, err := s.members.FindByID(ctx, input.MemberID)
		if err != nil {
			return err
		}
		if member.AffiliateID == nil || *member.AffiliateID != input.AffiliateID {
			return domain.FieldError("member_id", "must belong to the affiliate")
		}

		now := s.now()
		old := map[string]interface{}{position.Name: nil}

		current, err := s.officers.FindCurrent(ctx, input.AffiliateID, position.ID, now)
		switch {
		case err == nil:
			if current.MemberID != nil && *current.MemberID == member.ID {
				officer = current
				return nil
			}
			if err := s.endTerm(ctx, current, now); err != nil {
				return err
			}
			touched = append(touched, memberUserID(current.Member))
			old = officerValues(position.Name, current.Member, statusAssigned)
		case !errors.Is(err, domain.ErrOfficerNotFound):
			return err
		}

		officer = &model.AffiliateOfficer{
			AffiliateID: input.AffiliateID,
			PositionID:  position.ID,
			MemberID:    &member.ID,
			StartDate:   now,
		}
		if err := s.officers.Create(ctx, officer); err != nil {
			return err
		}
		officer.Position = position
		officer.Member = member
		touched = append(touched, memberUserID(member))

		if member.UserID != nil {
			if err := s.history.Open(ctx, &model.OfficerHistory{
				EntityType:  model.KindOfficerPosition,
				EntityID:    position.ID,
				UserID:      *member.UserID,
				AffiliateID: &input.AffiliateID,
				StartDate:   now,
				Level:       model.LevelAffiliate,
			}); err != nil {
				return err
			}
		}

		_, err = s.recorder.Record(ctx, audit.Entry{
			Actor:        actor,
			AffiliateID:  &input.AffiliateID,
			Action:       model.ActionAssigned,
			Subject:      model.OfficerPositionSubject(position.ID),
			SubjectLabel: position.Name,
			OldValues:    old,
			NewValues:    officerValues(position.Name, member, statusAssigned),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboards(ctx, touched...)
	return officer, nil
}

// End closes a current term. Ending a term twice fails with
// domain.ErrOfficerNotActive.
func (s *OfficerService) End(ctx context.Context, actor audit.Actor, affiliateID, officerID uuid.UUID) (*model.AffiliateOfficer, error) {
	var officer *model.AffiliateOfficer
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		officer, err = s.officers.FindByID(ctx, affiliateID, officerID)
		if err != nil {
			return err
		}

		now := s.now()
		if !officer.IsCurrent(now) {
			return domain.ErrOfficerNotActive
		}
		if err := s.endTerm(ctx, officer, now); err != nil {
			return err
		}

		label := "Officer"
		if officer.Position != nil {
			label = officer.Position.Name
		}
		_, err = s.recorder.Record(ctx, audit.Entry{
			Actor:        actor,
			AffiliateID:  &affiliateID,
			Action:       model.ActionRemoved,
			Subject:      model.OfficerPositionSubject(officer.PositionID),
			SubjectLabel: label,
			OldValues:    officerValues(label, officer.Member, statusAssigned),
			NewValues:    officerValues(label, officer.Member, statusRemoved),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateDashboards(ctx, memberUserID(officer.Member))
	return officer, nil
}

// Leaders returns the current, non-vacant officers of an affiliate in
// position order.
func (s *OfficerService) Leaders(ctx context.Context, affiliateID uuid.UUID) ([]model.AffiliateOfficer, error) {
	if _, err := s.affiliates.FindByID(ctx, affiliateID); err != nil {
		return nil, err
	}
	return s.officers.Leaders(ctx, affiliateID, s.now())
}

func (s *OfficerService) endTerm(ctx context.Context, officer *model.AffiliateOfficer, at time.Time) error {
	if err := s.officers.End(ctx, officer, at); err != nil {
		return err
	}
	if officer.Member == nil || officer.Member.UserID == nil {
		return nil
	}

	_, err := s.history.CloseLatest(ctx, repository.HistoryKey{
		EntityType:  model.KindOfficerPosition,
		EntityID:    officer.PositionID,
		UserID:      *officer.Member.UserID,
		AffiliateID: &officer.AffiliateID,
	}, at)
	return err
}

func memberUserID(member *model.Member) uuid.UUID {
	if member == nil || member.UserID == nil {
		return uuid.Nil
	}
	return *member.UserID
}

func officerValues(label string, member *model.Member, status string) map[string]interface{} {
	if member == nil {
		return map[string]interface{}{label: nil}
	}
	return map[string]interface{}{
		label: map[string]interface{}{
			"member":    member.DisplayName(),
			"member_id": member.ID.String(),
			"status":    status,
		},
	}
}
