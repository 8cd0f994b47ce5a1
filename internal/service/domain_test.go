package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/mocks"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDomainService(t *testing.T) (*service.DomainService, *mocks.MockDomainRepositoryIface) {
	ctrl := gomock.NewController(t)
	domains := mocks.NewMockDomainRepositoryIface(ctrl)
	return service.NewDomainService(passthroughTx(ctrl), domains), domains
}

func TestDomainCreate(t *testing.T) {
	t.Run("normalizes and infers the type", func(t *testing.T) {
		svc, domains := newDomainService(t)

		domains.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		d, err := svc.Create(context.Background(), service.CreateDomainInput{Domain: " @Example.ORG. ", IsBlacklisted: true})
		require.NoError(t, err)
		assert.Equal(t, "example.org", d.Domain)
		assert.Equal(t, model.DomainTypeDomain, d.Type)
		assert.True(t, d.IsBlacklisted)
	})

	t.Run("bare label is a tld", func(t *testing.T) {
		svc, domains := newDomainService(t)

		domains.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		d, err := svc.Create(context.Background(), service.CreateDomainInput{Domain: ".XYZ"})
		require.NoError(t, err)
		assert.Equal(t, "xyz", d.Domain)
		assert.Equal(t, model.DomainTypeTLD, d.Type)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, domains := newDomainService(t)

		domains.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDomainExists)

		_, err := svc.Create(context.Background(), service.CreateDomainInput{Domain: "example.org"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("invalid value", func(t *testing.T) {
		for _, raw := range []string{"exa mple.org", "under_score.org", "-leading.org", "example..org", " . "} {
			t.Run(raw, func(t *testing.T) {
				svc, _ := newDomainService(t)

				_, err := svc.Create(context.Background(), service.CreateDomainInput{Domain: raw})
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			})
		}
	})
}

func TestDomainBlock(t *testing.T) {
	svc, domains := newDomainService(t)
	affiliateID := uuid.New()

	domains.EXPECT().
		Blacklist(gomock.Any(), "spam.test", &affiliateID).
		Return(&model.Domain{ID: uuid.New(), Domain: "spam.test", IsBlacklisted: true}, nil)
	domains.EXPECT().
		Blacklist(gomock.Any(), "ru", &affiliateID).
		Return(&model.Domain{ID: uuid.New(), Domain: "ru", Type: model.DomainTypeTLD, IsBlacklisted: true}, nil)

	blocked, err := svc.Block(context.Background(), service.BlockDomainsInput{
		Domains:     []string{"Spam.test", "spam.test", ".ru"},
		AffiliateID: &affiliateID,
	})
	require.NoError(t, err)
	assert.Len(t, blocked, 2)

	t.Run("one invalid entry rejects the batch", func(t *testing.T) {
		svc, _ := newDomainService(t)

		_, err := svc.Block(context.Background(), service.BlockDomainsInput{Domains: []string{"ok.test", "bad!.test"}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDomainIsBlocked(t *testing.T) {
	t.Run("checks the domain and its parents", func(t *testing.T) {
		svc, domains := newDomainService(t)

		domains.EXPECT().
			AnyBlacklisted(gomock.Any(), []string{"mail.example.co.uk", "example.co.uk", "co.uk", "uk"}, nil).
			Return(true, nil)

		blocked, err := svc.IsBlocked(context.Background(), "a@mail.example.co.uk", nil)
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("address without domain", func(t *testing.T) {
		svc, _ := newDomainService(t)

		blocked, err := svc.IsBlocked(context.Background(), "nobody", nil)
		require.NoError(t, err)
		assert.False(t, blocked)
	})
}

func TestDomainDelete(t *testing.T) {
	svc, domains := newDomainService(t)
	id := uuid.New()

	domains.EXPECT().DeleteByIDs(gomock.Any(), []uuid.UUID{id}).Return(int64(1), nil)

	n, err := svc.Delete(context.Background(), service.DeleteDomainsInput{IDs: []uuid.UUID{id, id}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
