package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoleTree(t *testing.T) {
	national := Role{ID: uuid.New(), Name: "National", Order: 2}
	affiliate := Role{ID: uuid.New(), Name: "Affiliate", Order: 1}
	treasurer := Role{ID: uuid.New(), Name: "Treasurer", ParentRoleID: &national.ID}
	chair := Role{ID: uuid.New(), Name: "Chair", ParentRoleID: &national.ID}
	orphanParent := uuid.New()
	orphan := Role{ID: uuid.New(), Name: "Orphan", ParentRoleID: &orphanParent, Order: 3}

	tree := BuildRoleTree([]Role{treasurer, national, orphan, chair, affiliate})

	require.Len(t, tree, 3)
	assert.Equal(t, "Affiliate", tree[0].Name)
	assert.Equal(t, "National", tree[1].Name)
	assert.Equal(t, "Orphan", tree[2].Name)

	require.Len(t, tree[1].Children, 2)
	assert.Equal(t, "Chair", tree[1].Children[0].Name)
	assert.Equal(t, "Treasurer", tree[1].Children[1].Name)

	var leaves []string
	for _, r := range LeafRoles(tree) {
		leaves = append(leaves, r.Name)
	}
	assert.Equal(t, []string{"Affiliate", "Chair", "Treasurer", "Orphan"}, leaves)
}

func TestBuildRoleTreeCycle(t *testing.T) {
	a := Role{ID: uuid.New(), Name: "A"}
	b := Role{ID: uuid.New(), Name: "B", ParentRoleID: &a.ID}
	a.ParentRoleID = &b.ID

	assert.Empty(t, BuildRoleTree([]Role{a, b}))
}

func TestEmailDomainCandidates(t *testing.T) {
	tests := []struct {
		email string
		want  []string
	}{
		{"a@mail.example.co.uk", []string{"mail.example.co.uk", "example.co.uk", "co.uk", "uk"}},
		{"B@Example.ORG", []string{"example.org", "org"}},
		{"odd@host.", []string{"host"}},
		{"no-at-sign", nil},
		{"trailing@", nil},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailDomainCandidates(tt.email))
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "example.org", NormalizeDomain("  @Example.Org. "))
	assert.Equal(t, "com", NormalizeDomain(".COM"))
	assert.Equal(t, DomainTypeTLD, InferDomainType("com"))
	assert.Equal(t, DomainTypeDomain, InferDomainType("example.com"))
}

func TestAuditableKind(t *testing.T) {
	k, err := ParseAuditableKind(" Officer_Position ")
	require.NoError(t, err)
	assert.Equal(t, KindOfficerPosition, k)

	_, err = ParseAuditableKind("vehicle")
	assert.Error(t, err)

	id := uuid.New()
	assert.Equal(t, "document:"+id.String(), DocumentSubject(id).String())
}

func TestOfficerIsCurrent(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&AffiliateOfficer{}).IsCurrent(now))
	assert.True(t, (&AffiliateOfficer{EndDate: &future}).IsCurrent(now))
	assert.False(t, (&AffiliateOfficer{EndDate: &past}).IsCurrent(now))
	assert.False(t, (&AffiliateOfficer{IsVacant: true}).IsCurrent(now))
}

func TestActivityLogIsAppendOnly(t *testing.T) {
	l := &ActivityLog{}
	assert.Error(t, l.BeforeUpdate(nil))
	assert.Error(t, l.BeforeDelete(nil))
}
