package main

import (
	"bytes"
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRoles(t *testing.T) {
	tree := []model.Role{
		{Name: "Officers", Slug: "officers", Children: []model.Role{
			{Name: "President", Slug: "president"},
			{Name: "Treasurer", Slug: "treasurer"},
		}},
		{Name: "National Admin", Slug: "national-admin"},
	}

	var buf bytes.Buffer
	printRoles(&buf, tree, 0)

	assert.Equal(t, "Officers (officers)\n"+
		"  President (president) *\n"+
		"  Treasurer (treasurer) *\n"+
		"National Admin (national-admin) *\n", buf.String())
}

func TestParseAffiliate(t *testing.T) {
	affiliateID = ""
	id, err := parseAffiliate()
	require.NoError(t, err)
	assert.Nil(t, id)

	affiliateID = "not-a-uuid"
	_, err = parseAffiliate()
	assert.Error(t, err)

	affiliateID = "7f1f6f7e-4c55-4b8e-9a59-0f2a9d1c3e11"
	id, err = parseAffiliate()
	require.NoError(t, err)
	assert.Equal(t, affiliateID, id.String())
	affiliateID = ""
}
