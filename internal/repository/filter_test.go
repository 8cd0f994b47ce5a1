package repository

import (
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b", " ,c,"))
	assert.Nil(t, SplitList("", " , "))
}

func TestDocumentFilterScope(t *testing.T) {
	public := true
	f := DocumentFilter{
		Search:   "wage",
		Types:    []model.DocumentType{model.DocumentContract, model.DocumentArbitration},
		IsPublic: &public,
	}

	var docs []model.Document
	stmt := documentSort.Apply(dryRun(t).Model(&model.Document{}).Scopes(f.Scope), PageRequest{}).Find(&docs).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "documents.content_extract ILIKE $4")
	assert.Contains(t, sql, "documents.type IN ($5,$6)")
	assert.Contains(t, sql, "documents.is_public = $7")
	assert.Contains(t, sql, "ORDER BY "+documentUndated+","+documentNearest+" DESC,documents.created_at DESC")
}
