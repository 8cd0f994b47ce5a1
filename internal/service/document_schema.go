package service

import (
	"strings"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
)

const dateLayout = "2006-01-02"

// DocumentFields carries submitted document attributes. A nil field was not
// submitted; an empty string clears the value on update.
type DocumentFields struct {
	Title          *string `json:"title"`
	Type           *string `json:"type"`
	CategoryGroup  *string `json:"category_group"`
	Description    *string `json:"description"`
	Status         *string `json:"status"`
	ExpirationDate *string `json:"expiration_date"`
	EffectiveDate  *string `json:"effective_date"`
	AwardDate      *string `json:"award_date"`
	Arbitrator     *string `json:"arbitrator"`
	Outcome        *string `json:"outcome"`
	IsArchived     *bool   `json:"is_archived"`
	IsPublic       *bool   `json:"is_public"`
}

// fieldGroup is a set of type-specific document fields.
type fieldGroup int

const (
	contractGroup fieldGroup = 1 << iota
	arbitrationGroup
)

var groupFields = map[fieldGroup][]string{
	contractGroup:    {"status", "expiration_date", "effective_date"},
	arbitrationGroup: {"award_date", "arbitrator", "outcome"},
}

// documentSchema is the variant of the document schema for one type.
type documentSchema struct {
	allowed  fieldGroup
	required []string
}

var documentSchemas = map[model.DocumentType]documentSchema{
	model.DocumentContract: {
		allowed:  contractGroup,
		required: []string{"status", "expiration_date", "effective_date"},
	},
	model.DocumentArbitration: {
		allowed:  arbitrationGroup,
		required: []string{"award_date", "arbitrator"},
	},
	model.DocumentMOU:      {},
	model.DocumentBylaws:   {},
	model.DocumentResearch: {},
	model.DocumentGeneral:  {},
}

var contractStatuses = map[string]bool{
	model.ContractActive:     true,
	model.ContractExpired:    true,
	model.ContractPending:    true,
	model.ContractTerminated: true,
}

func schemaFor(t model.DocumentType) (documentSchema, bool) {
	s, ok := documentSchemas[t]
	return s, ok
}

// submitted returns the non-empty type-specific values in f by field name.
func (f DocumentFields) submitted() map[string]bool {
	present := func(p *string) bool { return p != nil && strings.TrimSpace(*p) != "" }
	return map[string]bool{
		"status":          present(f.Status),
		"expiration_date": present(f.ExpirationDate),
		"effective_date":  present(f.EffectiveDate),
		"award_date":      present(f.AwardDate),
		"arbitrator":      present(f.Arbitrator),
		"outcome":         present(f.Outcome),
	}
}

// checkProhibited rejects submitted fields that the schema does not allow.
func (s documentSchema) checkProhibited(t model.DocumentType, f DocumentFields, ve *domain.ValidationError) {
	submitted := f.submitted()
	for group, fields := range groupFields {
		if s.allowed&group != 0 {
			continue
		}
		for _, name := range fields {
			if submitted[name] {
				ve.Add(name, "is not allowed for "+string(t)+" documents")
			}
		}
	}
}

// clearDisallowed empties the fields the schema does not allow.
func (s documentSchema) clearDisallowed(doc *model.Document) {
	if s.allowed&contractGroup == 0 {
		doc.Status, doc.ExpirationDate, doc.EffectiveDate = nil, nil, nil
	}
	if s.allowed&arbitrationGroup == 0 {
		doc.AwardDate, doc.Arbitrator, doc.Outcome = nil, nil, nil
	}
}

// checkDocument validates a complete document against its type's variant.
func (s documentSchema) checkDocument(doc *model.Document, ve *domain.ValidationError) {
	if strings.TrimSpace(doc.Title) == "" {
		ve.Add("title", "is required")
	}

	set := map[string]bool{
		"status":          doc.Status != nil,
		"expiration_date": doc.ExpirationDate != nil,
		"effective_date":  doc.EffectiveDate != nil,
		"award_date":      doc.AwardDate != nil,
		"arbitrator":      doc.Arbitrator != nil,
		"outcome":         doc.Outcome != nil,
	}
	for _, name := range s.required {
		if !set[name] {
			ve.Add(name, "is required for "+string(doc.Type)+" documents")
		}
	}
	for group, fields := range groupFields {
		if s.allowed&group != 0 {
			continue
		}
		for _, name := range fields {
			if set[name] {
				ve.Add(name, "is not allowed for "+string(doc.Type)+" documents")
			}
		}
	}

	if doc.Status != nil && !contractStatuses[*doc.Status] {
		ve.Add("status", "must be one of: active expired pending terminated")
	}
}

// applyDocumentFields copies submitted values onto doc. Empty strings clear
// optional values.
func applyDocumentFields(doc *model.Document, f DocumentFields, ve *domain.ValidationError) {
	if f.Title != nil {
		doc.Title = strings.TrimSpace(*f.Title)
	}
	if f.CategoryGroup != nil {
		doc.CategoryGroup = strings.TrimSpace(*f.CategoryGroup)
	}
	if f.Description != nil {
		doc.Description = strings.TrimSpace(*f.Description)
	}
	if f.IsArchived != nil {
		doc.IsArchived = *f.IsArchived
	}
	if f.IsPublic != nil {
		doc.IsPublic = *f.IsPublic
	}

	setString(&doc.Status, f.Status, true)
	setString(&doc.Arbitrator, f.Arbitrator, false)
	setString(&doc.Outcome, f.Outcome, false)
	setDate(&doc.ExpirationDate, f.ExpirationDate, "expiration_date", ve)
	setDate(&doc.EffectiveDate, f.EffectiveDate, "effective_date", ve)
	setDate(&doc.AwardDate, f.AwardDate, "award_date", ve)
}

func setString(dst **string, src *string, lower bool) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if lower {
		v = strings.ToLower(v)
	}
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}

func setDate(dst **time.Time, src *string, field string, ve *domain.ValidationError) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}

	t, err := time.Parse(dateLayout, v)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, v); err != nil {
			ve.Add(field, "must be a date in YYYY-MM-DD format")
			return
		}
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	*dst = &t
}

// parseDocumentType reads the discriminant before anything else.
func parseDocumentType(raw *string) (model.DocumentType, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return "", domain.FieldError("type", "is required")
	}
	t := model.DocumentType(strings.ToLower(strings.TrimSpace(*raw)))
	if !t.Valid() {
		return "", domain.FieldError("type", "must be one of: contract arbitration mou bylaws research general")
	}
	return t, nil
}
