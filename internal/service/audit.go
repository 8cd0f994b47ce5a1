package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xuri/excelize/v2"
)

// Ensure AuditService implements the audit.Recorder interface
var _ audit.Recorder = (*AuditService)(nil)

var auditEntriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "orgadmin",
		Name:      "audit_entries_total",
		Help:      "Activity log entries written.",
	},
	[]string{"action", "auditable_type"},
)

// RegisterMetrics registers the service collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(auditEntriesTotal)
}

var auditActions = map[string]bool{
	model.ActionAssigned: true,
	model.ActionRemoved:  true,
	model.ActionCreated:  true,
	model.ActionUpdated:  true,
	model.ActionDeleted:  true,
}

// AuditService records and reads activity logs
type AuditService struct {
	repo repository.ActivityLogRepositoryIface
}

// NewAuditService creates a new AuditService
func NewAuditService(repo repository.ActivityLogRepositoryIface) *AuditService {
	return &AuditService{
		repo: repo,
	}
}

// Record validates entry and writes it through the transaction carried by
// ctx. A failure must abort the caller's transaction.
func (s *AuditService) Record(ctx context.Context, entry audit.Entry) (*model.ActivityLog, error) {
	ve := &domain.ValidationError{}
	if entry.Actor.UserID == uuid.Nil {
		ve.Add("user_id", "is required")
	}
	if !auditActions[entry.Action] {
		ve.Add("action", "is invalid")
	}
	if !entry.Subject.Kind.Valid() {
		ve.Add("auditable_type", "is invalid")
	}
	if entry.Subject.ID == uuid.Nil {
		ve.Add("auditable_id", "is required")
	}
	if err := ve.OrNil(); err != nil {
		return nil, fmt.Errorf("recording activity: %w", err)
	}

	log := &model.ActivityLog{
		UserID:        entry.Actor.UserID,
		AffiliateID:   entry.AffiliateID,
		Action:        entry.Action,
		AuditableType: entry.Subject.Kind,
		AuditableID:   entry.Subject.ID,
		AuditableName: entry.SubjectLabel,
		OldValues:     entry.OldValues,
		NewValues:     entry.NewValues,
		IPAddress:     entry.Actor.Request.IP,
		UserAgent:     entry.Actor.Request.UserAgent,
		RequestID:     entry.Actor.Request.RequestID,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("recording activity: %w", err)
	}

	auditEntriesTotal.WithLabelValues(log.Action, string(log.AuditableType)).Inc()
	return log, nil
}

// GetAuditLogs returns one page of activity logs
func (s *AuditService) GetAuditLogs(ctx context.Context, filter repository.ActivityLogFilter, page repository.PageRequest) (*repository.Page[model.ActivityLog], error) {
	return s.repo.Query(ctx, filter, page)
}

// GetAuditLogByID returns a single activity log
func (s *AuditService) GetAuditLogByID(ctx context.Context, id uuid.UUID) (*model.ActivityLog, error) {
	return s.repo.FindByID(ctx, id)
}

var exportHeaders = []string{"Date", "Actor", "Action", "Subject Type", "Subject", "Old Values", "New Values", "IP Address", "User Agent"}

// ExportAuditLogs renders every matching activity log as an xlsx workbook.
func (s *AuditService) ExportAuditLogs(ctx context.Context, filter repository.ActivityLogFilter, page repository.PageRequest) ([]byte, error) {
	logs, err := s.repo.FindAll(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Activity Log"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, l := range logs {
		actor := l.UserID.String()
		if l.User != nil {
			actor = l.User.DisplayName()
		}
		row := []interface{}{
			l.CreatedAt.UTC().Format(time.RFC3339),
			actor,
			l.Action,
			string(l.AuditableType),
			l.AuditableName,
			jsonCell(l.OldValues),
			jsonCell(l.NewValues),
			deref(l.IPAddress),
			deref(l.UserAgent),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func jsonCell(m map[string]interface{}) string {
	if len(m) == 0 {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
