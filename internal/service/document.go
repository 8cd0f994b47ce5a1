package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/extract"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/storage"
	"github.com/google/uuid"
)

const documentPrefix = "documents"

// Upload is a file received with a document request.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadSeeker
}

type DocumentService struct {
	tx        repository.TransactorIface
	documents repository.DocumentRepositoryIface
	recorder  audit.Recorder
	blobs     storage.BlobStore
	extractor extract.Extractor
	now       func() time.Time
}

func NewDocumentService(
	tx repository.TransactorIface,
	documents repository.DocumentRepositoryIface,
	recorder audit.Recorder,
	blobs storage.BlobStore,
	extractor extract.Extractor,
) *DocumentService {
	return &DocumentService{
		tx:        tx,
		documents: documents,
		recorder:  recorder,
		blobs:     blobs,
		extractor: extractor,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *DocumentService) List(ctx context.Context, filter repository.DocumentFilter, page repository.PageRequest) (*repository.Page[model.Document], error) {
	return s.documents.Query(ctx, filter, page)
}

// ListSummaries is List without file and extract columns.
func (s *DocumentService) ListSummaries(ctx context.Context, filter repository.DocumentFilter, page repository.PageRequest) (*repository.Page[model.DocumentSummary], error) {
	return s.documents.QuerySummaries(ctx, filter, page)
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	return s.documents.FindByID(ctx, id)
}

// Create validates the fields against the schema of the submitted type,
// stores the file, extracts its text when possible and saves the document
// with its activity log entry. The stored file is removed if saving fails.
func (s *DocumentService) Create(ctx context.Context, actor audit.Actor, fields DocumentFields, upload *Upload) (*model.Document, error) {
	docType, err := parseDocumentType(fields.Type)
	if err != nil {
		return nil, err
	}
	schema, _ := schemaFor(docType)

	ve := &domain.ValidationError{}
	if upload == nil || upload.Content == nil {
		ve.Add("file", domain.ErrFileRequired.Error())
	}
	schema.checkProhibited(docType, fields, ve)

	doc := &model.Document{Type: docType, UploadedByID: actor.UserID}
	applyDocumentFields(doc, fields, ve)
	schema.checkDocument(doc, ve)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	path, err := s.storeUpload(ctx, doc, upload)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.documents.Create(ctx, doc); err != nil {
			return err
		}
		_, err := s.recorder.Record(ctx, audit.Entry{
			Actor:        actor,
			Action:       model.ActionCreated,
			Subject:      model.DocumentSubject(doc.ID),
			SubjectLabel: doc.Title,
			OldValues:    map[string]interface{}{doc.Title: nil},
			NewValues:    map[string]interface{}{doc.Title: documentSnapshot(doc)},
		})
		return err
	})
	if err != nil {
		s.removeBlob(ctx, path)
		return nil, err
	}
	return doc, nil
}

// Update applies a partial change. Fields of a type other than the resulting
// one are rejected; changing the type clears the previous type's fields. A
// replacement file is stored before saving and the old file removed after.
func (s *DocumentService) Update(ctx context.Context, actor audit.Actor, id uuid.UUID, fields DocumentFields, upload *Upload) (*model.Document, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := documentSnapshot(doc)

	docType := doc.Type
	if fields.Type != nil {
		if docType, err = parseDocumentType(fields.Type); err != nil {
			return nil, err
		}
	}
	schema, ok := schemaFor(docType)
	if !ok {
		return nil, domain.FieldError("type", "is invalid")
	}

	ve := &domain.ValidationError{}
	schema.checkProhibited(docType, fields, ve)
	if docType != doc.Type {
		doc.Type = docType
		schema.clearDisallowed(doc)
	}
	applyDocumentFields(doc, fields, ve)
	schema.checkDocument(doc, ve)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	oldPath := doc.FilePath
	var newPath string
	if upload != nil && upload.Content != nil {
		if newPath, err = s.storeUpload(ctx, doc, upload); err != nil {
			return nil, err
		}
	}

	oldValues, newValues := changedValues(before, documentSnapshot(doc))
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.documents.Update(ctx, doc); err != nil {
			return err
		}
		_, err := s.recorder.Record(ctx, audit.Entry{
			Actor:        actor,
			Action:       model.ActionUpdated,
			Subject:      model.DocumentSubject(doc.ID),
			SubjectLabel: doc.Title,
			OldValues:    map[string]interface{}{doc.Title: oldValues},
			NewValues:    map[string]interface{}{doc.Title: newValues},
		})
		return err
	})
	if err != nil {
		if newPath != "" {
			s.removeBlob(ctx, newPath)
		}
		return nil, err
	}

	if newPath != "" && oldPath != "" && oldPath != newPath {
		s.removeBlob(ctx, oldPath)
	}
	return doc, nil
}

// Delete removes the document and, after commit, its file.
func (s *DocumentService) Delete(ctx context.Context, actor audit.Actor, id uuid.UUID) error {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.documents.Delete(ctx, doc.ID); err != nil {
			return err
		}
		_, err := s.recorder.Record(ctx, audit.Entry{
			Actor:        actor,
			Action:       model.ActionDeleted,
			Subject:      model.DocumentSubject(doc.ID),
			SubjectLabel: doc.Title,
			OldValues:    map[string]interface{}{doc.Title: documentSnapshot(doc)},
			NewValues:    map[string]interface{}{doc.Title: nil},
		})
		return err
	})
	if err != nil {
		return err
	}

	s.removeBlob(ctx, doc.FilePath)
	return nil
}

// storeUpload stores the file and fills the file columns of doc.
func (s *DocumentService) storeUpload(ctx context.Context, doc *model.Document, upload *Upload) (string, error) {
	objectPath := storage.ObjectPath(documentPrefix, s.now(), upload.Name)
	stored, err := s.blobs.Store(ctx, objectPath, upload.Content, upload.Size, upload.ContentType)
	if err != nil {
		return "", fmt.Errorf("storing document file: %w", err)
	}

	doc.FileName = storage.SanitizeFileName(upload.Name)
	doc.FilePath = stored
	doc.MimeType = upload.ContentType
	doc.FileSize = upload.Size
	doc.ContentExtract = s.extractText(ctx, upload)
	return stored, nil
}

// extractText is best-effort: failures are logged and yield nil.
func (s *DocumentService) extractText(ctx context.Context, upload *Upload) (text *string) {
	if s.extractor == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			slog.WarnContext(ctx, "Text extraction panicked", "file", upload.Name, "panic", r)
			text = nil
		}
	}()

	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		slog.WarnContext(ctx, "Failed to rewind upload for extraction", "file", upload.Name, "error", err)
		return nil
	}

	extracted, err := s.extractor.Extract(ctx, upload.Content, upload.ContentType)
	if err != nil {
		slog.WarnContext(ctx, "Text extraction failed", "file", upload.Name, "error", err)
		return nil
	}
	if extracted == "" {
		return nil
	}
	return &extracted
}

// removeBlob deletes a stored file. Failures are logged only.
func (s *DocumentService) removeBlob(ctx context.Context, objectPath string) {
	if objectPath == "" {
		return
	}
	if err := s.blobs.Delete(context.WithoutCancel(ctx), objectPath); err != nil {
		slog.ErrorContext(ctx, "Failed to remove document file", "path", objectPath, "error", err)
	}
}

func documentSnapshot(doc *model.Document) map[string]interface{} {
	return map[string]interface{}{
		"title":           doc.Title,
		"type":            string(doc.Type),
		"category_group":  doc.CategoryGroup,
		"description":     doc.Description,
		"status":          optionalString(doc.Status),
		"expiration_date": optionalDate(doc.ExpirationDate),
		"effective_date":  optionalDate(doc.EffectiveDate),
		"award_date":      optionalDate(doc.AwardDate),
		"arbitrator":      optionalString(doc.Arbitrator),
		"outcome":         optionalString(doc.Outcome),
		"file_name":       doc.FileName,
		"is_archived":     doc.IsArchived,
		"is_public":       doc.IsPublic,
	}
}

// changedValues keeps the keys whose values differ between snapshots.
func changedValues(before, after map[string]interface{}) (map[string]interface{}, map[string]interface{}) {
	oldValues := make(map[string]interface{})
	newValues := make(map[string]interface{})
	for k, v := range after {
		if !reflect.DeepEqual(before[k], v) {
			oldValues[k] = before[k]
			newValues[k] = v
		}
	}
	return oldValues, newValues
}

func optionalString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func optionalDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}
