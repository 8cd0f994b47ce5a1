package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

const documentsPerPage = 20

// DocumentHandler serves national documents.
type DocumentHandler struct {
	Responder
	documentService *service.DocumentService
	maxUploadBytes  int64
}

func NewDocumentHandler(documentService *service.DocumentService, maxUploadBytes int64, rs Responder) *DocumentHandler {
	return &DocumentHandler{
		Responder:       rs,
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// List handles GET /documents. simplified=true returns summaries without
// file and extract columns.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.DocumentFilter{Search: strings.TrimSpace(query.Get("search"))}

	for _, raw := range repository.SplitList(query["type"]...) {
		t := model.DocumentType(strings.ToLower(raw))
		if !t.Valid() {
			h.handleError(w, r, domain.FieldError("type", "must be one of: "+documentTypeList()), "list documents")
			return
		}
		filter.Types = append(filter.Types, t)
	}
	if group := strings.TrimSpace(query.Get("category_group")); group != "" {
		filter.CategoryGroup = &group
	}

	var err error
	if filter.IsArchived, err = queryBool(query, "is_archived"); err != nil {
		h.handleError(w, r, err, "list documents")
		return
	}
	if filter.IsPublic, err = queryBool(query, "is_public"); err != nil {
		h.handleError(w, r, err, "list documents")
		return
	}
	simplified, err := queryBool(query, "simplified")
	if err != nil {
		h.handleError(w, r, err, "list documents")
		return
	}

	pageReq := repository.ParsePageRequest(query, documentsPerPage)
	if simplified != nil && *simplified {
		page, err := h.documentService.ListSummaries(r.Context(), filter, pageReq)
		if err != nil {
			h.handleError(w, r, err, "list documents")
			return
		}
		respondWithPage(h.Responder, w, page)
		return
	}

	page, err := h.documentService.List(r.Context(), filter, pageReq)
	if err != nil {
		h.handleError(w, r, err, "list documents")
		return
	}
	respondWithPage(h.Responder, w, page)
}

// Get handles GET /documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err, "retrieve document")
		return
	}

	doc, err := h.documentService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "retrieve document")
		return
	}
	h.respondWithData(w, http.StatusOK, doc, "")
}

// Create handles multipart POST /documents.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "create document")
		return
	}

	fields, upload, err := h.readDocumentRequest(w, r)
	if err != nil {
		h.handleError(w, r, err, "create document")
		return
	}
	if upload != nil {
		defer upload.close()
	}

	doc, err := h.documentService.Create(r.Context(), actor, fields, upload.toService())
	if err != nil {
		h.handleError(w, r, err, "create document")
		return
	}
	h.respondWithData(w, http.StatusCreated, doc, "Document created")
}

// Update handles PATCH /documents/{id} with a multipart or JSON body.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "update document")
		return
	}
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err, "update document")
		return
	}

	fields, upload, err := h.readDocumentRequest(w, r)
	if err != nil {
		h.handleError(w, r, err, "update document")
		return
	}
	if upload != nil {
		defer upload.close()
	}

	doc, err := h.documentService.Update(r.Context(), actor, id, fields, upload.toService())
	if err != nil {
		h.handleError(w, r, err, "update document")
		return
	}
	h.respondWithData(w, http.StatusOK, doc, "Document updated")
}

// Delete handles DELETE /documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "delete document")
		return
	}
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err, "delete document")
		return
	}

	if err := h.documentService.Delete(r.Context(), actor, id); err != nil {
		h.handleError(w, r, err, "delete document")
		return
	}
	h.respondWithData(w, http.StatusOK, nil, "Document deleted")
}

// formUpload is the file part of a multipart request.
type formUpload struct {
	file   multipart.File
	header *multipart.FileHeader
}

func (u *formUpload) close() {
	u.file.Close()
}

func (u *formUpload) toService() *service.Upload {
	if u == nil {
		return nil
	}
	contentType := u.header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = sniffContentType(u.file)
	}
	return &service.Upload{
		Name:        u.header.Filename,
		ContentType: contentType,
		Size:        u.header.Size,
		Content:     u.file,
	}
}

func sniffContentType(f io.ReadSeeker) string {
	buf := make([]byte, 512)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "application/octet-stream"
	}
	return http.DetectContentType(buf[:n])
}

// readDocumentRequest reads document fields from a JSON body or from the
// values of a multipart form, along with the optional file part.
func (h *DocumentHandler) readDocumentRequest(w http.ResponseWriter, r *http.Request) (service.DocumentFields, *formUpload, error) {
	var fields service.DocumentFields

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := decodeJSON(r, &fields)
		return fields, nil, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return fields, nil, domain.FieldError("file", "must not exceed "+strconv.FormatInt(h.maxUploadBytes>>20, 10)+" MB")
	}

	values := r.MultipartForm.Value
	str := func(key string) *string {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return nil
		}
		return &v[0]
	}
	boolean := func(key string) (*bool, error) {
		s := str(key)
		if s == nil || strings.TrimSpace(*s) == "" {
			return nil, nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(*s))
		if err != nil {
			return nil, domain.FieldError(key, "must be true or false")
		}
		return &b, nil
	}

	fields = service.DocumentFields{
		Title:          str("title"),
		Type:           str("type"),
		CategoryGroup:  str("category_group"),
		Description:    str("description"),
		Status:         str("status"),
		ExpirationDate: str("expiration_date"),
		EffectiveDate:  str("effective_date"),
		AwardDate:      str("award_date"),
		Arbitrator:     str("arbitrator"),
		Outcome:        str("outcome"),
	}

	var err error
	if fields.IsArchived, err = boolean("is_archived"); err != nil {
		return fields, nil, err
	}
	if fields.IsPublic, err = boolean("is_public"); err != nil {
		return fields, nil, err
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return fields, nil, nil
	}
	if err != nil {
		return fields, nil, domain.FieldError("file", "could not be read")
	}
	return fields, &formUpload{file: file, header: header}, nil
}

func documentTypeList() string {
	names := make([]string, len(model.DocumentTypes))
	for i, t := range model.DocumentTypes {
		names[i] = string(t)
	}
	return strings.Join(names, " ")
}
