package handler

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/resumeparser/resume-parser-backend/internal/resume/domain"
	"github.com/resumeparser/resume-parser-backend/internal/resume/extractor"
	"github.com/resumeparser/resume-parser-backend/internal/resume/service"
	"github.com/resumeparser/resume-parser-backend/pkg/config"
	"github.com/resumeparser/resume-parser-backend/pkg/errors"
	"github.com/resumeparser/resume-parser-backend/pkg/httputil"
	"github.com/resumeparser/resume-parser-backend/pkg/i18n"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
)

const (
	serviceName = "resume-parser-api"

	// Room for multipart boundaries and headers on top of the file limit
	multipartOverhead = 1 << 20
	maxMemory         = 32 << 20
)

var supportedFormats = []string{"PDF", "DOC", "DOCX"}

func init() {
	if err := httputil.RegisterCustomValidation("resume_mime", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedMIMEType(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Parser is the pipeline the handler drives
type Parser interface {
	Parse(ctx context.Context, doc domain.Document) (*domain.ResumeRecord, error)
	ParseBatch(ctx context.Context, docs []domain.Document) []domain.BatchItem
}

// CapabilityReporter reports which formats can be decoded
type CapabilityReporter interface {
	Capabilities() []extractor.Capability
}

// Status carries the optional collaborators shown on /health
type Status struct {
	EntityRecognition bool
	Broker            func() map[string]string
}

// Handler handles HTTP requests for resume parsing
type Handler struct {
	service      Parser
	capabilities CapabilityReporter
	upload       config.UploadConfig
	version      string
	status       Status
	log          *logger.Logger
}

// NewHandler creates a new resume parsing handler
func NewHandler(svc Parser, caps CapabilityReporter, upload config.UploadConfig, version string, status Status, log *logger.Logger) *Handler {
	return &Handler{
		service:      svc,
		capabilities: caps,
		upload:       upload,
		version:      version,
		status:       status,
		log:          log.WithComponent("resume_handler"),
	}
}

// Mount registers the banner, health and parse routes on r
func (h *Handler) Mount(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api/v1/resumes", func(r chi.Router) {
		r.Post("/parse", h.Parse)
		r.Post("/parse-batch", h.ParseBatch)
	})

	// Paths used by existing clients
	r.Post("/parse-resume", h.Parse)
	r.Post("/parse-resume-batch", h.ParseBatch)
}

type bannerResponse struct {
	Message          string   `json:"message"`
	Version          string   `json:"version"`
	Status           string   `json:"status"`
	SupportedFormats []string `json:"supported_formats"`
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, bannerResponse{
		Message:          i18n.TFromContext(r.Context(), "messages.running"),
		Version:          h.version,
		Status:           "healthy",
		SupportedFormats: supportedFormats,
	})
}

type healthResponse struct {
	Status            string                 `json:"status"`
	Service           string                 `json:"service"`
	Version           string                 `json:"version"`
	Decoders          []extractor.Capability `json:"decoders"`
	EntityRecognition bool                   `json:"entity_recognition"`
	RabbitMQ          map[string]string      `json:"rabbitmq,omitempty"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:            "healthy",
		Service:           serviceName,
		Version:           h.version,
		Decoders:          h.capabilities.Capabilities(),
		EntityRecognition: h.status.EntityRecognition,
	}
	if h.status.Broker != nil {
		resp.RabbitMQ = h.status.Broker()
	}
	httputil.JSON(w, http.StatusOK, resp)
}

type parseResponse struct {
	Message  string               `json:"message"`
	Filename string               `json:"filename"`
	FileSize int                  `json:"file_size"`
	Data     *domain.ResumeRecord `json:"data"`
}

// Parse handles POST /api/v1/resumes/parse
// Accepts a multipart form with a single "file" part (PDF, DOC or DOCX).
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		httputil.ErrorLocalized(w, r, h.multipartError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.ErrorLocalized(w, r, errors.BadRequestWithKey("errors.missing_file"))
		return
	}
	file.Close()

	doc, appErr := h.readUpload(header)
	if appErr != nil {
		h.requestLog(r).Warn().Str("filename", header.Filename).Str("code", appErr.Code).Msg("upload rejected")
		httputil.ErrorLocalized(w, r, appErr)
		return
	}
	size := len(doc.Data)

	record, err := h.service.Parse(r.Context(), doc)
	if err != nil {
		appErr := service.ClassifyError(err, doc)
		h.logFailure(h.requestLog(r), appErr, doc.Filename)
		httputil.ErrorLocalized(w, r, appErr)
		return
	}

	httputil.JSON(w, http.StatusOK, parseResponse{
		Message:  i18n.TFromContext(r.Context(), "messages.parsed"),
		Filename: doc.Filename,
		FileSize: size,
		Data:     record,
	})
}

type batchResponse struct {
	Message string             `json:"message"`
	Results []domain.BatchItem `json:"results"`
}

// ParseBatch handles POST /api/v1/resumes/parse-batch
// Accepts a multipart form with up to upload.max_batch_files "files" parts.
// Per-file problems are reported in the results; the response is 200 once
// the batch itself is acceptable.
func (h *Handler) ParseBatch(w http.ResponseWriter, r *http.Request) {
	limit := (h.upload.MaxFileSize+multipartOverhead)*int64(h.upload.MaxBatchFiles) + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		httputil.ErrorLocalized(w, r, h.multipartError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		httputil.ErrorLocalized(w, r, errors.BadRequestWithKey("errors.missing_file"))
		return
	}
	if len(headers) > h.upload.MaxBatchFiles {
		httputil.ErrorLocalized(w, r, errors.TooManyFiles(h.upload.MaxBatchFiles))
		return
	}

	items := make([]domain.BatchItem, len(headers))
	docs := make([]domain.Document, 0, len(headers))
	slots := make([]int, 0, len(headers))

	for i, fh := range headers {
		doc, appErr := h.readUpload(fh)
		if appErr != nil {
			items[i] = service.ErrorItem(r.Context(), fh.Filename, appErr)
			continue
		}
		docs = append(docs, doc)
		slots = append(slots, i)
	}

	for j, item := range h.service.ParseBatch(r.Context(), docs) {
		items[slots[j]] = item
	}

	httputil.JSON(w, http.StatusOK, batchResponse{
		Message: i18n.TFromContext(r.Context(), "messages.batch_processed", map[string]string{
			"count": strconv.Itoa(len(headers)),
		}),
		Results: items,
	})
}

type uploadMeta struct {
	Filename string `validate:"required,max=255"`
	MIMEType string `validate:"resume_mime"`
}

// readUpload checks type and size of one part and reads it into memory
func (h *Handler) readUpload(fh *multipart.FileHeader) (domain.Document, *errors.AppError) {
	f, err := fh.Open()
	if err != nil {
		return domain.Document{}, errors.BadRequestWithKey("errors.invalid_multipart").WithCause(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.upload.MaxFileSize+1))
	if err != nil {
		return domain.Document{}, errors.BadRequestWithKey("errors.invalid_multipart").WithCause(err)
	}

	doc := domain.Document{
		Filename: fh.Filename,
		MIMEType: detectMIME(fh.Header.Get("Content-Type"), data),
		Data:     data,
	}

	if err := httputil.Validate(uploadMeta{Filename: doc.Filename, MIMEType: doc.MIMEType}); err != nil {
		var appErr *errors.AppError
		if !errors.As(err, &appErr) {
			return domain.Document{}, errors.BadRequest(err.Error())
		}
		if appErr.Details["MIMEType"] != "" {
			return domain.Document{}, errors.UnsupportedFormat(doc.MIMEType)
		}
		return domain.Document{}, appErr
	}

	if int64(len(data)) > h.upload.MaxFileSize {
		return domain.Document{}, errors.FileTooLarge(h.upload.MaxFileSize)
	}

	return doc, nil
}

// detectMIME keeps a declared type and sniffs the content only when the
// client sent none or the generic binary type.
func detectMIME(declared string, data []byte) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil {
			declared = mt
		}
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if domain.IsSupportedMIMEType(m.String()) {
			return m.String()
		}
	}
	if mt, _, err := mime.ParseMediaType(detected.String()); err == nil {
		return mt
	}
	return detected.String()
}

func (h *Handler) multipartError(err error) *errors.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.FileTooLarge(h.upload.MaxFileSize)
	}
	return errors.BadRequestWithKey("errors.invalid_multipart").WithCause(err)
}

// requestLog tags handler log lines with the request ID set by httputil.RequestID
func (h *Handler) requestLog(r *http.Request) *logger.Logger {
	if requestID := httputil.GetRequestID(r.Context()); requestID != "" {
		return h.log.WithRequestID(requestID)
	}
	return h.log
}

func (h *Handler) logFailure(log *logger.Logger, appErr *errors.AppError, filename string) {
	ev := log.Warn()
	if appErr.StatusCode >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(appErr).Str("filename", filename).Str("code", appErr.Code).Msg("resume parsing failed")
}
