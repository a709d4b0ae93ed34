package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ukaji3/assignstat-go/pkg/assignstat"
)

// uploadField is the multipart field carrying the workbook.
const uploadField = "file"

// analyzeForm holds the optional form values of an upload.
type analyzeForm struct {
	Today string `validate:"omitempty,datetime=2006-01-02"`
}

// AnalyzeHandler runs one analysis per uploaded workbook.
type AnalyzeHandler struct {
	timezone  string
	clock     assignstat.Clock
	maxUpload int64
	validate  *validator.Validate
	metrics   *Metrics
	logger    *slog.Logger
}

// NewAnalyzeHandler creates the upload handler.
func NewAnalyzeHandler(timezone string, clock assignstat.Clock, maxUpload int64, metrics *Metrics, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		timezone:  timezone,
		clock:     clock,
		maxUpload: maxUpload,
		validate:  validator.New(),
		metrics:   metrics,
		logger:    logger.With(slog.String("component", "analyze_handler")),
	}
}

// Routes returns the analysis routes
func (h *AnalyzeHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/analyze", h.Analyze)
	return r
}

// Analyze handles POST /analyze with a multipart "file" upload and an
// optional "today" (YYYY-MM-DD) override of the reference date.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	if r.ContentLength > h.maxUpload {
		h.fail(w, r, errPayloadTooLarge(h.maxUpload), outcomeInvalidRequest, start)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(w, r, errPayloadTooLarge(h.maxUpload), outcomeInvalidRequest, start)
			return
		}
		h.fail(w, r, errValidation(uploadField, "multipart form with an Excel file is required"), outcomeInvalidRequest, start)
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := analyzeForm{Today: r.FormValue("today")}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, r, errValidation("today", "must be a date in YYYY-MM-DD form"), outcomeInvalidRequest, start)
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		h.fail(w, r, errValidation(uploadField, "file is required"), outcomeInvalidRequest, start)
		return
	}
	defer file.Close()

	opts := assignstat.Options{Timezone: h.timezone, Clock: h.clock}
	if form.Today != "" {
		clock, err := assignstat.DayClock(form.Today, h.timezone)
		if err != nil {
			h.fail(w, r, errValidation("today", err.Error()), outcomeInvalidRequest, start)
			return
		}
		opts.Clock = clock
	}

	report, err := assignstat.AnalyzeReader(file, header.Filename, opts)
	if err != nil {
		apiErr, outcome := analysisError(err)
		h.fail(w, r, apiErr, outcome, start)
		return
	}
	report.AnalysisID = uuid.NewString()

	h.metrics.observe(outcomeOK, time.Since(start))
	h.metrics.observeRows(report.Result.TotalRows)
	h.logger.InfoContext(ctx, "analysis completed",
		slog.String("analysis_id", report.AnalysisID),
		slog.String("book_name", report.BookName),
		slog.String("sheet_name", report.SheetName),
		slog.String("used_range", report.UsedRange),
		slog.Int("total_rows", report.Result.TotalRows),
		slog.Int("assigned_count", report.Result.AssignedCount),
		slog.Int("overdue_count", report.Result.OverdueCount),
		slog.Int("notes", len(report.Result.Notes)))

	render.JSON(w, r, report)
}

// fail records the outcome and writes the error response.
func (h *AnalyzeHandler) fail(w http.ResponseWriter, r *http.Request, apiErr *APIError, outcome string, start time.Time) {
	h.metrics.observe(outcome, time.Since(start))

	level := slog.LevelWarn
	if apiErr.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "analysis failed",
		slog.String("error_code", apiErr.ErrorCode),
		slog.Int("status", apiErr.StatusCode),
		slog.Any("details", apiErr.Details))

	render.Render(w, r, apiErr)
}
