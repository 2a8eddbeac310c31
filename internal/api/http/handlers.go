// Package http exposes the extraction pipeline over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quarrylabs/quarry/internal/extract"
	"github.com/quarrylabs/quarry/internal/logging"
	"github.com/quarrylabs/quarry/internal/monitoring"
)

// maxRequestBody caps request bodies a little above the extractor's own HTML
// size limit to leave room for the JSON envelope.
const maxRequestBody = extract.MaxHTMLSize + 64*1024

// ExtractRequest is the POST /extract body.
type ExtractRequest struct {
	HTML   string `json:"html"`
	Query  string `json:"query"`
	Engine string `json:"engine,omitempty"` // "css" (default) or "xpath"
}

// ExtractResponse wraps the extractor's JSON array verbatim.
type ExtractResponse struct {
	Result json.RawMessage `json:"result"`
	Engine string          `json:"engine"`
}

// Handlers routes extraction requests to the configured extractors.
type Handlers struct {
	extractors    map[string]*extract.Extractor
	defaultEngine string
	metrics       *monitoring.Metrics
	logger        *logging.Logger
}

// NewHandlers creates the handler set. extractors is keyed by engine name;
// defaultEngine must be one of its keys.
func NewHandlers(extractors map[string]*extract.Extractor, defaultEngine string, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		extractors:    extractors,
		defaultEngine: defaultEngine,
		metrics:       metrics,
		logger:        logger,
	}
}

// Root reports service identity.
func (h *Handlers) Root(c *gin.Context) {
	engines := make([]string, 0, len(h.extractors))
	for name := range h.extractors {
		engines = append(engines, name)
	}
	c.JSON(http.StatusOK, gin.H{
		"service": "quarry",
		"engines": engines,
		"default": h.defaultEngine,
		"uptime":  h.metrics.Uptime().String(),
	})
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Extract runs one extraction call.
func (h *Handlers) Extract(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRequestBody))
	if err != nil {
		h.fail(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req ExtractRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		h.fail(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	engine := req.Engine
	if engine == "" {
		engine = h.defaultEngine
	}
	ex, ok := h.extractors[engine]
	if !ok {
		h.fail(c, http.StatusBadRequest, "unknown engine: "+engine)
		return
	}

	timer := monitoring.NewTimer(h.metrics, engine)
	result, err := ex.Extract(req.HTML, req.Query)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordExtractionError(engine, errorKind(err))
		h.logger.Warn("extraction failed",
			zap.String("engine", engine),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		h.fail(c, statusFor(err), err.Error())
		return
	}
	timer.Stop("success")

	out, err := sonic.Marshal(ExtractResponse{
		Result: json.RawMessage(result),
		Engine: engine,
	})
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "failed to encode response")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", out)
}

func (h *Handlers) fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// statusFor maps extraction error kinds onto HTTP statuses: argument problems
// are 400, anything the caller could fix in the document or query is 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, extract.ErrInvalidArguments):
		return http.StatusBadRequest
	case errors.Is(err, extract.ErrParse),
		errors.Is(err, extract.ErrQueryCompile),
		errors.Is(err, extract.ErrQueryEval):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, extract.ErrInvalidArguments):
		return "invalid_arguments"
	case errors.Is(err, extract.ErrParse):
		return "parse"
	case errors.Is(err, extract.ErrQueryCompile):
		return "query_compile"
	case errors.Is(err, extract.ErrQueryEval):
		return "query_eval"
	default:
		return "internal"
	}
}
