package handler

import (
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"commission-engine/internal/engine"
	"commission-engine/internal/metrics"
	"commission-engine/internal/model"
)

const (
	pathCommissions = "/commissions"
	pathHealth      = "/healthz"
	pathMetrics     = "/metrics"
)

type Handler struct {
	engine         *engine.Engine
	metrics        *metrics.Collector
	logger         *zap.Logger
	metricsHandler fasthttp.RequestHandler
}

func New(eng *engine.Engine, collector *metrics.Collector, logger *zap.Logger) *Handler {
	return &Handler{
		engine:  eng,
		metrics: collector,
		logger:  logger.With(zap.String("component", "http")),
		metricsHandler: fasthttpadaptor.NewFastHTTPHandler(
			promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}),
		),
	}
}

// Handle is the fasthttp entry point for every route.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch path {
	case pathCommissions:
		h.handleCalculation(ctx)
	case pathHealth:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case pathMetrics:
		h.metricsHandler(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		path = "other"
	}

	status := ctx.Response.StatusCode()
	h.metrics.RecordHTTPRequest(path, status)
	h.logger.Debug("request",
		zap.ByteString("method", ctx.Method()),
		zap.String("path", path),
		zap.Int("status", status),
	)
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)

	status := fasthttp.StatusOK
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		status = fasthttp.StatusUnprocessableEntity
	}
	writeJSON(ctx, status, resp)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"encode response"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
