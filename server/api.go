package server

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/convodyn/analyzer"
	"github.com/kbukum/convodyn/conversation"
	"github.com/kbukum/convodyn/ingest"
	"github.com/kbukum/convodyn/logger"
	"github.com/kbukum/convodyn/metrics"
	"github.com/kbukum/convodyn/report"
	"github.com/kbukum/convodyn/validation"
)

// AnalyzeOptions overrides analyzer settings for a single request. Absent
// fields fall back to the server's configured defaults.
type AnalyzeOptions struct {
	MergeGapTolerance   *float64 `json:"merge_gap_tolerance,omitempty" validate:"omitempty,gte=0"`
	Metrics             []string `json:"metrics,omitempty"`
	DropShortestSpeaker *bool    `json:"drop_shortest_speaker,omitempty"`
}

// AnalyzeRequest is the payload for analyzing a single conversation.
type AnalyzeRequest struct {
	ConversationID string           `json:"conversation_id,omitempty"`
	Segments       []ingest.Segment `json:"segments" validate:"required,min=1"`
	Options        *AnalyzeOptions  `json:"options,omitempty"`
}

// BatchConversation is one conversation inside a batch request.
type BatchConversation struct {
	ConversationID string           `json:"conversation_id,omitempty"`
	Segments       []ingest.Segment `json:"segments" validate:"required,min=1"`
}

// BatchAnalyzeRequest is the payload for analyzing several conversations.
type BatchAnalyzeRequest struct {
	Conversations []BatchConversation `json:"conversations" validate:"required,min=1,dive"`
	Options       *AnalyzeOptions     `json:"options,omitempty"`
}

// AnalyzeResponse carries the full record plus the flattened row.
type AnalyzeResponse struct {
	Record *analyzer.Record `json:"record"`
	Row    report.Row       `json:"row"`
}

// BatchItemResponse is the per-conversation outcome in a batch response.
// Exactly one of Record and Error is set.
type BatchItemResponse struct {
	ConversationID string           `json:"conversation_id"`
	Record         *analyzer.Record `json:"record,omitempty"`
	Row            *report.Row      `json:"row,omitempty"`
	Error          string           `json:"error,omitempty"`
}

// API exposes the analysis pipeline over HTTP.
type API struct {
	baseCfg  analyzer.Config
	registry *metrics.Registry
	base     *analyzer.Analyzer
	log      *logger.Logger
}

// NewAPI creates the analysis API. The registry may be nil to use the
// built-in metrics.
func NewAPI(cfg analyzer.Config, reg *metrics.Registry, log *logger.Logger) (*API, error) {
	if reg == nil {
		reg = metrics.Default()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	base, err := analyzer.New(cfg, reg, log)
	if err != nil {
		return nil, err
	}
	return &API{
		baseCfg:  cfg,
		registry: reg,
		base:     base,
		log:      log.WithComponent("api"),
	}, nil
}

// RegisterRoutes mounts the analysis endpoints on the engine.
func (a *API) RegisterRoutes(engine *gin.Engine) {
	v1 := engine.Group("/v1")
	v1.POST("/conversations/analyze", a.handleAnalyze)
	v1.POST("/conversations/analyze/batch", a.handleAnalyzeBatch)
	v1.GET("/metrics", a.handleListMetrics)
}

func (a *API) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, apperrorInvalidBody(err))
		return
	}
	if err := validation.Validate(req); err != nil {
		RespondWithError(c, err)
		return
	}

	an, err := a.analyzerFor(req.Options)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	record, err := an.Analyze(c.Request.Context(), req.ConversationID, toIntervals(req.Segments))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	RespondOK(c, AnalyzeResponse{Record: record, Row: report.Flatten(record)})
}

func (a *API) handleAnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, apperrorInvalidBody(err))
		return
	}
	if err := validation.Validate(req); err != nil {
		RespondWithError(c, err)
		return
	}

	an, err := a.analyzerFor(req.Options)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	inputs := make([]analyzer.Input, len(req.Conversations))
	for i, conv := range req.Conversations {
		inputs[i] = analyzer.Input{ID: conv.ConversationID, Intervals: toIntervals(conv.Segments)}
	}

	items := an.AnalyzeBatch(c.Request.Context(), inputs)
	out := make([]BatchItemResponse, len(items))
	for i, item := range items {
		out[i] = BatchItemResponse{ConversationID: item.ID}
		if item.Err != nil {
			out[i].Error = item.Err.Error()
			continue
		}
		out[i].Record = item.Record
		row := report.Flatten(item.Record)
		out[i].Row = &row
	}

	RespondOK(c, out)
}

func (a *API) handleListMetrics(c *gin.Context) {
	RespondOK(c, gin.H{
		"available": a.registry.List(),
		"default":   a.base.Metrics(),
	})
}

// analyzerFor returns the base analyzer, or a request-scoped one when the
// request overrides options.
func (a *API) analyzerFor(opts *AnalyzeOptions) (*analyzer.Analyzer, error) {
	if opts == nil {
		return a.base, nil
	}

	cfg := a.baseCfg
	if opts.MergeGapTolerance != nil {
		cfg.MergeGapTolerance = *opts.MergeGapTolerance
	}
	if len(opts.Metrics) > 0 {
		cfg.Metrics = opts.Metrics
	}
	if opts.DropShortestSpeaker != nil {
		cfg.DropShortestSpeaker = *opts.DropShortestSpeaker
	}
	return analyzer.New(cfg, a.registry, a.log)
}

func toIntervals(segments []ingest.Segment) []conversation.Interval {
	doc := ingest.Document{Segments: segments}
	return doc.Intervals()
}
