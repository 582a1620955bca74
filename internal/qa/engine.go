// Package qa implements the rule-based query interpretation pipeline:
// intent classification, keyword extraction, entity matching against the
// knowledge store, and template resolution. The pipeline is state-free
// between calls and never returns an error; absence of information is
// communicated through the not-found reply.
package qa

import (
	"context"
	"time"

	"github.com/garyellow/academy-qabot-go/internal/knowledge"
	"github.com/garyellow/academy-qabot-go/internal/logger"
	"github.com/garyellow/academy-qabot-go/internal/metrics"
	"github.com/garyellow/academy-qabot-go/internal/stringutil"
)

// ModuleName is the module identifier used in logs.
const ModuleName = "qa"

// Engine answers natural-language questions from the knowledge store.
// It holds a non-owning reference to the store and never mutates it, so a
// single Engine may be shared by the HTTP and console hosts.
type Engine struct {
	store   *knowledge.Store
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewEngine creates a query engine backed by the given store.
// Metrics and logger may be nil (useful in tests); the pipeline then runs
// without instrumentation.
func NewEngine(store *knowledge.Store, m *metrics.Metrics, log *logger.Logger) *Engine {
	return &Engine{
		store:   store,
		metrics: m,
		logger:  log,
	}
}

// Process resolves one query to a response string. It always returns a
// non-empty string and never panics, whatever the input: empty and
// whitespace-only queries short-circuit to a fixed prompt, and queries the
// pipeline cannot answer render the not-found reply.
//
// The context carries tracing values for logging only; there is no
// cancellation point inside the pipeline.
func (e *Engine) Process(ctx context.Context, query string) string {
	start := time.Now()

	if stringutil.IsBlank(query) {
		e.recordQuery("none", "empty", start)
		return EmptyQueryPrompt
	}

	intent := ClassifyIntent(query)
	keywords := ExtractKeywords(query)

	if e.logger != nil {
		e.logger.WithModule(ModuleName).DebugContext(ctx, "query classified",
			"intent", string(intent),
			"keywords", len(keywords),
		)
	}

	var reply string
	switch intent {
	case IntentCourse:
		if c, ok := matchCourse(e.store, keywords); ok {
			e.recordMatch("course", "hit")
			reply = renderCourseInfo(c)
		} else {
			e.recordMatch("course", "miss")
		}

	case IntentSchedule:
		if c, ok := matchCourse(e.store, keywords); ok {
			e.recordMatch("course", "hit")
			reply = renderCourseSchedule(c)
		} else {
			e.recordMatch("course", "miss")
		}

	case IntentStaff:
		if m, ok := matchStaff(e.store, keywords); ok {
			e.recordMatch("staff", "hit")
			reply = renderStaffInfo(m)
		} else {
			e.recordMatch("staff", "miss")
		}

	case IntentOfficeHours:
		if m, ok := matchStaff(e.store, keywords); ok {
			e.recordMatch("staff", "hit")
			reply = renderStaffHours(m)
		} else {
			e.recordMatch("staff", "miss")
		}

	case IntentFAQ, IntentGeneral:
		// No matching stage. FAQ data stays in the store as reference
		// material but is never surfaced here (see DESIGN.md).
	}

	status := "answered"
	if reply == "" {
		reply = NotFoundReply
		status = "not_found"
	}
	e.recordQuery(string(intent), status, start)

	return reply
}

func (e *Engine) recordQuery(intent, status string, start time.Time) {
	if e.metrics != nil {
		e.metrics.RecordQuery(intent, status, time.Since(start).Seconds())
	}
}

func (e *Engine) recordMatch(entityType, result string) {
	if e.metrics != nil {
		e.metrics.RecordEntityMatch(entityType, result)
	}
}
