package main

import (
	"net/http"

	"github.com/garyellow/academy-qabot-go/internal/config"
	"github.com/garyellow/academy-qabot-go/internal/ctxutil"
	"github.com/garyellow/academy-qabot-go/internal/knowledge"
	"github.com/garyellow/academy-qabot-go/internal/metrics"
	"github.com/garyellow/academy-qabot-go/internal/qa"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// queryRequest is the body of POST /api/query.
type queryRequest struct {
	Query string `json:"query"`
}

// queryResponse is the body of a successful query reply.
type queryResponse struct {
	Reply string `json:"reply"`
}

// setupRoutes configures all HTTP routes.
func setupRoutes(
	router *gin.Engine,
	engine *qa.Engine,
	store *knowledge.Store,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	cfg *config.Config,
) {
	// Root redirects to the health endpoint
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/healthz")
	})

	// Health check endpoint
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness endpoint reports the loaded catalog sizes
	ready := readyHandler(store)
	router.GET("/ready", ready)
	router.HEAD("/ready", ready)

	// Query API
	api := router.Group("/api")
	{
		api.POST("/query", queryHandler(engine, m))
		api.GET("/courses", coursesHandler(store))
		api.GET("/staff", staffHandler(store))
	}

	// Metrics endpoint with optional basic auth
	router.GET("/metrics",
		metricsAuthMiddleware(cfg.MetricsAuthEnabled(), cfg.MetricsUsername, cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(store *knowledge.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ready",
			"courses": store.CourseCount(),
			"staff":   store.StaffCount(),
			"faqs":    store.FAQCount(),
		})
	}
}

// queryHandler runs a question through the QA engine and returns the reply.
func queryHandler(engine *qa.Engine, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req queryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			m.RecordHTTPError("bad_request")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ctx := c.Request.Context()
		if id, ok := getRequestID(c); ok {
			ctx = ctxutil.WithRequestID(ctx, id)
		}

		reply := engine.Process(ctx, req.Query)
		c.JSON(http.StatusOK, queryResponse{Reply: reply})
	}
}

// coursesHandler lists the catalog, optionally filtered by level or
// instructor via query parameters.
func coursesHandler(store *knowledge.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var courses []knowledge.Course
		switch {
		case c.Query("level") != "":
			courses = store.SearchCoursesByLevel(c.Query("level"))
		case c.Query("instructor") != "":
			courses = store.SearchCoursesByInstructor(c.Query("instructor"))
		default:
			courses = store.GetAllCourses()
		}

		c.JSON(http.StatusOK, gin.H{
			"count":   len(courses),
			"courses": courses,
		})
	}
}

func staffHandler(store *knowledge.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff := store.GetAllStaff()
		c.JSON(http.StatusOK, gin.H{
			"count": len(staff),
			"staff": staff,
		})
	}
}
