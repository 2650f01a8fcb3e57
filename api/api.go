package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/3lvia/ice-problems/api/problemjson"
	"github.com/3lvia/ice-problems/internal/observability"
	"github.com/3lvia/ice-problems/internal/runtime"
	"github.com/3lvia/ice-problems/problem"
	"github.com/3lvia/ice-problems/report"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	sloggin "github.com/samber/slog-gin"
	"go.opentelemetry.io/otel"
)

func Serve(addr string, env runtime.Env, reporter *report.Reporter) (func(ctx context.Context), <-chan error) {
	appServer := &http.Server{
		Addr:    addr,
		Handler: newHandler(env, reporter),
	}

	errChan := make(chan error, 1)

	go func(s *http.Server) {
		err := s.ListenAndServe()
		errChan <- err
	}(appServer)

	slog.Info(fmt.Sprintf("API server is listening on %s", addr))

	return func(ctx context.Context) {
		slog.InfoContext(ctx, "API server is shutting down")
		defer slog.InfoContext(ctx, "API server has shut down")

		if err := appServer.Shutdown(ctx); err != nil {
			_ = appServer.Close()
			slog.Error("could not stop the API server gracefully", "error", err)
		}
	}, errChan
}

func newHandler(env runtime.Env, reporter *report.Reporter) http.Handler {
	switch env {
	case runtime.Development:
		gin.SetMode(gin.DebugMode)
	case runtime.Test:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(sloggin.NewWithConfig(slog.Default(), sloggin.Config{
		WithSpanID:  true,
		WithTraceID: true,
		Filters: []sloggin.Filter{
			sloggin.IgnorePath("/metrics"),
			sloggin.IgnorePath("/health"),
		},
	}))
	router.Use(gin.Recovery())

	router.NoRoute(func(c *gin.Context) {
		c.Render(http.StatusNotFound, problemjson.U(
			http.StatusNotFound,
			"Not Found",
			fmt.Sprintf("path %s not found", c.Request.URL.Path)))
	})

	router.NoMethod(func(c *gin.Context) {
		c.Render(http.StatusMethodNotAllowed, problemjson.U(
			http.StatusMethodNotAllowed,
			"Method Not Allowed",
			fmt.Sprintf("method %s not allowed", c.Request.Method)))
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/favicon.ico", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	router.POST("/problems/preview", preview(reporter))

	return router
}

// previewRequest is the wire form of a problem document to render.
type previewRequest struct {
	Title           string         `json:"title"`
	ProblemType     string         `json:"problemType"`
	HTTPStatus      *int           `json:"httpStatus"`
	Detail          string         `json:"detail"`
	ProblemInstance string         `json:"problemInstance"`
	Extensions      map[string]any `json:"extensions"`
}

// preview builds a problem document from the request body and responds with
// its canonical encoding. The pretty query flag selects indented output.
func preview(reporter *report.Reporter) gin.HandlerFunc {
	tracer := otel.Tracer(observability.TracerName)

	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "problems.preview")
		defer span.End()

		var req previewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Render(http.StatusBadRequest, problemjson.U(
				http.StatusBadRequest,
				"Bad Request",
				"request body is not a valid problem document"))
			return
		}

		p := problem.New(req.Title, req.ProblemType).
			SetDetail(req.Detail).
			SetProblemInstance(req.ProblemInstance)
		if req.HTTPStatus != nil {
			p.SetHTTPStatus(*req.HTTPStatus)
		}
		for k, v := range req.Extensions {
			p.SetExtension(k, v)
		}

		pretty := c.Query("pretty") == "1" || c.Query("pretty") == "true"

		text, err := p.JSON(pretty)
		if err != nil {
			slog.ErrorContext(ctx, "failed to encode problem document", "error", err)

			internal := problem.New("Internal Server Error", "").
				SetHTTPStatus(http.StatusInternalServerError).
				SetDetail("failed to encode problem document")
			reporter.Report(ctx, internal)

			c.Render(http.StatusInternalServerError, problemjson.D(internal))
			return
		}

		c.Data(http.StatusOK, problemjson.ContentType, []byte(text))
	}
}
