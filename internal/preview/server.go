package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/widgetic/apidocs/internal/document"
	"github.com/widgetic/apidocs/internal/files"
	"github.com/widgetic/apidocs/internal/specsync"
	"github.com/widgetic/apidocs/pkg/codesample"
)

// Server serves the published document to documentation authors.
// The document is read from disk on every request.
type Server struct {
	echo    *echo.Echo
	target  string
	metrics *Metrics
}

// OperationSummary is one entry of the operation listing.
type OperationSummary struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operationId"`
	AccessLevel string `json:"accessLevel"`
	Samples     int    `json:"samples"`
}

// New creates the server for the document stored at target.
func New(target string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		target:  target,
		metrics: NewMetrics(),
	}

	e.Use(middleware.Recover())
	e.Use(loggerMiddleware)
	e.Use(s.metrics.middleware)

	e.GET("/healthz", s.health)
	e.GET("/openapi.json", s.openAPIJSON)
	e.GET("/openapi.yaml", s.openAPIYAML)
	e.GET("/operations", s.operations)
	e.GET("/operations/:operationId/samples", s.samples)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	return s
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on address until Shutdown is called.
func (s *Server) Start(address string) error {
	slog.Info("preview server listening", "address", address, "target", s.target)
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) openAPIJSON(c echo.Context) error {
	content, err := s.readTarget()
	if err != nil {
		return err
	}
	c.Response().Header().Set("ETag", `"`+files.GetContentHash(content)+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, content)
}

func (s *Server) openAPIYAML(c echo.Context) error {
	content, err := s.readTarget()
	if err != nil {
		return err
	}

	res, err := yaml.JSONToYAML(content)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "target is not valid JSON").SetInternal(err)
	}
	return c.Blob(http.StatusOK, "application/yaml", res)
}

func (s *Server) operations(c echo.Context) error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}

	res := make([]OperationSummary, 0)
	for _, op := range doc.Operations() {
		samples := 0
		if node := op.Extension(codesample.SamplesKey); node != nil {
			samples = len(node.Content)
		}
		res = append(res, OperationSummary{
			Method:      op.Method,
			Path:        op.Path,
			OperationID: op.ID(),
			AccessLevel: op.StringExtension(specsync.AccessLevelKey, specsync.DefaultAccessLevel),
			Samples:     samples,
		})
	}

	return c.JSON(http.StatusOK, res)
}

func (s *Server) samples(c echo.Context) error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}

	id := c.Param("operationId")
	op := doc.FindOperation(id)
	if op == nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown operation "+id)
	}

	node := op.Extension(codesample.SamplesKey)
	if node == nil {
		return c.JSONBlob(http.StatusOK, []byte("[]"))
	}

	res, err := document.EncodeJSON(node)
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, res)
}

func (s *Server) readTarget() ([]byte, error) {
	content, err := os.ReadFile(s.target)
	if err != nil {
		slog.Warn("cannot read target", "target", s.target, "error", err)
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "document not available").SetInternal(err)
	}
	return content, nil
}

func (s *Server) loadDocument() (*document.Document, error) {
	content, err := s.readTarget()
	if err != nil {
		return nil, err
	}

	doc, err := document.Parse(content)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, "document is invalid").SetInternal(err)
	}
	return doc, nil
}
