// Package rest serves FHIRPath evaluation over HTTP.
//
// Installed routes:
//   - evaluate: "POST /$evaluate" with a JSON request body
//   - evaluate: "GET /$evaluate?expression=..." without input resource
//   - health:   "GET /health"
//
// Failures are answered with a FHIR OperationOutcome. Syntax errors map to
// 400, evaluation errors to 422.
package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/internal/exprcache"
)

var (
	defaultServerTimeout = 10 * time.Second
	defaultBodyLimit     = "1M"
)

// Server evaluates expressions against resources sent with the request.
type Server struct {
	// Template is cloned for every request and carries the model, mode
	// flags and limits. Defaults to an empty context.
	Template *fhirpath.EvaluationContext
	// Cache of parsed expressions. Nil disables caching.
	Cache *exprcache.Cache
	// Timeout bounds a single evaluation. Defaults to 10 seconds.
	Timeout time.Duration
	// BodyLimit caps request bodies, e.g. "512K". Defaults to 1M.
	BodyLimit string
	Logger    zerolog.Logger
}

// NewServer creates a server with defaults.
func NewServer(template *fhirpath.EvaluationContext, cache *exprcache.Cache, logger zerolog.Logger) *Server {
	return &Server{
		Template:  template,
		Cache:     cache,
		Timeout:   defaultServerTimeout,
		BodyLimit: defaultBodyLimit,
		Logger:    logger,
	}
}

// Handler returns the echo instance with all routes installed.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleHTTPError
	e.Use(middleware.BodyLimit(s.bodyLimit()))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/$evaluate", s.handleEvaluate)
	e.POST("/$evaluate", s.handleEvaluate)
	return e
}

// Start listens on addr until the server is shut down.
func (s *Server) Start(addr string) error {
	s.Logger.Info().Str("addr", addr).Msg("starting FHIRPath server")
	return s.Handler().Start(addr)
}

func (s *Server) parse(source string) (fhirpath.Expression, error) {
	if s.Cache != nil {
		return s.Cache.Parse(source)
	}
	return fhirpath.Parse(source)
}

func (s *Server) timeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultServerTimeout
	}
	return s.Timeout
}

func (s *Server) bodyLimit() string {
	if s.BodyLimit == "" {
		return defaultBodyLimit
	}
	return s.BodyLimit
}

func (s *Server) returnErr(c echo.Context, err error, expression string) error {
	status, oo := errToOperationOutcome(err, expression)
	event := s.Logger.Info()
	if status >= http.StatusInternalServerError {
		event = s.Logger.Error()
	}
	event.Err(err).Int("status", status).Str("expression", expression).Msg("evaluation failed")
	return c.JSON(status, oo)
}

// handleHTTPError renders routing errors (unknown path, wrong method) as
// OperationOutcome too.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	code := "exception"
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			code = "not-found"
		case http.StatusMethodNotAllowed:
			code = "not-supported"
		case http.StatusRequestEntityTooLarge:
			code = "too-long"
		default:
			code = "processing"
		}
	}
	if jsonErr := c.JSON(status, newOutcome("error", code, err.Error())); jsonErr != nil {
		s.Logger.Error().Err(jsonErr).Msg("write error response")
	}
}
