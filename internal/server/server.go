package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betbot/betsuggest/internal/suggest"
	"github.com/betbot/betsuggest/pkg/logger"
)

// Suggestions is the pipeline surface the handlers call.
type Suggestions interface {
	GameSuggestions(ctx context.Context, userID string, q suggest.Query) (json.RawMessage, error)
	GenerateSuggestions(ctx context.Context, userID string, filters map[string]any) (json.RawMessage, error)
}

type Config struct {
	Suggestions Suggestions
}

type Server struct {
	cfg Config
}

func New(cfg Config) (*Server, error) {
	if cfg.Suggestions == nil {
		return nil, errors.New("suggestions service is required")
	}
	return &Server{cfg: cfg}, nil
}

func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())

	r.GET("/health", s.wrap(s.handleHealth))

	api := r.Group("/api")
	api.POST("/generate-suggestions", s.wrap(s.handleGenerateSuggestions))

	v1 := api.Group("/v1")
	v1.GET("/games-bets-suggestions/:userId", s.wrap(s.handleGameSuggestions))

	return r
}

type paramsKeyType string

const paramsKey paramsKeyType = "betsuggest_path_params"

// wrap adapts net/http handlers to gin, injecting path params into the
// request context.
func (s *Server) wrap(h func(http.ResponseWriter, *http.Request)) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := map[string]string{}
		for _, p := range c.Params {
			m[p.Key] = p.Value
		}
		ctx := context.WithValue(c.Request.Context(), paramsKey, m)
		c.Request = c.Request.WithContext(ctx)
		h(c.Writer, c.Request)
	}
}

func pathParam(r *http.Request, key string) string {
	m, _ := r.Context().Value(paramsKey).(map[string]string)
	return m[key]
}

// requestLog tags every request with an id and logs method, path, status and
// latency. Diagnostic only.
func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		logger.WithFields(map[string]interface{}{
			"request_id": reqID,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		}).Infof("%s %s", c.Request.Method, c.Request.URL.Path)
	}
}
