// Package inspect serves the segments of the headers of incoming requests.
package inspect

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vfaronov/headerseg/internal/config"
	"github.com/vfaronov/headerseg/internal/report"
)

const (
	SegmentsURL = "/segments"
	PingURL     = "/ping"
)

type Service struct {
	config config.Config
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config.
func NewService(config config.Config) *Service {
	service := &Service{config: config}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}
	server.ReadHeaderTimeout = 5 * time.Second
	server.ReadTimeout = 10 * time.Second
	server.WriteTimeout = 15 * time.Second
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)
	service.server = server
	return service
}

func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// any method, so that clients can inspect whatever they send
	router.Any(SegmentsURL, service.segments)

	server.Handler = router
	service.router = router
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

type segmentsQuery struct {
	Name     string `form:"name"`
	DataOnly *bool  `form:"data_only"`
}

type segmentsResponse struct {
	Fields []report.Field `json:"fields"`
}

// segments reports on the request's own header fields.
// The Host field is included, as Go keeps it out of Request.Header.
func (service *Service) segments(ctx *gin.Context) {
	var query segmentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	opts := report.Options{DataOnly: service.config.DataOnly}
	if query.DataOnly != nil {
		opts.DataOnly = *query.DataOnly
	}

	h := ctx.Request.Header.Clone()
	if h == nil {
		h = http.Header{}
	}
	if ctx.Request.Host != "" {
		h["Host"] = []string{ctx.Request.Host}
	}

	var fields []report.Field
	if query.Name != "" {
		name := http.CanonicalHeaderKey(query.Name)
		values, ok := h[name]
		if !ok {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(errNoSuchField(name)))
			return
		}
		fields = []report.Field{report.BuildField(name, values, opts)}
	} else {
		fields = report.Build(h, opts)
	}

	ctx.JSON(http.StatusOK, segmentsResponse{Fields: fields})
}
