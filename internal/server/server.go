// Package server turns a schema catalog into a running mock HTTP service:
// one GET route per entity, each request answered with a freshly synthesized
// JSON body.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/routemock/routemock/internal/analyzer"
	"github.com/routemock/routemock/internal/logger"
	"github.com/routemock/routemock/internal/synth"
)

type Server struct {
	engine *gin.Engine
	log    logger.Logger
}

// New builds a server for the catalog. The catalog is read-only from here on;
// handlers share it without coordination because nothing mutates it. When two
// entities declare the same route, the first one registered wins and later
// ones are dropped with a warning.
func New(catalog []analyzer.Entity, log logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		log:    log,
	}
	s.registerRoutes(catalog)

	return s
}

func (s *Server) registerRoutes(catalog []analyzer.Entity) {
	registered := make(map[string]bool)

	for _, entity := range catalog {
		if !strings.HasPrefix(entity.Route, "/") {
			s.log.Warn("skipping route without leading slash", "route", entity.Route)
			continue
		}
		if registered[entity.Route] {
			s.log.Warn("duplicate route, keeping first registration", "route", entity.Route)
			continue
		}
		registered[entity.Route] = true

		s.engine.GET(entity.Route, handlerFor(entity))
		s.log.Info("registered mock route", "route", entity.Route, "properties", len(entity.Properties))
	}
}

// handlerFor binds one entity to a handler. Requests to paths that never
// registered fall through to gin's default 404.
func handlerFor(entity analyzer.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, synth.Record(entity))
	}
}

// Handler exposes the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.log.Info("mock server listening", "addr", addr)
	return s.engine.Run(addr)
}
