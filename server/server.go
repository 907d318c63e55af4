package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ops_prompt_library/generator"
	"ops_prompt_library/logger"
	"ops_prompt_library/render"
)

//go:embed web/templates/*.html web/static/*
var embeddedWeb embed.FS

// Generator produces a library for a selection; *generator.Agent satisfies it.
type Generator interface {
	Generate(ctx context.Context, sel generator.Selection) (generator.Library, error)
}

type Server struct {
	gen      Generator
	log      *logger.Logger
	page     *template.Template
	staticFS http.Handler
	now      func() time.Time
}

func New(gen Generator, log *logger.Logger) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator required")
	}
	if log == nil {
		log = logger.Nop()
	}

	page, err := template.New("index.html").Funcs(template.FuncMap{
		"segments": render.Segments,
		"markdown": render.Markdown,
		"inc":      func(i int) int { return i + 1 },
	}).ParseFS(embeddedWeb, "web/templates/index.html")
	if err != nil {
		return nil, err
	}

	sub, err := fs.Sub(embeddedWeb, "web/static")
	if err != nil {
		return nil, err
	}

	return &Server{
		gen:      gen,
		log:      log,
		page:     page,
		staticFS: http.StripPrefix("/static/", http.FileServer(http.FS(sub))),
		now:      time.Now,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleGenerateForm)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("POST /api/library", s.handleLibraryJSON)
	mux.HandleFunc("POST /api/library.md", s.handleLibraryMarkdown)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /static/", s.staticFS)
	return requestID(logMiddleware(s.log, mux))
}
