package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oshokin/moore-mealy/internal/domain/machine"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/metrics"
	"github.com/oshokin/moore-mealy/internal/render"
)

// contentTypes maps render formats to response content types.
//
//nolint:gochecknoglobals // Immutable lookup table.
var contentTypes = map[render.Format]string{
	render.FormatText:    "text/plain; charset=utf-8",
	render.FormatJSON:    "application/json",
	render.FormatYAML:    "application/yaml",
	render.FormatMermaid: "text/plain; charset=utf-8",
}

// newHTTPHandler serves metrics, a health probe and rendered conversions.
func newHTTPHandler(svc *service, collectors *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", collectors.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/fixtures", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypes[render.FormatText])
		_ = writeFixtureNames(w, svc.ListFixtures(r.Context()))
	})
	r.Get("/fixtures/{name}/mealy", func(w http.ResponseWriter, r *http.Request) {
		serveMealy(w, r, svc)
	})

	return r
}

// serveMealy converts the fixture named in the path and renders it in the
// format given by the "format" query parameter, json by default.
func serveMealy(w http.ResponseWriter, r *http.Request, svc *service) {
	ctx := r.Context()

	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(render.FormatJSON)
	}

	format, err := render.ParseFormat(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	mealy, err := svc.ConvertFixture(ctx, chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), httpStatus(err))

		return
	}

	w.Header().Set("Content-Type", contentTypes[format])

	if err := render.New(format).Mealy(w, mealy); err != nil {
		logger.ErrorKV(ctx, "Failed to write response", "error", err)
	}
}

// httpStatus maps service errors to HTTP status codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, fixtures.ErrUnknownFixture), errors.Is(err, machine.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeFixtureNames writes one fixture name per line.
func writeFixtureNames(w http.ResponseWriter, items []fixtures.Fixture) error {
	for _, item := range items {
		if _, err := w.Write([]byte(item.Name + "\n")); err != nil {
			return err
		}
	}

	return nil
}
