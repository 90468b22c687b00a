package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
	"github.com/ziadkadry99/folio/internal/site"
)

// RegisterPageRoutes mounts the page, fragment and asset routes.
func RegisterPageRoutes(r chi.Router, a *app.App, logger *zap.Logger) {
	r.Get("/assets/{name}", handleAsset(a))
	r.Get("/fragments/blog", handleBlogFragment(a, logger))
	r.Get("/", handlePage(a, logger))
	r.Get("/{page}", handlePage(a, logger))
}

// RegisterAPIRoutes mounts the JSON API under the given router.
func RegisterAPIRoutes(r chi.Router, a *app.App) {
	r.Get("/content/{kind}", handleListContent(a))
	r.Get("/content/{kind}/{id}", handleGetContent(a))
	r.Get("/search", handleSearch(a))
}

func handlePage(a *app.App, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := router.ParsePage(chi.URLParam(r, "page"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		var buf bytes.Buffer
		status, err := a.Render(r.Context(), &buf, page, router.ParamsFromQuery(r.URL.Query()))
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			logger.Error("rendering page", zap.String("page", string(page)), zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		writeHTML(w, status, buf.Bytes())
	}
}

func handleBlogFragment(a *app.App, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		err := a.RenderBlogFragment(&buf, strings.TrimSpace(r.URL.Query().Get("category")))
		switch {
		case errors.Is(err, content.ErrDataUnavailable):
			http.Error(w, "content unavailable", http.StatusServiceUnavailable)
			return
		case err != nil:
			logger.Error("rendering blog fragment", zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		writeHTML(w, http.StatusOK, buf.Bytes())
	}
}

func handleAsset(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme := a.Renderer().Theme()
		var body, ctype string
		switch chi.URLParam(r, "name") {
		case "style.css":
			body, ctype = theme.CSS, "text/css; charset=utf-8"
		case "script.js":
			body, ctype = theme.JS, "text/javascript; charset=utf-8"
		default:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", ctype)
		w.Write([]byte(body))
	}
}

func handleListContent(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		store, err := a.Store()
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}

		records := store.Collection(kind)
		if kind == content.KindArchive {
			records = content.SortByDateDesc(records)
		}
		docs := make([]any, 0, len(records))
		for _, rec := range records {
			docs = append(docs, content.Doc(rec))
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func handleGetContent(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		store, err := a.Store()
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}

		rec, err := store.FindByID(kind, id)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, content.Doc(rec))
	}
}

func handleSearch(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := a.Search(r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		if entries == nil {
			entries = []site.SearchEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
