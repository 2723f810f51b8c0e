package dogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// maxWait acota ?wait=true aunque el cliente no tenga timeout.
const maxWait = 30 * time.Second

func RegisterRoutes(r chi.Router, viewers *Viewers) {
	// Montar un viewer nuevo y mostrarlo
	r.Get("/", openPageHandler(viewers))

	r.Route("/viewers", func(vr chi.Router) {
		vr.Post("/", openViewerHandler(viewers))
		vr.Get("/{viewerID}", getViewerHandler(viewers))
		vr.Delete("/{viewerID}", closeViewerHandler(viewers))

		// Promover un thumbnail a perro principal
		vr.Post("/{viewerID}/main", selectMainHandler(viewers))

		// Vista HTML
		vr.Get("/{viewerID}/page", pageHandler(viewers))
		vr.Post("/{viewerID}/page/thumbnails/{index}", selectFromPageHandler(viewers))
	})
}

type dogResponse struct {
	Breed string `json:"breed"`
	Image string `json:"image"`
}

type viewerResponse struct {
	ID         string        `json:"id"`
	Status     Status        `json:"status"`
	Message    string        `json:"message"`
	Loading    bool          `json:"loading"`
	Main       *dogResponse  `json:"main,omitempty"`
	Thumbnails []dogResponse `json:"thumbnails,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

type selectMainRequest struct {
	Index *int `json:"index"`
}

// openViewerHandler godoc
// @Summary  Mount a new dog viewer
// @Tags     viewers
// @Produce  json
// @Success  202 {object} viewerResponse
// @Router   /viewers [post]
func openViewerHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := viewers.Open(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Location", "/viewers/"+v.ID)
		writeJSON(w, http.StatusAccepted, toViewerResponse(v, v.State()))
	}
}

// getViewerHandler godoc
// @Summary  Get the view state of a viewer
// @Tags     viewers
// @Produce  json
// @Param    viewerID path  string true  "viewer id"
// @Param    wait     query bool   false "block until the viewer settles"
// @Success  200 {object} viewerResponse
// @Failure  404 {string} string
// @Router   /viewers/{viewerID} [get]
func getViewerHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadViewer(w, r, viewers)
		if !ok {
			return
		}

		state := v.State()
		if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
			ctx, cancel := context.WithTimeout(r.Context(), maxWait)
			defer cancel()
			// Si vence el timeout devolvemos lo que haya (Loading).
			state, _ = v.Wait(ctx)
		}

		writeJSON(w, http.StatusOK, toViewerResponse(v, state))
	}
}

// closeViewerHandler godoc
// @Summary  Unmount a viewer
// @Tags     viewers
// @Param    viewerID path string true "viewer id"
// @Success  204
// @Failure  404 {string} string
// @Router   /viewers/{viewerID} [delete]
func closeViewerHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := viewers.Close(r.Context(), chi.URLParam(r, "viewerID"))
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "viewer not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// selectMainHandler godoc
// @Summary  Promote a thumbnail to main dog
// @Tags     viewers
// @Accept   json
// @Produce  json
// @Param    viewerID path string            true "viewer id"
// @Param    body     body selectMainRequest true "thumbnail index (0-9)"
// @Success  200 {object} viewerResponse
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Failure  409 {string} string
// @Router   /viewers/{viewerID}/main [post]
func selectMainHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadViewer(w, r, viewers)
		if !ok {
			return
		}

		var req selectMainRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
			http.Error(w, "index is required", http.StatusBadRequest)
			return
		}

		state, err := v.Select(*req.Index)
		if err != nil {
			writeSelectError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toViewerResponse(v, state))
	}
}

func pageHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadViewer(w, r, viewers)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := RenderPage(w, v.ID, v.State()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

func openPageHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := viewers.Open(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/viewers/"+v.ID+"/page", http.StatusSeeOther)
	}
}

func selectFromPageHandler(viewers *Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadViewer(w, r, viewers)
		if !ok {
			return
		}

		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "index must be an integer", http.StatusBadRequest)
			return
		}

		if _, err := v.Select(index); err != nil {
			writeSelectError(w, err)
			return
		}

		http.Redirect(w, r, "/viewers/"+v.ID+"/page", http.StatusSeeOther)
	}
}

func loadViewer(w http.ResponseWriter, r *http.Request, viewers *Viewers) (*Viewer, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "viewerID"))
	v, err := viewers.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "viewer not found", http.StatusNotFound)
			return nil, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return v, true
}

func writeSelectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotReady):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrThumbnailOutOfRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toViewerResponse(v *Viewer, s ViewState) viewerResponse {
	out := viewerResponse{
		ID:        v.ID,
		Status:    s.Status,
		Message:   s.Message,
		Loading:   s.Loading(),
		CreatedAt: v.CreatedAt,
	}
	if s.Status != StatusReady {
		return out
	}

	out.Main = &dogResponse{Breed: s.Main.Breed, Image: s.Main.Image}
	out.Thumbnails = make([]dogResponse, 0, len(s.Thumbnails))
	for _, d := range s.Thumbnails {
		out.Thumbnails = append(out.Thumbnails, dogResponse{Breed: d.Breed, Image: d.Image})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
