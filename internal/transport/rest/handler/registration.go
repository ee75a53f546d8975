package handler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/remix-pengkefei/ai-training-admin/internal/export"
	"github.com/remix-pengkefei/ai-training-admin/internal/model"
	"github.com/remix-pengkefei/ai-training-admin/internal/service"
)

// RegistrationHandler serves the sign-up list view and its exports
type RegistrationHandler struct {
	eventSvc *service.EventService
	now      func() time.Time
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(eventSvc *service.EventService) *RegistrationHandler {
	return &RegistrationHandler{eventSvc: eventSvc, now: time.Now}
}

// RegistrationListResponse combines the event with its sign-ups so the
// console renders both in one round trip.
type RegistrationListResponse struct {
	Event         *model.Event         `json:"event"`
	Registrations []model.Registration `json:"registrations"`
}

// loadBoth fetches the event and its registrations concurrently. Either
// failure fails the whole load; nothing partial is returned.
func (h *RegistrationHandler) loadBoth(r *http.Request, eventID string) (*RegistrationListResponse, error) {
	var (
		event *model.Event
		regs  []model.Registration
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		event, err = h.eventSvc.Get(ctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		regs, err = h.eventSvc.Registrations(ctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if regs == nil {
		regs = []model.Registration{}
	}
	return &RegistrationListResponse{Event: event, Registrations: regs}, nil
}

// List handles GET /v1/events/{id}/registrations
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	resp, err := h.loadBoth(r, eventID)
	if err != nil {
		log.Printf("[Registrations] load %s failed: %v", eventID, err)
		writeError(w, http.StatusBadGateway, "加载报名名单失败")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /v1/events/{id}/registrations/export?format=csv|xlsx
func (h *RegistrationHandler) Export(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "unsupported format")
		return
	}

	resp, err := h.loadBoth(r, eventID)
	if err != nil {
		log.Printf("[Registrations] export %s failed: %v", eventID, err)
		writeError(w, http.StatusBadGateway, "导出失败")
		return
	}

	title := ""
	if resp.Event != nil {
		title = resp.Event.Title
	}

	// Render into a buffer first so a failure can still produce a
	// clean JSON error instead of a truncated download.
	var buf bytes.Buffer
	switch format {
	case "csv":
		err = export.WriteCSV(&buf, resp.Registrations)
	case "xlsx":
		err = export.WriteXLSX(&buf, resp.Registrations)
	}
	if err != nil {
		log.Printf("[Registrations] render export %s failed: %v", eventID, err)
		writeError(w, http.StatusInternalServerError, "导出失败")
		return
	}

	filename := export.Filename(title, format, h.now())
	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
