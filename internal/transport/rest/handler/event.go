package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/remix-pengkefei/ai-training-admin/internal/service"
)

// maxUploadBytes caps banner uploads at 5MB, matching the console's
// stated limit.
const maxUploadBytes = 5 << 20

// EventHandler handles event CRUD and banner upload endpoints
type EventHandler struct {
	eventSvc *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventSvc *service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// List handles GET /v1/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.List(r.Context())
	if err != nil {
		log.Printf("[Events] list failed: %v", err)
		writeError(w, http.StatusBadGateway, "加载活动失败")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// Get handles GET /v1/events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	event, err := h.eventSvc.Get(r.Context(), id)
	if err != nil {
		log.Printf("[Events] get %s failed: %v", id, err)
		writeError(w, http.StatusBadGateway, "加载活动失败")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft service.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.eventSvc.Create(r.Context(), draft)
	if err != nil {
		log.Printf("[Events] create failed: %v", err)
		writeError(w, http.StatusBadGateway, "保存失败")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// Update handles PUT /v1/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var draft service.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.eventSvc.Update(r.Context(), id, draft)
	if err != nil {
		log.Printf("[Events] update %s failed: %v", id, err)
		writeError(w, http.StatusBadGateway, "保存失败")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /v1/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.eventSvc.Delete(r.Context(), id); err != nil {
		log.Printf("[Events] delete %s failed: %v", id, err)
		writeError(w, http.StatusBadGateway, "删除失败")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Upload handles POST /v1/upload, forwarding a banner image to the
// backend's upload endpoint.
func (h *EventHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "图片不能超过 5MB")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image field")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeError(w, http.StatusBadRequest, "仅支持图片文件")
		return
	}

	url, err := h.eventSvc.UploadImage(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("[Events] upload failed: %v", err)
		writeError(w, http.StatusBadGateway, "图片上传失败")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
