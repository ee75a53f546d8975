package service

import (
	"context"
	"io"

	"github.com/remix-pengkefei/ai-training-admin/internal/backend"
	"github.com/remix-pengkefei/ai-training-admin/internal/model"
	"github.com/remix-pengkefei/ai-training-admin/internal/survey"
)

// EventDraft is the form payload coming from the admin console.
type EventDraft struct {
	Title           string                 `json:"title"`
	StartTime       string                 `json:"startTime"`
	Location        string                 `json:"location"`
	Description     string                 `json:"description"`
	ReplayURL       string                 `json:"replayUrl"`
	BannerURL       string                 `json:"bannerUrl"`
	SurveyQuestions []model.SurveyQuestion `json:"surveyQuestions"`
}

// EventService wraps the events backend with the submission rules the
// edit form relies on.
type EventService struct {
	api backend.API
}

// NewEventService creates a new event service.
func NewEventService(api backend.API) *EventService {
	return &EventService{api: api}
}

// BuildInput turns an edit-form draft into the backend payload. The
// signup deadline mirrors the start time (it is not editable on its
// own), and scratch survey questions are dropped silently.
func (s *EventService) BuildInput(draft EventDraft) model.EventInput {
	return model.EventInput{
		Title:           draft.Title,
		StartTime:       draft.StartTime,
		Location:        draft.Location,
		SignupDeadline:  draft.StartTime,
		Description:     draft.Description,
		ReplayURL:       draft.ReplayURL,
		BannerURL:       draft.BannerURL,
		Highlights:      []string{},
		Prizes:          []model.Prize{},
		SurveyQuestions: survey.FilterSubmittable(draft.SurveyQuestions),
	}
}

// List retrieves all events.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.api.ListEvents(ctx)
}

// Get retrieves a single event by ID.
func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	return s.api.GetEvent(ctx, id)
}

// Create submits a new event built from the draft.
func (s *EventService) Create(ctx context.Context, draft EventDraft) (*model.Event, error) {
	return s.api.CreateEvent(ctx, s.BuildInput(draft))
}

// Update submits changes to an existing event.
func (s *EventService) Update(ctx context.Context, id string, draft EventDraft) (*model.Event, error) {
	return s.api.UpdateEvent(ctx, id, s.BuildInput(draft))
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteEvent(ctx, id)
}

// Registrations retrieves the sign-up list for an event.
func (s *EventService) Registrations(ctx context.Context, eventID string) ([]model.Registration, error) {
	return s.api.ListRegistrations(ctx, eventID)
}

// UploadImage forwards a banner image to the backend and returns its URL.
func (s *EventService) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	return s.api.UploadImage(ctx, filename, file)
}
