package model

// PrizeRank identifies a prize tier
type PrizeRank string

const (
	PrizeGold   PrizeRank = "gold"
	PrizeSilver PrizeRank = "silver"
	PrizeBronze PrizeRank = "bronze"
)

// Prize is a single prize entry attached to an event
type Prize struct {
	Rank PrizeRank `json:"rank"`
	Text string    `json:"text"`
}

// Event is owned by the upstream events backend; the admin service only
// holds transient copies while a form round-trip is in flight.
type Event struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	StartTime       string           `json:"startTime"`
	EndTime         string           `json:"endTime,omitempty"`
	Location        string           `json:"location"`
	SignupDeadline  string           `json:"signupDeadline"`
	Highlights      []string         `json:"highlights,omitempty"`
	Prizes          []Prize          `json:"prizes,omitempty"`
	RegisteredCount int              `json:"registeredCount"`
	MaxParticipants int              `json:"maxParticipants,omitempty"`
	BannerURL       string           `json:"bannerUrl,omitempty"`
	Description     string           `json:"description,omitempty"`
	ReplayURL       string           `json:"replayUrl,omitempty"`
	SurveyQuestions []SurveyQuestion `json:"surveyQuestions,omitempty"`
}

// EventInput is the create/update payload sent to the backend
// (an Event minus the backend-owned id and registeredCount).
type EventInput struct {
	Title           string           `json:"title"`
	StartTime       string           `json:"startTime"`
	Location        string           `json:"location"`
	SignupDeadline  string           `json:"signupDeadline"`
	Description     string           `json:"description"`
	ReplayURL       string           `json:"replayUrl"`
	BannerURL       string           `json:"bannerUrl"`
	Highlights      []string         `json:"highlights"`
	Prizes          []Prize          `json:"prizes"`
	SurveyQuestions []SurveyQuestion `json:"surveyQuestions"`
}
