package model

// SurveyQuestion is a multiple-choice question attached to an event.
// The ID is generated once when the question is added and stays stable
// across every option edit; Options keeps insertion order.
type SurveyQuestion struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Stats    []int    `json:"stats,omitempty"`
}
