package domain

import "github.com/blaisecz/sleepmitra/internal/assessment"

// ErrIncompleteStep is returned when a wizard step is submitted with
// unanswered or out-of-range questions.
var ErrIncompleteStep = assessment.ErrIncompleteStep

// AdvanceRequest is the request body for submitting a wizard step.
// @Description Selected option values keyed by question ID.
type AdvanceRequest struct {
	Answers map[string]int `json:"answers" example:"isi_1:2,isi_2:1,isi_3:0"`
}

// AssessmentView is the wizard as the client should render it.
// @Description Current wizard step with its questions and navigation hints.
type AssessmentView struct {
	// Position and navigation labels
	Progress assessment.Progress `json:"progress"`
	// Title of the current step
	Title string `json:"title" example:"नींद की कठिनाई"`
	// Questions of the current step
	Questions []assessment.Question `json:"questions"`
	// Answers already recorded for the current step's questions
	Answers map[string]int `json:"answers"`
	// Set when the submitted step completed the run
	Result *assessment.Result `json:"result,omitempty"`
}
