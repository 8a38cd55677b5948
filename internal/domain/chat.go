package domain

// ChatRequest is the request body for the chatbot.
// @Description A user message for the FAQ chatbot.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=500" example:"नींद की गुणवत्ता कैसे सुधारें?"`
}

// ChatResponse is the chatbot reply.
// @Description Answer text and follow-up suggestions.
type ChatResponse struct {
	Answer      string   `json:"answer"`
	Suggestions []string `json:"suggestions"`
	// exact, keyword or fallback
	MatchedBy string `json:"matched_by" example:"keyword"`
}
