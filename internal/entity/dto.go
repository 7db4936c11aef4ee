package entity

// Request and response shapes of the HTTP API. One typed pair per
// endpoint, validated at the boundary before any downstream call.

type GenerateInstructionsRequest struct {
	Context string `json:"context"`
}

type GenerateInstructionsResponse struct {
	Fields       []FormField `json:"fields"`
	Instructions []string    `json:"instructions"`
	ContextUsed  string      `json:"context_used"`
}

type ChatRequest struct {
	Message    string            `json:"message"`
	Context    string            `json:"context,omitempty"`
	FormValues map[string]string `json:"formValues,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
	LLMUsed  bool   `json:"llm_used"`
}

type FormSaveRequest struct {
	Instructions any               `json:"instructions"`
	Values       map[string]string `json:"values"`
	Metadata     map[string]any    `json:"metadata,omitempty"`
}

type DialogStartRequest struct {
	Context string `json:"context,omitempty"`
}

type DialogStartResponse struct {
	SessionID            string           `json:"session_id"`
	Questions            []DialogQuestion `json:"questions"`
	TotalQuestions       int              `json:"totalQuestions"`
	CurrentQuestionIndex int              `json:"currentQuestionIndex"`
	WelcomeMessage       string           `json:"welcome_message"`
}

type DialogMessageRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

type DialogMessageResponse struct {
	Response             string `json:"response"`
	NextQuestion         bool   `json:"nextQuestion"`
	HelpProvided         bool   `json:"helpProvided,omitempty"`
	CurrentQuestionIndex int    `json:"currentQuestionIndex"`
	Completed            bool   `json:"completed"`
}

type DialogSaveRequest struct {
	SessionID   string            `json:"session_id,omitempty"`
	Questions   []DialogQuestion  `json:"questions"`
	Answers     map[string]string `json:"answers"`
	ChatHistory []ChatMessage     `json:"chatHistory,omitempty"`
	Metadata    map[string]any    `json:"metadata,omitempty"`
}

type StudySaveRequest struct {
	ParticipantID string            `json:"participantId"`
	Demographics  map[string]string `json:"demographics,omitempty"`
	VariantAData  map[string]any    `json:"variantAData,omitempty"`
	VariantBData  map[string]any    `json:"variantBData,omitempty"`
	Surveys       map[string]any    `json:"surveys,omitempty"`
	Comparison    map[string]any    `json:"comparison,omitempty"`
	Metadata      map[string]any    `json:"metadata,omitempty"`
}

type SaveResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Filename  string `json:"filename"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Services  map[string]string `json:"services"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
}
