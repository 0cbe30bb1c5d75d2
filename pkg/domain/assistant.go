package domain

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatTurn is one message of a conversation.
type ChatTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// TutorState is the step of the adaptive mastery loop.
type TutorState string

const (
	TutorQuestion          TutorState = "QUESTION"
	TutorRemediationChoice TutorState = "REMEDIATION_CHOICE"
	TutorExplanation       TutorState = "EXPLANATION"
	TutorMasteryCelebrate  TutorState = "MASTERY_CELEBRATION"
)

// ExplanationModes are the alternative explanations offered on remediation.
type ExplanationModes struct {
	Analogy            string   `json:"analogy,omitempty"`
	Flowchart          []string `json:"flowchart,omitempty"`
	ConceptMap         string   `json:"concept_map,omitempty"`
	DiagramDescription string   `json:"diagram_description,omitempty"`
}

// MasteryResponse is one step of a tutoring session.
type MasteryResponse struct {
	CurrentState TutorState `json:"current_state"`
	IsCorrect    *bool      `json:"is_correct,omitempty"`
	MasteryScore *int       `json:"mastery_score,omitempty"`
	Content      struct {
		Text             string            `json:"text"`
		Options          []string          `json:"options,omitempty"`
		ExplanationModes *ExplanationModes `json:"explanation_modes,omitempty"`
	} `json:"content"`
}

// RAGAnswer is a generated answer with the documents it was grounded on.
type RAGAnswer struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}
