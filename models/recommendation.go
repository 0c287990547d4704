package models

import "time"

// TimeWindow is an absolute preference window.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// UserProfile is the request-scoped preference set the matcher scores against.
type UserProfile struct {
	Industry string
	Focus    []string
	TimePref *TimeWindow
}

// RecommendationRequest is the body of POST /api/recommendations.
// Pointer fields distinguish "absent" from false/zero so defaults can apply.
type RecommendationRequest struct {
	Industry  string      `json:"industry"`
	Focus     []string    `json:"focus"`
	TimePref  *TimeWindow `json:"timePref,omitempty"`
	AvoidGaps *bool       `json:"avoidGaps,omitempty"`
	TopK      *int        `json:"topK,omitempty"`
	UseLLM    bool        `json:"useLLM"`
}

// RecommendedItem is one entry of a recommendation response.
type RecommendedItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Room        string    `json:"room,omitempty"`
	Instructor  string    `json:"instructor,omitempty"`
	Score       float64   `json:"score"`
	Tags        []string  `json:"tags"`
}

type RecommendationMetadata struct {
	TotalAnalyzed int    `json:"total_analyzed"`
	TopCandidates int    `json:"top_candidates"`
	FinalCount    int    `json:"final_count"`
	CategoryUsed  string `json:"category_used"`
	LLMOptimized  bool   `json:"llm_optimized"`
	Message       string `json:"message,omitempty"`
}

type RecommendationResponse struct {
	RequestID string                 `json:"requestId"`
	Category  string                 `json:"category"`
	Items     []RecommendedItem      `json:"items"`
	Metadata  RecommendationMetadata `json:"metadata"`
}
