// Package domain holds DTOs for detect http and service contracts
package domain

// DetectInput is the classification request body
// origin fields are filled by the transport layer, never by the client
type DetectInput struct {
	Text string `json:"text" validate:"required" example:"The quick brown fox jumps over the lazy dog"`

	UserIP    string `json:"-"`
	UserAgent string `json:"-"`
}

// RankedConfidence is one entry of the top-N confidence breakdown
type RankedConfidence struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Rank       int     `json:"rank"`
}

// DetectResponse is the classification result payload
type DetectResponse struct {
	DetectedLanguage string             `json:"detected_language"`
	Confidence       float64            `json:"confidence"`
	Confidences      []RankedConfidence `json:"confidences"`
	TextLength       int                `json:"text_length"`
	ProcessingTime   float64            `json:"processing_time"`
}
