// Package domain holds DTOs for history http and service contracts
package domain

// RankedConfidence is one language from the ranked breakdown of a detection
type RankedConfidence struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Rank       int     `json:"rank"`
}

// CommitInput is everything the writer persists for one classification
type CommitInput struct {
	FullText         string
	TextPreview      string
	DetectedLanguage string
	Confidence       float64
	TextLength       int
	ProcessingTime   float64
	UserIP           string
	UserAgent        string
	Confidences      []RankedConfidence
}

// ListInput is the paging and filter input for the history listing
type ListInput struct {
	Page    int
	PerPage int
	Search  string
}

// HistoryItem is one row of the history listing
type HistoryItem struct {
	Timestamp        string  `json:"timestamp"`
	TextPreview      string  `json:"text_preview"`
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
}

// HistoryPage is the paginated listing payload
type HistoryPage struct {
	History []HistoryItem `json:"history"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Pages   int           `json:"pages"`
}

// HistoryRecord is the full stored record served by the detail endpoint
type HistoryRecord struct {
	Timestamp        string  `json:"timestamp"`
	FullText         string  `json:"full_text"`
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
}

// HistoryDetail pairs a record with its ranked confidence breakdown
type HistoryDetail struct {
	History     HistoryRecord      `json:"history"`
	Confidences []RankedConfidence `json:"confidences"`
}
