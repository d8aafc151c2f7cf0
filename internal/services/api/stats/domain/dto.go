// Package domain holds DTOs for stats http and service contracts
package domain

// LanguageStat is one rolling per-language counter
type LanguageStat struct {
	Language     string `json:"language"`
	Count        int64  `json:"count"`
	LastDetected string `json:"last_detected"`
}
