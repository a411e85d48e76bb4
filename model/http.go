package model

import "time"

type SessionSummary struct {
	Name    string     `json:"name"`
	Start   *time.Time `json:"start"`
	End     *time.Time `json:"end"`
	Correct int        `json:"correct"`
	Total   int        `json:"total"`
}

type TotalResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
