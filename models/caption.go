package models

// CaptionRequest is the body of POST /generate-caption/. A missing prompt
// decodes to the empty string.
type CaptionRequest struct {
	Prompt string `json:"prompt"`
}

type CaptionResponse struct {
	Caption string `json:"caption"`
}

// StatusResponse is returned by the liveness route.
type StatusResponse struct {
	Message string `json:"message"`
}
