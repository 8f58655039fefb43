package models

// Transient request/response payloads. Constructed per request and
// discarded at request exit; nothing here persists.

type BioRequest struct {
	Keywords string `json:"keywords"`
}

type BioResponse struct {
	Text string `json:"text"`
}

type ProjectRequest struct {
	Role string `json:"role"`
}

type ProjectResponse struct {
	HTML string `json:"html"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
