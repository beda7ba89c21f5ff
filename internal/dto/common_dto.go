package dto

// ErrorResponse is the body of every failed request: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	DB      string `json:"db"`
	Time    string `json:"time"`
}
