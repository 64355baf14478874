package dto

// AskRequest entrada de POST /api/assistant/ask.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// AskResponse salida del asistente. Siempre es prosa: los fallos del servicio
// externo llegan aquí ya normalizados a un texto fijo de disculpa.
type AskResponse struct {
	Response string `json:"response"`
}
