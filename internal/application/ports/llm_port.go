package ports

import "context"

// LLMService define el puerto de salida hacia el servicio de texto generativo.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateAssistance envía el prompt del usuario junto con el snapshot de
	// contexto del sistema y devuelve la respuesta en prosa. El contexto debe
	// llevar un timeout para evitar bloqueos en llamadas externas. Una llamada
	// por invocación: sin reintentos, sin deduplicación, sin caché.
	GenerateAssistance(ctx context.Context, prompt, systemContext string) (string, error)
}
