package dto

// ViewResponse resultado de resolver un token de vista: la vista a la que el
// cliente debe navegar.
type ViewResponse struct {
	Requested string `json:"requested"`
	View      string `json:"view"`
}
