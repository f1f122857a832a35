package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse respuesta mínima de una operación sin cuerpo (ej. delete).
type OkResponse struct {
	Success bool `json:"success"`
}
