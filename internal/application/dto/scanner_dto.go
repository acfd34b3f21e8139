package dto

// ResolveCodeRequest body para POST /api/scanner/resolve. El código llega ya
// completo, da igual si vino de la cámara, de un lector USB (teclas hasta
// Enter) o tecleado a mano.
type ResolveCodeRequest struct {
	Code string `json:"code" validate:"required"`
}
