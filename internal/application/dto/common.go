package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code         string        `json:"code"`
	Message      string        `json:"message"`
	Notification *Notification `json:"notification,omitempty"`
}

// Variantes de notificación.
const (
	NotificationDefault     = "default"
	NotificationDestructive = "destructive"
)

// Notification aviso no bloqueante para el operador.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}
