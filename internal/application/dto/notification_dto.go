package dto

// NotificationDTO una alerta de stock bajo en el feed. El id es el product id:
// es también la clave de lectura (ack).
type NotificationDTO struct {
	ID           string `json:"id"`
	Severity     string `json:"severity"` // critical, warning
	Title        string `json:"title"`
	Message      string `json:"message"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	Read         bool   `json:"read"`
}

// NotificationFeedResponse respuesta de GET /api/notifications.
type NotificationFeedResponse struct {
	Items       []NotificationDTO `json:"items"`
	UnreadCount int               `json:"unread_count"`
}
