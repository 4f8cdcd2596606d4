package models

// Message captures a contact-form submission. Append-only.
type Message struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ActivityLog is the append-only audit trail of back-office mutations.
type ActivityLog struct {
	BaseModel
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Actor    string `json:"actor"`
}
