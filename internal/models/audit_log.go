package models

// AuditLog records sensitive user operations: budget saves, template
// applies, recurring rule creation, and portfolio changes. Entries are
// append-only; Changes holds a JSON snapshot of the mutated fields.
type AuditLog struct {
	Base
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Action       string `gorm:"not null;index" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
