package models

import "time"

// AuditFields mirrors the audit columns shared by stored rows.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
