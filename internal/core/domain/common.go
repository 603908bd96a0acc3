package domain

import "time"

// AuditFields holds the storage-assigned audit timestamps of a record.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
