package entity

import "time"

// Audit carries the write-once creation metadata shared by every aggregate.
// It is set at construction and never mutated afterwards.
type Audit struct {
	CreatedBy string
	CreatedAt time.Time
}

func NewAudit(createdBy string, createdAt time.Time) Audit {
	return Audit{CreatedBy: createdBy, CreatedAt: createdAt}
}
