package models

import (
	"time"

	"gorm.io/gorm"
)

// Grievance statuses. A record only ever moves Pending -> Resolved.
const (
	StatusPending  = "Pending"
	StatusResolved = "Resolved"
)

// Grievance represents a single submitted grievance.
// Response stays nil until the admin responds; Status is admin-driven.
type Grievance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:text" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Mood        string    `gorm:"type:text" json:"mood"`
	Priority    string    `gorm:"type:text" json:"priority"`
	Response    *string   `gorm:"type:text" json:"response,omitempty"`
	Status      string    `gorm:"type:text;default:Pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName keeps the table name aligned with the original schema.
func (Grievance) TableName() string {
	return "grievances"
}

// BeforeCreate is a GORM hook that defaults the status for new records.
func (g *Grievance) BeforeCreate(tx *gorm.DB) (err error) {
	if g.Status == "" {
		g.Status = StatusPending
	}
	return
}

// Resolved reports whether the grievance has been resolved by the admin.
// Value receiver so templates can call it on range elements.
func (g Grievance) Resolved() bool {
	return g.Status == StatusResolved
}
