package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Session is a server-side login session. The session ID doubles as the
// bearer token handed to the browser in an HttpOnly cookie.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User      User      `json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Section struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name   string    `gorm:"size:100;not null" json:"name"`

	// Derived aggregate, filled by SectionService.ListWithCounts.
	ApplicationCount int64 `gorm:"-" json:"application_count"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	SectionID *uuid.UUID `gorm:"type:uuid;index" json:"section_id"`
	// Association: needs Preload("Section") to be filled. The FK is declared
	// SET NULL so deleting a section never cascades into applications.
	Section *Section `gorm:"constraint:OnDelete:SET NULL" json:"section,omitempty"`

	CompanyName    string    `gorm:"size:200;not null" json:"company_name"`
	PositionTitle  string    `gorm:"size:200;not null" json:"position_title"`
	JobPostingURL  *string   `gorm:"size:2000" json:"job_posting_url"`
	Location       *string   `gorm:"size:200" json:"location"`
	WorkType       *WorkType `gorm:"size:20" json:"work_type"`
	SalaryRangeMin *int64    `json:"salary_range_min"`
	SalaryRangeMax *int64    `json:"salary_range_max"`
	Status         Status    `gorm:"size:32;not null;default:'applied'" json:"status"`
	DateApplied    Date      `gorm:"type:date;not null" json:"date_applied"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// SectionName returns the joined section name, or "" when unsectioned.
func (a *Application) SectionName() string {
	if a.Section == nil {
		return ""
	}
	return a.Section.Name
}

// ApplicationInput is the fully-typed, normalized result of validating a raw
// application form. Optional fields are explicit nils, never absent, and
// Status is always populated (defaulted to applied when the form omits it).
type ApplicationInput struct {
	CompanyName    string
	PositionTitle  string
	JobPostingURL  *string
	Location       *string
	WorkType       *WorkType
	SalaryRangeMin *int64
	SalaryRangeMax *int64
	Status         Status
	DateApplied    Date
	SectionID      *uuid.UUID
}
