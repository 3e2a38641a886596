package models

import (
	"time"
)

// ModuleDB represents a course module row in the database.
type ModuleDB struct {
	ID               int64     `json:"id" db:"id"`                             // Business key, chosen by the editor
	Name             string    `json:"name" db:"name"`                         // Module name
	ShortDescription string    `json:"shortdescription" db:"shortdescription"` // One-line teaser
	Description      string    `json:"description" db:"description"`           // Full description
	Content          string    `json:"content" db:"content"`                   // Course content
	StudyCredit      int       `json:"studycredit" db:"studycredit"`           // EC credits
	Location         string    `json:"location" db:"location"`                 // Campus
	ContactID        *int64    `json:"contact_id,omitempty" db:"contact_id"`   // Optional contact person
	Level            string    `json:"level" db:"level"`                       // NLQF level
	LearningOutcomes *string   `json:"learningoutcomes,omitempty" db:"learningoutcomes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// ModuleCreateRequest represents the JSON body for creating a module
// swagger:model ModuleCreateRequest
type ModuleCreateRequest struct {
	// Module id
	// required: true
	// example: 42
	ID int64 `json:"id" validate:"required,gt=0"`

	// Module name
	// required: true
	// example: Web Development
	Name string `json:"name" validate:"required,notblank,max=255"`

	// Short description
	// example: Build modern web applications
	ShortDescription string `json:"shortdescription" validate:"max=1000"`

	// Description
	Description string `json:"description"`

	// Content
	Content string `json:"content"`

	// Study credits
	// required: true
	// example: 15
	StudyCredit int `json:"studycredit" validate:"required,gt=0"`

	// Location
	// required: true
	// example: Breda
	Location string `json:"location" validate:"required,notblank,max=255"`

	// Contact person id
	ContactID *int64 `json:"contact_id,omitempty" validate:"omitempty,gt=0"`

	// Level
	// required: true
	// example: NLQF-5
	Level string `json:"level" validate:"required,notblank,max=64"`

	// Learning outcomes
	LearningOutcomes *string `json:"learningoutcomes,omitempty"`
}

// ToModuleDB converts the request into a row ready to insert.
func (r *ModuleCreateRequest) ToModuleDB() *ModuleDB {
	return &ModuleDB{
		ID:               r.ID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Content:          r.Content,
		StudyCredit:      r.StudyCredit,
		Location:         r.Location,
		ContactID:        r.ContactID,
		Level:            r.Level,
		LearningOutcomes: r.LearningOutcomes,
	}
}

// ModuleUpdateRequest represents a partial module update. Nil fields are left untouched.
// swagger:model ModuleUpdateRequest
type ModuleUpdateRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	ShortDescription *string `json:"shortdescription,omitempty" validate:"omitempty,max=1000"`
	Description      *string `json:"description,omitempty"`
	Content          *string `json:"content,omitempty"`
	StudyCredit      *int    `json:"studycredit,omitempty" validate:"omitempty,gt=0"`
	Location         *string `json:"location,omitempty" validate:"omitempty,notblank,max=255"`
	ContactID        *int64  `json:"contact_id,omitempty" validate:"omitempty,gt=0"`
	Level            *string `json:"level,omitempty" validate:"omitempty,notblank,max=64"`
	LearningOutcomes *string `json:"learningoutcomes,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (r *ModuleUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.ShortDescription == nil && r.Description == nil &&
		r.Content == nil && r.StudyCredit == nil && r.Location == nil &&
		r.ContactID == nil && r.Level == nil && r.LearningOutcomes == nil
}

// ApplyTo copies the provided fields onto an existing row.
func (r *ModuleUpdateRequest) ApplyTo(m *ModuleDB) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.ShortDescription != nil {
		m.ShortDescription = *r.ShortDescription
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.StudyCredit != nil {
		m.StudyCredit = *r.StudyCredit
	}
	if r.Location != nil {
		m.Location = *r.Location
	}
	if r.ContactID != nil {
		m.ContactID = r.ContactID
	}
	if r.Level != nil {
		m.Level = *r.Level
	}
	if r.LearningOutcomes != nil {
		m.LearningOutcomes = r.LearningOutcomes
	}
}

// ModuleFacets lists the distinct filter values present in the catalog.
// swagger:model ModuleFacets
type ModuleFacets struct {
	Credits   []int    `json:"credits"`
	Levels    []string `json:"levels"`
	Locations []string `json:"locations"`
}
