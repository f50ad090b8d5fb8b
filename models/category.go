package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a storefront product category
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null" db:"slug"`
	Name        string    `json:"name" gorm:"not null" db:"name"`
	Description string    `json:"description" gorm:"not null;default:''" db:"description"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')" db:"status"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	// Auto-generate UUID v7 if not set
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// Ref is the slug/name pair the facet classifier works on.
func (c Category) Ref() CategoryRef {
	return CategoryRef{Slug: c.Slug, Name: c.Name}
}

// StorefrontCategory is the public list shape
type StorefrontCategory struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"product_count"`
}
