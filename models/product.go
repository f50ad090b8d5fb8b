package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Storefront Product (Product API shape)
// ═══════════════════════════════════════════════════════════

// Product is a read-only catalog entry as delivered to the facet engine.
// Detail holds at most one typed sub-object.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	DiscountPrice  *float64          `json:"discountPrice,omitempty"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating,omitempty"`
	ImageURL       string            `json:"imageUrl,omitempty"`
	CategoryID     string            `json:"categoryId"`
	CategoryName   string            `json:"categoryName"`
	SKU            string            `json:"sku"`
	Brand          string            `json:"brand,omitempty"`
	Manufacturer   string            `json:"manufacturer,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Detail         ProductDetail     `json:"-"`
}

// EffectivePrice is the discount price when present, otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// DetailKind returns the tag of the typed sub-object, or "" when there is none.
func (p Product) DetailKind() DetailKind {
	if p.Detail == nil {
		return ""
	}
	return p.Detail.Kind()
}

type productWire Product

func (p *Product) UnmarshalJSON(data []byte) error {
	var wire productWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*p = Product(wire)
	p.Detail = nil
	for _, v := range detailVariants {
		raw, ok := keys[v.key]
		if !ok || string(raw) == "null" {
			continue
		}
		d := v.new()
		if err := json.Unmarshal(raw, d); err != nil {
			return fmt.Errorf("decode %s detail: %w", v.key, err)
		}
		p.Detail = d
		break
	}
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(productWire(p))
	if err != nil {
		return nil, err
	}
	if p.Detail == nil {
		return base, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	detail, err := json.Marshal(p.Detail)
	if err != nil {
		return nil, err
	}
	fields[detailKey(p.Detail.Kind())] = detail
	return json.Marshal(fields)
}

// ═══════════════════════════════════════════════════════════
// Persistence Model (GORM)
// ═══════════════════════════════════════════════════════════

// SpecMap is the free-form specification dictionary stored as JSONB.
type SpecMap map[string]string

func (s *SpecMap) Scan(value interface{}) error {
	if value == nil {
		*s = make(SpecMap)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan SpecMap")
	}
	return json.Unmarshal(bytes, s)
}

func (s SpecMap) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(s)
}

type ProductRecord struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string         `json:"name" gorm:"not null;index"`
	Description    string         `json:"description" gorm:"not null;default:''"`
	Price          float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	DiscountPrice  *float64       `json:"discount_price,omitempty" gorm:"type:numeric(12,2)"`
	Stock          int            `json:"stock" gorm:"not null;default:0"`
	Rating         float64        `json:"rating" gorm:"type:numeric(3,2);default:0"`
	ImageURL       string         `json:"image_url" gorm:"default:''"`
	SKU            string         `json:"sku" gorm:"uniqueIndex;not null"`
	Brand          string         `json:"brand" gorm:"default:''"`
	Manufacturer   string         `json:"manufacturer" gorm:"default:''"`
	CategoryID     uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	Category       *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Status         string         `json:"status" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	Specifications SpecMap        `json:"specifications" gorm:"type:jsonb;not null;default:'{}'"`
	DetailKind     string         `json:"detail_kind" gorm:"type:varchar(32);default:''"`
	Detail         datatypes.JSON `json:"detail" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *ProductRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductRecord) TableName() string {
	return "products"
}

// SetDetail stores d with its kind tag.
func (p *ProductRecord) SetDetail(d ProductDetail) error {
	if d == nil {
		p.DetailKind = ""
		p.Detail = nil
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode %s detail: %w", d.Kind(), err)
	}
	p.DetailKind = string(d.Kind())
	p.Detail = datatypes.JSON(raw)
	return nil
}

// ToProduct converts the stored row into the storefront shape. An unknown or
// undecodable detail degrades to a product without typed data.
func (p ProductRecord) ToProduct() Product {
	out := Product{
		ID:             p.ID.String(),
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		Stock:          p.Stock,
		Rating:         p.Rating,
		ImageURL:       p.ImageURL,
		CategoryID:     p.CategoryID.String(),
		SKU:            p.SKU,
		Brand:          p.Brand,
		Manufacturer:   p.Manufacturer,
		Specifications: map[string]string(p.Specifications),
	}
	if p.Category != nil {
		out.CategoryName = p.Category.Name
	}
	if d := NewDetail(DetailKind(p.DetailKind)); d != nil && len(p.Detail) > 0 {
		if err := json.Unmarshal(p.Detail, d); err == nil {
			out.Detail = d
		}
	}
	return out
}
