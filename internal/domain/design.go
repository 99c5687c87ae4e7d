package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChildType is an optional tag narrowing who a design is cut for.
type ChildType string

const (
	ChildTypeNone   ChildType = "none"
	ChildTypeBoys   ChildType = "boys"
	ChildTypeGirls  ChildType = "girls"
	ChildTypeUnisex ChildType = "unisex"
)

type Design struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"size:180;not null" json:"name"`
	Color     string      `gorm:"size:100" json:"color"`
	Fabric    string      `gorm:"size:100" json:"fabric"`
	ImageURL  string      `gorm:"size:255" json:"image_url"`
	ChildType ChildType   `gorm:"type:varchar(10);default:'none'" json:"child_type"`
	Label     string      `gorm:"size:60" json:"label"`
	Inventory StockMatrix `gorm:"type:jsonb;serializer:json" json:"inventory"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
