package models

import "github.com/shopspring/decimal"

type NotebookProduct struct {
	ProductBase

	Diagonal           string          `gorm:"size:225" json:"diagonal" validate:"required"`
	DisplayType        string          `gorm:"size:255" json:"display_type" validate:"required"`
	ProcessorFrequency decimal.Decimal `gorm:"type:decimal(4,2)" json:"processor_frequency"`
	// Installed RAM module. Deleting the module keeps the notebook and
	// nulls the reference.
	RamID             *uint       `gorm:"index" json:"ram_id"`
	Ram               *RamProduct `gorm:"foreignKey:RamID;constraint:OnDelete:SET NULL" json:"ram,omitempty"`
	NumberRamSlots    int         `json:"number_ram_slots" validate:"min=1,max=8"`
	MaxMemory         int         `json:"max_memory" validate:"min=1,max=999"`
	FreeSlots         int         `json:"free_slots" validate:"min=0,max=8,ltefield=NumberRamSlots"`
	GraphicsElement   string      `gorm:"size:255" json:"graphics_element"`
	TimeWithoutCharge string      `gorm:"size:255" json:"time_without_charge"`
}

func (p *NotebookProduct) ProductID() uint     { return p.ID }
func (p *NotebookProduct) ProductType() string { return ProductTypeNotebook }
func (p *NotebookProduct) Base() *ProductBase  { return &p.ProductBase }

func (NotebookProduct) TableName() string { return "notebook_products" }
