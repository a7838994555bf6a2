package models

type RamProduct struct {
	ProductBase

	RamType     string `gorm:"size:9;not null" json:"ram_type" validate:"required,oneof=DDR2 DDR3 DDR4 DDR5"`
	CountMemory int    `json:"count_memory" validate:"min=1,max=999"`
	Frequency   int    `json:"frequency" validate:"min=1,max=99999"`
}

func (p *RamProduct) ProductID() uint     { return p.ID }
func (p *RamProduct) ProductType() string { return ProductTypeRam }
func (p *RamProduct) Base() *ProductBase  { return &p.ProductBase }

func (RamProduct) TableName() string { return "ram_products" }
