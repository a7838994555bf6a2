package models

type ProcessorProduct struct {
	ProductBase

	Socket      string `gorm:"size:100" json:"socket" validate:"required"`
	Cores       int    `json:"cores" validate:"min=1,max=100"`
	Threads     int    `json:"threads" validate:"min=1,max=200"`
	Frequency   int    `json:"frequency" validate:"min=1,max=99999"`
	TechProcess string `gorm:"size:100" json:"tech_process"`
}

func (p *ProcessorProduct) ProductID() uint     { return p.ID }
func (p *ProcessorProduct) ProductType() string { return ProductTypeProcessor }
func (p *ProcessorProduct) Base() *ProductBase  { return &p.ProductBase }

func (ProcessorProduct) TableName() string { return "processor_products" }
