package models

import "github.com/shopspring/decimal"

type SmartphoneProduct struct {
	ProductBase

	Diagonal           string          `gorm:"size:225" json:"diagonal" validate:"required"`
	DisplayType        string          `gorm:"size:255" json:"display_type" validate:"required"`
	Resolution         string          `gorm:"size:255" json:"resolution" validate:"required"`
	ProcessorFrequency decimal.Decimal `gorm:"type:decimal(4,2)" json:"processor_frequency"`
	Ram                string          `gorm:"size:255" json:"ram"`
	AccumVolume        int             `json:"accum_volume" validate:"min=1,max=99999"`
	SD                 bool            `gorm:"default:false" json:"sd"`
	SdVolumeMax        int             `json:"sd_volume_max" validate:"min=1,max=999"`
	MainCam            int             `json:"main_cam" validate:"min=1,max=999"`
	FrontCam           int             `json:"front_cam" validate:"min=1,max=999"`
}

func (p *SmartphoneProduct) ProductID() uint     { return p.ID }
func (p *SmartphoneProduct) ProductType() string { return ProductTypeSmartphone }
func (p *SmartphoneProduct) Base() *ProductBase  { return &p.ProductBase }

func (SmartphoneProduct) TableName() string { return "smartphone_products" }
