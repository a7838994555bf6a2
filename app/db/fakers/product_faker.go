package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"github.com/red-fox-ru/techshop/app/models"
	"github.com/shopspring/decimal"
)

var ramTypes = []string{"DDR2", "DDR3", "DDR4", "DDR5"}

func CategoryFaker(name string) *models.Category {
	return &models.Category{
		Name: name,
		Slug: slug.Make(name),
	}
}

func baseFaker(category *models.Category) models.ProductBase {
	title := faker.Name()
	return models.ProductBase{
		CategoryID:  category.ID,
		Title:       title,
		Slug:        slug.Make(title + "-" + faker.Word()),
		Description: faker.Paragraph(),
		Price:       fakePrice(),
		Year:        2015 + rand.Intn(10),
	}
}

func RamFaker(category *models.Category) *models.RamProduct {
	return &models.RamProduct{
		ProductBase: baseFaker(category),
		RamType:     ramTypes[rand.Intn(len(ramTypes))],
		CountMemory: []int{4, 8, 16, 32, 64}[rand.Intn(5)],
		Frequency:   2133 + 400*rand.Intn(10),
	}
}

func NotebookFaker(category *models.Category, ram *models.RamProduct) *models.NotebookProduct {
	slots := 1 + rand.Intn(4)
	notebook := &models.NotebookProduct{
		ProductBase:        baseFaker(category),
		Diagonal:           fmt.Sprintf("%d.%d", 13+rand.Intn(4), rand.Intn(10)),
		DisplayType:        "IPS",
		ProcessorFrequency: decimal.NewFromFloat(1.8 + float64(rand.Intn(20))/10),
		NumberRamSlots:     slots,
		MaxMemory:          64,
		FreeSlots:          rand.Intn(slots + 1),
		GraphicsElement:    faker.Word(),
		TimeWithoutCharge:  fmt.Sprintf("%d hours", 4+rand.Intn(10)),
	}
	if ram != nil {
		notebook.RamID = &ram.ID
	}
	return notebook
}

func SmartphoneFaker(category *models.Category) *models.SmartphoneProduct {
	return &models.SmartphoneProduct{
		ProductBase:        baseFaker(category),
		Diagonal:           fmt.Sprintf("6.%d", rand.Intn(10)),
		DisplayType:        "AMOLED",
		Resolution:         "2340x1080",
		ProcessorFrequency: decimal.NewFromFloat(2.0 + float64(rand.Intn(10))/10),
		Ram:                fmt.Sprintf("%d GB", []int{4, 6, 8, 12}[rand.Intn(4)]),
		AccumVolume:        3000 + 500*rand.Intn(5),
		SD:                 rand.Intn(2) == 1,
		SdVolumeMax:        []int{128, 256, 512}[rand.Intn(3)],
		MainCam:            12 + rand.Intn(100),
		FrontCam:           8 + rand.Intn(24),
	}
}

func ProcessorFaker(category *models.Category) *models.ProcessorProduct {
	cores := []int{4, 6, 8, 12, 16}[rand.Intn(5)]
	return &models.ProcessorProduct{
		ProductBase: baseFaker(category),
		Socket:      []string{"AM4", "AM5", "LGA1700", "LGA1200"}[rand.Intn(4)],
		Cores:       cores,
		Threads:     cores * 2,
		Frequency:   2800 + 100*rand.Intn(20),
		TechProcess: []string{"7 nm", "10 nm", "14 nm"}[rand.Intn(3)],
	}
}

func fakePrice() decimal.Decimal {
	return decimal.New(int64(99900+100*rand.Intn(20000)), -2)
}
