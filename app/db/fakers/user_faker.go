package fakers

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/red-fox-ru/techshop/app/models"
)

func UserFaker() *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		Username:  faker.Username(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Country:   "RU",
		Phone:     fmt.Sprintf("9%09d", rand.Intn(1_000_000_000)),
		Password:  faker.Password(),
		Role:      models.RoleCustomer,
	}
}

func AdminFaker() *models.User {
	admin := UserFaker()
	admin.Username = "admin"
	admin.Role = models.RoleAdmin
	return admin
}
