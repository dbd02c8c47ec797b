package database

import (
	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Color{},
		&domain.Occasion{},
		&domain.Weather{},
		&domain.Style{},
		&domain.Item{},
		&domain.Outfit{},
		&domain.OutfitItem{},
		&domain.Feedback{},
		&domain.ChatHistory{},
	)
}

// Seed 参考数据种子，幂等（按 ID FirstOrCreate）
func Seed(db *gorm.DB) error {
	occasions := []domain.Occasion{
		{ID: 1, Name: "Casual", Description: "Everyday outings and errands"},
		{ID: 2, Name: "Work", Description: "Office and business settings"},
		{ID: 3, Name: "Party", Description: "Evening events and celebrations"},
		{ID: 4, Name: "Date", Description: "Dates and romantic dinners"},
		{ID: 5, Name: "Sport", Description: "Workouts and outdoor activity"},
		{ID: 6, Name: "Wedding", Description: "Weddings and formal ceremonies"},
	}
	weathers := []domain.Weather{
		{ID: 1, Name: "Sunny", Description: "Warm and clear"},
		{ID: 2, Name: "Rainy", Description: "Wet, bring layers"},
		{ID: 3, Name: "Cold", Description: "Low temperatures"},
		{ID: 4, Name: "Hot", Description: "High temperatures and humidity"},
		{ID: 5, Name: "Windy", Description: "Strong wind"},
	}
	styles := []domain.Style{
		{ID: 1, Name: "Minimalist", Description: "Clean lines, neutral palette"},
		{ID: 2, Name: "Streetwear", Description: "Relaxed fits, bold graphics"},
		{ID: 3, Name: "Classic", Description: "Timeless tailored pieces"},
		{ID: 4, Name: "Vintage", Description: "Retro-inspired looks"},
		{ID: 5, Name: "Sporty", Description: "Athleisure and performance wear"},
	}
	categories := []domain.Category{
		{ID: 1, Name: "Top", Description: "Shirts, tees, blouses"},
		{ID: 2, Name: "Bottom", Description: "Pants, skirts, shorts"},
		{ID: 3, Name: "Outerwear", Description: "Jackets and coats"},
		{ID: 4, Name: "Footwear", Description: "Shoes and boots"},
		{ID: 5, Name: "Accessory", Description: "Bags, hats, jewelry"},
		{ID: 6, Name: "Dress", Description: "Dresses and jumpsuits"},
	}
	colors := []domain.Color{
		{ID: 1, Name: "Black", HexCode: "#000000"},
		{ID: 2, Name: "White", HexCode: "#FFFFFF"},
		{ID: 3, Name: "Navy", HexCode: "#000080"},
		{ID: 4, Name: "Beige", HexCode: "#F5F5DC"},
		{ID: 5, Name: "Red", HexCode: "#FF0000"},
		{ID: 6, Name: "Green", HexCode: "#008000"},
	}

	for i := range occasions {
		if err := db.FirstOrCreate(&occasions[i], domain.Occasion{ID: occasions[i].ID}).Error; err != nil {
			return err
		}
	}
	for i := range weathers {
		if err := db.FirstOrCreate(&weathers[i], domain.Weather{ID: weathers[i].ID}).Error; err != nil {
			return err
		}
	}
	for i := range styles {
		if err := db.FirstOrCreate(&styles[i], domain.Style{ID: styles[i].ID}).Error; err != nil {
			return err
		}
	}
	for i := range categories {
		if err := db.FirstOrCreate(&categories[i], domain.Category{ID: categories[i].ID}).Error; err != nil {
			return err
		}
	}
	for i := range colors {
		if err := db.FirstOrCreate(&colors[i], domain.Color{ID: colors[i].ID}).Error; err != nil {
			return err
		}
	}
	return nil
}
