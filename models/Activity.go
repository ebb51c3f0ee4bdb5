package models

import "gorm.io/gorm"

// Activity categories
const (
	CategorySightseeing    = "SIGHTSEEING"
	CategoryFoodDrink      = "FOOD_DRINK"
	CategoryCulture        = "CULTURE"
	CategoryShopping       = "SHOPPING"
	CategoryNightlife      = "NIGHTLIFE"
	CategoryAdventure      = "ADVENTURE"
	CategorySports         = "SPORTS"
	CategoryRelaxation     = "RELAXATION"
	CategoryTransportation = "TRANSPORTATION"
)

type Activity struct {
	gorm.Model
	Name          string  `json:"name" gorm:"index;not null"`
	Description   string  `json:"description"`
	Category      string  `json:"category" gorm:"type:varchar(20);index"`
	EstimatedCost float64 `json:"estimatedCost"`
	Duration      int     `json:"duration"` // minutes
	Rating        float64 `json:"rating"`
	CityID        uint    `json:"cityID" gorm:"index;not null"`
	City          *City   `json:"city,omitempty" gorm:"foreignKey:CityID;references:ID"`
}

// ValidCategory reports whether category is one of the enumerated values.
func ValidCategory(category string) bool {
	for _, c := range ActivityCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ActivityCategories lists every valid category value.
var ActivityCategories = []string{
	CategorySightseeing,
	CategoryFoodDrink,
	CategoryCulture,
	CategoryShopping,
	CategoryNightlife,
	CategoryAdventure,
	CategorySports,
	CategoryRelaxation,
	CategoryTransportation,
}
