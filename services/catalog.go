package services

import (
	"log"
	"strings"

	"trip-planner-server/models"
	"trip-planner-server/storage"

	"gorm.io/gorm/clause"
)

// MapActivityCategory maps a free-text activity type to a category by keyword.
// Unmatched types fall through to TRANSPORTATION.
func MapActivityCategory(activityType string) string {
	lower := strings.ToLower(activityType)

	switch {
	case containsAny(lower, "museum", "art", "culture"):
		return models.CategoryCulture
	case containsAny(lower, "food", "restaurant", "dining"):
		return models.CategoryFoodDrink
	case containsAny(lower, "adventure", "sport"):
		return models.CategoryAdventure
	case containsAny(lower, "nature", "park", "outdoor"):
		return models.CategorySports // closest match for nature
	case containsAny(lower, "shop", "market"):
		return models.CategoryShopping
	case containsAny(lower, "night", "club", "bar"):
		return models.CategoryNightlife
	case containsAny(lower, "relax", "spa", "wellness"):
		return models.CategoryRelaxation
	case containsAny(lower, "sight", "tour"):
		return models.CategorySightseeing
	}

	return models.CategoryTransportation
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

type seedCity struct {
	Name        string
	Country     string
	CatalogCode string
	Lat, Lon    float64
}

var citiesToSeed = []seedCity{
	{"Paris", "France", "PAR", 48.8566, 2.3522},
	{"London", "United Kingdom", "LON", 51.5074, -0.1278},
	{"New York", "United States", "NYC", 40.7128, -74.0060},
	{"Tokyo", "Japan", "TYO", 35.6762, 139.6503},
	{"Dubai", "United Arab Emirates", "DXB", 25.2048, 55.2708},
	{"Barcelona", "Spain", "BCN", 41.3851, 2.1734},
	{"Rome", "Italy", "ROM", 41.9028, 12.4964},
	{"Amsterdam", "Netherlands", "AMS", 52.3676, 4.9041},
	{"Sydney", "Australia", "SYD", -33.8688, 151.2093},
	{"Bangkok", "Thailand", "BKK", 13.7563, 100.5018},
}

var sampleActivities = []struct {
	Name string
	Type string
	Cost float64
}{
	{"City Tour", "sightseeing tour", 50},
	{"Local Restaurant", "restaurant", 30},
	{"Museum Visit", "museum", 20},
	{"Shopping District", "shopping", 0},
	{"Nightclub", "nightclub", 40},
}

// SeedCatalog upserts the starter cities (by catalog code) and gives each one
// a handful of sample activities. Existing activities are left alone.
func SeedCatalog() error {
	for _, cityData := range citiesToSeed {
		city := models.City{
			Name:        cityData.Name,
			Country:     cityData.Country,
			CatalogCode: cityData.CatalogCode,
			Latitude:    cityData.Lat,
			Longitude:   cityData.Lon,
			Description: cityData.Name + ", " + cityData.Country,
		}
		err := storage.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "catalog_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "country", "latitude", "longitude"}),
		}).Create(&city).Error
		if err != nil {
			log.Printf("seed: city %s failed: %v", cityData.Name, err)
			continue
		}

		// Re-read to get the ID when the row already existed
		if city.ID == 0 {
			if err := storage.DB.First(&city, "catalog_code = ?", cityData.CatalogCode).Error; err != nil {
				continue
			}
		}

		var existing int64
		storage.DB.Model(&models.Activity{}).Where("city_id = ?", city.ID).Count(&existing)
		if existing > 0 {
			continue
		}

		for _, activityData := range sampleActivities {
			activity := models.Activity{
				Name:          city.Name + " - " + activityData.Name,
				Description:   "Enjoy " + activityData.Name + " in " + city.Name,
				Category:      MapActivityCategory(activityData.Type),
				EstimatedCost: activityData.Cost,
				Duration:      120,
				Rating:        4.5,
				CityID:        city.ID,
			}
			if err := storage.DB.Create(&activity).Error; err != nil {
				continue
			}
		}

		log.Printf("seed: %s ready", city.Name)
	}

	var cityCount, activityCount int64
	storage.DB.Model(&models.City{}).Count(&cityCount)
	storage.DB.Model(&models.Activity{}).Count(&activityCount)
	log.Printf("seed: %d cities, %d activities in catalog", cityCount, activityCount)

	return nil
}
