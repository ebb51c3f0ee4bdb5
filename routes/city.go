package routes

import (
	"strings"

	"trip-planner-server/models"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/kataras/iris/v12"
)

// SearchCities matches cities by name or country, case-insensitive
func SearchCities(ctx iris.Context) {
	keyword := strings.TrimSpace(ctx.URLParamDefault("keyword", ""))
	limit := ctx.URLParamIntDefault("limit", 10)
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	if keyword == "" {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Keyword is required.", ctx)
		return
	}

	like := "%" + strings.ToLower(keyword) + "%"
	var cities []models.City
	if err := storage.DB.
		Where("lower(name) LIKE ? OR lower(country) LIKE ?", like, like).
		Limit(limit).
		Find(&cities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(cities)
}

// GetPopularCities orders the catalog by activity count
func GetPopularCities(ctx iris.Context) {
	limit := ctx.URLParamIntDefault("limit", 10)
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var cities []models.City
	if err := storage.DB.
		Select("cities.*").
		Joins("LEFT JOIN activities ON activities.city_id = cities.id AND activities.deleted_at IS NULL").
		Group("cities.id").
		Order("COUNT(activities.id) DESC").
		Limit(limit).
		Find(&cities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	results := make([]iris.Map, 0, len(cities))
	for i := range cities {
		var activityCount int64
		storage.DB.Model(&models.Activity{}).Where("city_id = ?", cities[i].ID).Count(&activityCount)
		results = append(results, iris.Map{
			"city":          cities[i],
			"activityCount": activityCount,
		})
	}

	ctx.JSON(results)
}

func GetCity(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid city id.", ctx)
		return
	}

	var city models.City
	if err := storage.DB.Preload("Activities").First(&city, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(city)
}
