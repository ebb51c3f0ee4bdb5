package routes

import (
	"strings"

	"trip-planner-server/models"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/kataras/iris/v12"
)

// SearchActivities filters the catalog by city, keyword and category
func SearchActivities(ctx iris.Context) {
	cityID := ctx.URLParamIntDefault("cityID", 0)
	keyword := strings.TrimSpace(ctx.URLParamDefault("keyword", ""))
	category := strings.TrimSpace(ctx.URLParamDefault("category", ""))
	limit := ctx.URLParamIntDefault("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if category != "" && !models.ValidCategory(category) {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Unknown activity category.", ctx)
		return
	}

	query := storage.DB.Model(&models.Activity{}).Preload("City")

	if cityID > 0 {
		query = query.Where("city_id = ?", cityID)
	}
	if keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(description) LIKE ?", like, like)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var activities []models.Activity
	if err := query.Limit(limit).Find(&activities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(activities)
}

// GetActivitiesByCity lists a city's activities, best rated first
func GetActivitiesByCity(ctx iris.Context) {
	cityID, err := ctx.Params().GetUint("cityID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid city id.", ctx)
		return
	}

	category := strings.TrimSpace(ctx.URLParamDefault("category", ""))
	if category != "" && !models.ValidCategory(category) {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Unknown activity category.", ctx)
		return
	}
	limit := ctx.URLParamIntDefault("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := storage.DB.Where("city_id = ?", cityID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var activities []models.Activity
	if err := query.Order("rating DESC").Limit(limit).Find(&activities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(activities)
}

func GetActivity(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid activity id.", ctx)
		return
	}

	var activity models.Activity
	if err := storage.DB.Preload("City").First(&activity, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(activity)
}
