package routes

import (
	"encoding/json"
	"time"

	"trip-planner-server/models"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/datatypes"
)

func CreateTrip(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)

	var input CreateTripInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.EndDate.Before(input.StartDate) {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "endDate must not be before startDate.", ctx)
		return
	}

	destinations, _ := json.Marshal(input.Destinations)

	trip := models.Trip{
		UserID:       claims.ID,
		Name:         input.Name,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Destinations: datatypes.JSON(destinations),
		Status:       "PLANNING",
	}

	if err := storage.DB.Create(&trip).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"trip": &trip})
}

// GetUserTrips lists the caller's trips, newest first, with activity counts
func GetUserTrips(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)

	var trips []models.Trip
	if err := storage.DB.Where("user_id = ?", claims.ID).
		Order("created_at DESC").
		Find(&trips).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	results := make([]iris.Map, 0, len(trips))
	for i := range trips {
		var activityCount int64
		storage.DB.Model(&models.TripActivity{}).Where("trip_id = ?", trips[i].ID).Count(&activityCount)
		results = append(results, iris.Map{
			"trip":          &trips[i],
			"activityCount": activityCount,
		})
	}

	ctx.JSON(iris.Map{"trips": results})
}

// GetTrip returns the full itinerary graph for a trip the caller owns.
// A trip that exists but belongs to someone else is reported as not found.
func GetTrip(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid trip id.", ctx)
		return
	}

	var trip models.Trip
	findErr := storage.DB.
		Preload("TripActivities").
		Preload("TripActivities.Activity").
		Preload("TripActivities.Activity.City").
		Where("id = ? AND user_id = ?", id, claims.ID).
		First(&trip).Error
	if findErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(iris.Map{"trip": &trip})
}

func UpdateTrip(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid trip id.", ctx)
		return
	}

	var trip models.Trip
	if err := storage.DB.Where("id = ? AND user_id = ?", id, claims.ID).First(&trip).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var input UpdateTripInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Name != "" {
		trip.Name = input.Name
	}
	if input.StartDate != nil {
		trip.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = *input.EndDate
	}
	if input.Destinations != nil {
		destinations, _ := json.Marshal(input.Destinations)
		trip.Destinations = datatypes.JSON(destinations)
	}
	if input.Status != "" {
		trip.Status = input.Status
	}

	if trip.EndDate.Before(trip.StartDate) {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "endDate must not be before startDate.", ctx)
		return
	}

	if err := storage.DB.Save(&trip).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"trip": &trip})
}

// DeleteTrip removes a trip together with its itinerary entries and share links
func DeleteTrip(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid trip id.", ctx)
		return
	}

	var trip models.Trip
	if err := storage.DB.Where("id = ? AND user_id = ?", id, claims.ID).First(&trip).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	storage.DB.Where("trip_id = ?", trip.ID).Delete(&models.TripActivity{})
	storage.DB.Where("trip_id = ?", trip.ID).Delete(&models.ShareLink{})
	if err := storage.DB.Delete(&trip).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Trip deleted successfully"})
}

// AddTripActivity attaches a catalog activity to the trip's itinerary
func AddTripActivity(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid trip id.", ctx)
		return
	}

	var trip models.Trip
	if err := storage.DB.Where("id = ? AND user_id = ?", id, claims.ID).First(&trip).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var input AddTripActivityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var activity models.Activity
	if err := storage.DB.First(&activity, input.ActivityID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	tripActivity := models.TripActivity{
		TripID:      trip.ID,
		ActivityID:  activity.ID,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
	}

	if err := storage.DB.Create(&tripActivity).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	tripActivity.Activity = &activity
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"tripActivity": tripActivity})
}

// RemoveTripActivity detaches an itinerary entry from a trip the caller owns
func RemoveTripActivity(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid trip id.", ctx)
		return
	}
	tripActivityID, err := ctx.Params().GetUint("tripActivityID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "VALIDATION", "Invalid itinerary entry id.", ctx)
		return
	}

	var trip models.Trip
	if err := storage.DB.Where("id = ? AND user_id = ?", id, claims.ID).First(&trip).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var tripActivity models.TripActivity
	if err := storage.DB.Where("id = ? AND trip_id = ?", tripActivityID, trip.ID).First(&tripActivity).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&tripActivity).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Activity removed from trip"})
}

type CreateTripInput struct {
	Name         string    `json:"name" validate:"required,max=256"`
	StartDate    time.Time `json:"startDate" validate:"required"`
	EndDate      time.Time `json:"endDate" validate:"required"`
	Destinations []string  `json:"destinations"`
}

type UpdateTripInput struct {
	Name         string     `json:"name" validate:"omitempty,max=256"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Destinations []string   `json:"destinations"`
	Status       string     `json:"status" validate:"omitempty,oneof=PLANNING UPCOMING ONGOING COMPLETED"`
}

type AddTripActivityInput struct {
	ActivityID  uint       `json:"activityID" validate:"required"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Notes       string     `json:"notes" validate:"omitempty,max=1024"`
}
