package routes

import (
	"net/http"
	"strings"

	"trip-planner-server/models"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/kataras/iris/v12"
)

// AdminListUsers - GET /admin/users?status=&q=&page=&per_page=
func AdminListUsers(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := strings.TrimSpace(ctx.URLParamDefault("q", ""))
	status := strings.TrimSpace(ctx.URLParamDefault("status", ""))

	query := storage.DB.Model(&models.User{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(email) LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&users).Error; err != nil {
		ctx.StatusCode(http.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "INTERNAL", "message": "Failed to list users."})
		return
	}

	results := make([]iris.Map, 0, len(users))
	for i := range users {
		var tripCount int64
		storage.DB.Model(&models.Trip{}).Where("user_id = ?", users[i].ID).Count(&tripCount)
		results = append(results, iris.Map{
			"user":      &users[i],
			"tripCount": tripCount,
		})
	}

	utils.JSONPage(ctx, results, page, perPage, total)
}

// AdminUpdateUserStatus - PUT /admin/users/:id/status
func AdminUpdateUserStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "VALIDATION", "message": "Invalid user id."})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil ||
		(body.Status != models.StatusActive && body.Status != models.StatusSuspended) {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "VALIDATION", "message": "Invalid status."})
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	before := user
	user.Status = body.Status
	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "user.status_change", "user", user.ID,
		iris.Map{"id": before.ID, "email": before.Email, "status": before.Status},
		iris.Map{"id": user.ID, "email": user.Email, "status": user.Status})

	ctx.JSON(iris.Map{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"status": user.Status,
	})
}

// AdminDeleteUser - DELETE /admin/users/:id
// Admin accounts cannot be deleted. Related trips, itinerary entries and
// share links go with the user.
func AdminDeleteUser(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithJSON(http.StatusBadRequest, iris.Map{"error": "VALIDATION", "message": "Invalid user id."})
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if user.Role == models.RoleAdmin {
		utils.CreateError(iris.StatusForbidden, "FORBIDDEN", "Cannot delete admin users.", ctx)
		return
	}

	var tripIDs []uint
	storage.DB.Model(&models.Trip{}).Where("user_id = ?", user.ID).Pluck("id", &tripIDs)
	if len(tripIDs) > 0 {
		storage.DB.Where("trip_id IN ?", tripIDs).Delete(&models.TripActivity{})
	}
	storage.DB.Where("user_id = ?", user.ID).Delete(&models.ShareLink{})
	storage.DB.Where("user_id = ?", user.ID).Delete(&models.Trip{})

	// Hard delete: a soft-deleted row would keep holding the unique email,
	// blocking re-registration forever.
	if err := storage.DB.Unscoped().Delete(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "user.delete", "user", user.ID, user.PublicProfile(), nil)

	ctx.JSON(iris.Map{"message": "User deleted successfully"})
}

// AdminListTrips - GET /admin/trips?status=&user_id=&page=&per_page=
func AdminListTrips(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := strings.TrimSpace(ctx.URLParamDefault("status", ""))
	userID := ctx.URLParamIntDefault("user_id", 0)

	query := storage.DB.Model(&models.Trip{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	var trips []models.Trip
	if err := query.Preload("User").Order("created_at DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&trips).Error; err != nil {
		ctx.StatusCode(http.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "INTERNAL", "message": "Failed to list trips."})
		return
	}

	results := make([]iris.Map, 0, len(trips))
	for i := range trips {
		var activityCount int64
		storage.DB.Model(&models.TripActivity{}).Where("trip_id = ?", trips[i].ID).Count(&activityCount)
		entry := iris.Map{
			"trip":          &trips[i],
			"activityCount": activityCount,
		}
		if trips[i].User != nil {
			entry["owner"] = trips[i].User.PublicProfile()
		}
		results = append(results, entry)
	}

	utils.JSONPage(ctx, results, page, perPage, total)
}

// AdminActivity - GET /admin/activity
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"data": logs, "meta": iris.Map{}, "links": iris.Map{}})
}
