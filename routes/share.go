package routes

import (
	"os"
	"time"

	"trip-planner-server/models"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

// Share links are valid for 30 days from issuance.
const shareLinkTTL = 30 * 24 * time.Hour

// CreateShareLink issues a new share token for a trip the caller owns.
// A trip that exists but belongs to someone else gets the same not-found
// response as a missing one, so callers cannot probe for trip existence.
// Repeated calls create additional distinct links; there is no dedupe and the
// ownership check and insert are deliberately not wrapped in a transaction —
// concurrent issuance just yields multiple valid links.
func CreateShareLink(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)

	var input CreateShareLinkInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var trip models.Trip
	if err := storage.DB.Where("id = ? AND user_id = ?", input.TripID, claims.ID).First(&trip).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "NOT_FOUND", "Trip not found or unauthorized.", ctx)
		return
	}

	shareID := utils.GenerateShareToken(utils.ShareTokenBytes)
	if shareID == "" {
		utils.CreateInternalServerError(ctx)
		return
	}

	shareLink := models.ShareLink{
		ShareID:   shareID,
		TripID:    trip.ID,
		UserID:    claims.ID,
		ExpiresAt: time.Now().Add(shareLinkTTL),
	}

	if err := storage.DB.Create(&shareLink).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"shareUrl":  os.Getenv("FRONTEND_URL") + "/shared/" + shareID,
		"shareId":   shareID,
		"expiresAt": shareLink.ExpiresAt,
		"tripId":    shareLink.TripID,
	})
}

// GetSharedTrip redeems a share token. This is the one unauthenticated read
// path: it returns the full trip graph for display. Expired links are
// rejected with 410 but the row is kept.
func GetSharedTrip(ctx iris.Context) {
	token := ctx.Params().GetString("token")

	var shareLink models.ShareLink
	err := storage.DB.
		Preload("Trip").
		Preload("Trip.User").
		Preload("Trip.TripActivities").
		Preload("Trip.TripActivities.Activity").
		Preload("Trip.TripActivities.Activity.City").
		Where("share_id = ?", token).
		First(&shareLink).Error
	if err != nil {
		utils.CreateError(iris.StatusNotFound, "NOT_FOUND", "Share link not found.", ctx)
		return
	}

	if shareLink.Expired() {
		utils.CreateError(iris.StatusGone, "GONE", "Share link has expired.", ctx)
		return
	}

	var sharedBy iris.Map
	if shareLink.Trip != nil && shareLink.Trip.User != nil {
		owner := shareLink.Trip.User
		sharedBy = owner.PublicProfile()
		// Expose only the public owner subset inside the trip graph
		trimmed := models.User{Name: owner.Name, Email: owner.Email, AvatarURL: owner.AvatarURL}
		trimmed.ID = owner.ID
		shareLink.Trip.User = &trimmed
	}

	ctx.JSON(iris.Map{
		"trip":      shareLink.Trip,
		"sharedBy":  sharedBy,
		"expiresAt": shareLink.ExpiresAt,
	})
}

// RevokeShareLink deletes a share link. Only the issuer may revoke; a second
// revoke of the same token reports not found rather than silently succeeding.
func RevokeShareLink(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)
	token := ctx.Params().GetString("token")

	var shareLink models.ShareLink
	if err := storage.DB.Where("share_id = ?", token).First(&shareLink).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "NOT_FOUND", "Share link not found.", ctx)
		return
	}

	if shareLink.UserID != claims.ID {
		utils.CreateError(iris.StatusForbidden, "FORBIDDEN", "Unauthorized to revoke this link.", ctx)
		return
	}

	if err := storage.DB.Delete(&shareLink).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Share link revoked successfully"})
}

// GetUserShareLinks lists every link the caller has issued, newest first,
// each with a minimal trip summary.
func GetUserShareLinks(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.AccessToken)

	var shareLinks []models.ShareLink
	if err := storage.DB.
		Preload("Trip").
		Where("user_id = ?", claims.ID).
		Order("created_at DESC").
		Find(&shareLinks).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	results := make([]iris.Map, 0, len(shareLinks))
	for i := range shareLinks {
		link := &shareLinks[i]
		entry := iris.Map{
			"shareId":   link.ShareID,
			"expiresAt": link.ExpiresAt,
			"createdAt": link.CreatedAt,
		}
		if link.Trip != nil {
			entry["trip"] = iris.Map{
				"id":        link.Trip.ID,
				"name":      link.Trip.Name,
				"startDate": link.Trip.StartDate,
				"endDate":   link.Trip.EndDate,
			}
		}
		results = append(results, entry)
	}

	ctx.JSON(iris.Map{"shareLinks": results})
}

type CreateShareLinkInput struct {
	TripID uint `json:"tripId" validate:"required"`
}
