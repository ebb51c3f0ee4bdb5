package routes

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"trip-planner-server/models"
	"trip-planner-server/storage"
)

func TestTripCRUD(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	alice := createTestUser(t, "Alice", "alice@example.com")
	token := signTestToken(t, alice.ID, models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/api/trip", token,
		`{"name":"Euro Tour","startDate":"2025-06-01T00:00:00Z","endDate":"2025-06-14T00:00:00Z","destinations":["Paris","Rome"]}`)
	expectStatus(t, resp, http.StatusCreated)
	trip := decodeBody(t, resp)["trip"].(map[string]interface{})
	tripID := uint(trip["ID"].(float64))

	destinations := trip["destinations"].([]interface{})
	if len(destinations) != 2 || destinations[0] != "Paris" {
		t.Fatalf("expected destination list, got %v", destinations)
	}
	if trip["status"] != "PLANNING" {
		t.Fatalf("expected new trips to start in PLANNING, got %v", trip["status"])
	}

	// Dates out of order are rejected before anything is written
	respBad := doJSON(t, app, http.MethodPost, "/api/trip", token,
		`{"name":"Backwards","startDate":"2025-06-14T00:00:00Z","endDate":"2025-06-01T00:00:00Z"}`)
	expectStatus(t, respBad, http.StatusBadRequest)

	respList := doJSON(t, app, http.MethodGet, "/api/trip", token, "")
	expectStatus(t, respList, http.StatusOK)
	trips := decodeBody(t, respList)["trips"].([]interface{})
	if len(trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(trips))
	}

	respPatch := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/trip/%d", tripID), token,
		`{"status":"UPCOMING"}`)
	expectStatus(t, respPatch, http.StatusOK)
	if decodeBody(t, respPatch)["trip"].(map[string]interface{})["status"] != "UPCOMING" {
		t.Fatal("expected status update to stick")
	}

	respDelete := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/trip/%d", tripID), token, "")
	expectStatus(t, respDelete, http.StatusOK)

	respGone := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/trip/%d", tripID), token, "")
	expectStatus(t, respGone, http.StatusNotFound)
}

func TestTripOwnershipHiding(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")
	trip := createTestTrip(t, alice.ID, "Alice Trip", time.Now(), time.Now().AddDate(0, 0, 5))

	// Someone else's trip reads as not found, never as forbidden
	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/trip/%d", trip.ID),
		signTestToken(t, bob.ID, models.RoleUser), "")
	expectStatus(t, resp, http.StatusNotFound)

	respPatch := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/trip/%d", trip.ID),
		signTestToken(t, bob.ID, models.RoleUser), `{"name":"Hijacked"}`)
	expectStatus(t, respPatch, http.StatusNotFound)

	respDelete := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/trip/%d", trip.ID),
		signTestToken(t, bob.ID, models.RoleUser), "")
	expectStatus(t, respDelete, http.StatusNotFound)
}

func TestTripActivities(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)

	alice := createTestUser(t, "Alice", "alice@example.com")
	token := signTestToken(t, alice.ID, models.RoleUser)
	trip := createTestTrip(t, alice.ID, "Paris", time.Now(), time.Now().AddDate(0, 0, 5))

	city := models.City{Name: "Paris", Country: "France", CatalogCode: "PAR"}
	storage.DB.Create(&city)
	activity := models.Activity{Name: "Louvre", Category: models.CategoryCulture, CityID: city.ID}
	storage.DB.Create(&activity)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/trip/%d/activities", trip.ID), token,
		fmt.Sprintf(`{"activityID":%d,"notes":"morning visit"}`, activity.ID))
	expectStatus(t, resp, http.StatusCreated)
	entry := decodeBody(t, resp)["tripActivity"].(map[string]interface{})
	entryID := uint(entry["ID"].(float64))
	if entry["notes"] != "morning visit" {
		t.Fatalf("expected notes persisted, got %v", entry["notes"])
	}

	// Unknown catalog activity
	respMissing := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/trip/%d/activities", trip.ID), token,
		`{"activityID":99999}`)
	expectStatus(t, respMissing, http.StatusNotFound)

	// Full graph on read
	respTrip := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/trip/%d", trip.ID), token, "")
	expectStatus(t, respTrip, http.StatusOK)
	tripBody := decodeBody(t, respTrip)["trip"].(map[string]interface{})
	tripActivities := tripBody["tripActivities"].([]interface{})
	if len(tripActivities) != 1 {
		t.Fatalf("expected 1 itinerary entry, got %d", len(tripActivities))
	}

	respRemove := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/trip/%d/activities/%d", trip.ID, entryID), token, "")
	expectStatus(t, respRemove, http.StatusOK)

	respRemoveAgain := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/trip/%d/activities/%d", trip.ID, entryID), token, "")
	expectStatus(t, respRemoveAgain, http.StatusNotFound)
}
