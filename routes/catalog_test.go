package routes

import (
	"fmt"
	"net/http"
	"testing"

	"trip-planner-server/models"
	"trip-planner-server/storage"
)

func seedCatalogFixtures(t *testing.T) (models.City, models.City) {
	t.Helper()

	paris := models.City{Name: "Paris", Country: "France", CatalogCode: "PAR"}
	rome := models.City{Name: "Rome", Country: "Italy", CatalogCode: "ROM"}
	storage.DB.Create(&paris)
	storage.DB.Create(&rome)

	storage.DB.Create(&models.Activity{Name: "Louvre Museum", Description: "Art museum", Category: models.CategoryCulture, CityID: paris.ID, Rating: 4.8})
	storage.DB.Create(&models.Activity{Name: "Seine Dinner Cruise", Description: "Evening dining", Category: models.CategoryFoodDrink, CityID: paris.ID, Rating: 4.2})
	storage.DB.Create(&models.Activity{Name: "Colosseum Tour", Description: "Guided tour", Category: models.CategorySightseeing, CityID: rome.ID, Rating: 4.6})

	return paris, rome
}

func TestSearchCities(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)
	seedCatalogFixtures(t)

	// Keyword is mandatory
	resp := doJSON(t, app, http.MethodGet, "/api/city/search", "", "")
	expectStatus(t, resp, http.StatusBadRequest)

	respName := doJSON(t, app, http.MethodGet, "/api/city/search?keyword=par", "", "")
	expectStatus(t, respName, http.StatusOK)
	var cities []map[string]interface{}
	mustDecodeList(t, respName.Body.Bytes(), &cities)
	if len(cities) != 1 || cities[0]["name"] != "Paris" {
		t.Fatalf("expected Paris, got %v", cities)
	}

	// Country matches too
	respCountry := doJSON(t, app, http.MethodGet, "/api/city/search?keyword=italy", "", "")
	expectStatus(t, respCountry, http.StatusOK)
	mustDecodeList(t, respCountry.Body.Bytes(), &cities)
	if len(cities) != 1 || cities[0]["name"] != "Rome" {
		t.Fatalf("expected Rome by country, got %v", cities)
	}
}

func TestPopularCitiesOrdering(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)
	paris, _ := seedCatalogFixtures(t)

	resp := doJSON(t, app, http.MethodGet, "/api/city/popular", "", "")
	expectStatus(t, resp, http.StatusOK)
	var results []map[string]interface{}
	mustDecodeList(t, resp.Body.Bytes(), &results)

	if len(results) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(results))
	}
	first := results[0]["city"].(map[string]interface{})
	if first["name"] != paris.Name {
		t.Fatalf("expected Paris first (most activities), got %v", first["name"])
	}
	if int64(results[0]["activityCount"].(float64)) != 2 {
		t.Fatalf("expected activity count 2, got %v", results[0]["activityCount"])
	}
}

func TestGetCityWithActivities(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)
	paris, _ := seedCatalogFixtures(t)

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/city/%d", paris.ID), "", "")
	expectStatus(t, resp, http.StatusOK)
	city := decodeBody(t, resp)
	if len(city["activities"].([]interface{})) != 2 {
		t.Fatalf("expected embedded activities, got %v", city["activities"])
	}

	respMissing := doJSON(t, app, http.MethodGet, "/api/city/99999", "", "")
	expectStatus(t, respMissing, http.StatusNotFound)
}

func TestSearchActivities(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)
	paris, _ := seedCatalogFixtures(t)

	var activities []map[string]interface{}

	// Keyword match against name and description
	resp := doJSON(t, app, http.MethodGet, "/api/activity/search?keyword=museum", "", "")
	expectStatus(t, resp, http.StatusOK)
	mustDecodeList(t, resp.Body.Bytes(), &activities)
	if len(activities) != 1 || activities[0]["name"] != "Louvre Museum" {
		t.Fatalf("expected museum match, got %v", activities)
	}

	// City + category filters combine
	path := fmt.Sprintf("/api/activity/search?cityID=%d&category=%s", paris.ID, models.CategoryFoodDrink)
	respFiltered := doJSON(t, app, http.MethodGet, path, "", "")
	expectStatus(t, respFiltered, http.StatusOK)
	mustDecodeList(t, respFiltered.Body.Bytes(), &activities)
	if len(activities) != 1 || activities[0]["name"] != "Seine Dinner Cruise" {
		t.Fatalf("expected filtered result, got %v", activities)
	}

	// A category outside the enumeration is rejected up front
	respBadCategory := doJSON(t, app, http.MethodGet, "/api/activity/search?category=SNORKELING", "", "")
	expectStatus(t, respBadCategory, http.StatusBadRequest)

	// By-city listing is rating-ordered
	respCity := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/activity/city/%d", paris.ID), "", "")
	expectStatus(t, respCity, http.StatusOK)
	mustDecodeList(t, respCity.Body.Bytes(), &activities)
	if len(activities) != 2 || activities[0]["name"] != "Louvre Museum" {
		t.Fatalf("expected rating-descending order, got %v", activities)
	}

	respBadCityCategory := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/activity/city/%d?category=SNORKELING", paris.ID), "", "")
	expectStatus(t, respBadCityCategory, http.StatusBadRequest)
}

func TestGetActivity(t *testing.T) {
	setupTestDB(t)
	app := buildTestApp(t)
	seedCatalogFixtures(t)

	var activity models.Activity
	storage.DB.Where("name = ?", "Colosseum Tour").First(&activity)

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/activity/%d", activity.ID), "", "")
	expectStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if body["city"].(map[string]interface{})["name"] != "Rome" {
		t.Fatalf("expected embedded city, got %v", body["city"])
	}

	respMissing := doJSON(t, app, http.MethodGet, "/api/activity/99999", "", "")
	expectStatus(t, respMissing, http.StatusNotFound)
}
