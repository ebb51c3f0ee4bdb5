package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"trip-planner-server/models"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points storage.DB at a fresh in-memory database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.City{},
		&models.Activity{},
		&models.Trip{},
		&models.TripActivity{},
		&models.ShareLink{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	storage.DB = db
	storage.InitializeRedis() // unreachable in tests; token caching errors are ignored
}

// buildTestApp creates an iris app with the full route surface and JWT verifier
func buildTestApp(t *testing.T) *iris.Application {
	t.Helper()

	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	os.Setenv("REFRESH_TOKEN_SECRET", "testrefreshsecret")
	os.Setenv("FRONTEND_URL", "http://localhost:3000")

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", Register)
		user.Post("/login", Login)
		user.Get("/me", accessTokenVerifierMiddleware, GetMe)
		user.Patch("/profile", accessTokenVerifierMiddleware, UpdateProfile)
	}

	trip := app.Party("/api/trip", accessTokenVerifierMiddleware)
	{
		trip.Post("/", CreateTrip)
		trip.Get("/", GetUserTrips)
		trip.Get("/{id:uint}", GetTrip)
		trip.Patch("/{id:uint}", UpdateTrip)
		trip.Delete("/{id:uint}", DeleteTrip)
		trip.Post("/{id:uint}/activities", AddTripActivity)
		trip.Delete("/{id:uint}/activities/{tripActivityID:uint}", RemoveTripActivity)
	}

	city := app.Party("/api/city")
	{
		city.Get("/search", SearchCities)
		city.Get("/popular", GetPopularCities)
		city.Get("/{id:uint}", GetCity)
	}

	activity := app.Party("/api/activity")
	{
		activity.Get("/search", SearchActivities)
		activity.Get("/city/{cityID:uint}", GetActivitiesByCity)
		activity.Get("/{id:uint}", GetActivity)
	}

	share := app.Party("/api/share")
	{
		share.Get("/user/links", accessTokenVerifierMiddleware, GetUserShareLinks)
		share.Get("/{token:string}", GetSharedTrip)
		share.Post("/", accessTokenVerifierMiddleware, CreateShareLink)
		share.Delete("/{token:string}", accessTokenVerifierMiddleware, RevokeShareLink)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", AdminStats)
		admin.Get("/users", AdminListUsers)
		admin.Put("/users/{id:uint}/status", AdminUpdateUserStatus)
		admin.Delete("/users/{id:uint}", AdminDeleteUser)
		admin.Get("/trips", AdminListTrips)
		admin.Get("/activity", AdminActivity)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build test app: %v", err)
	}

	return app
}

// signTestToken returns a signed access token for the given user
func signTestToken(t *testing.T, userID uint, role string) string {
	t.Helper()

	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), time.Hour)
	token, err := signer.Sign(utils.AccessToken{ID: userID, Role: role})
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return string(token)
}

func createTestUser(t *testing.T, name, email string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    email,
		Password: "$2a$10$abcdefghijklmnopqrstuv", // not used by these tests
		Role:     models.RoleUser,
		Status:   models.StatusActive,
	}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestTrip(t *testing.T, userID uint, name string, start, end time.Time) models.Trip {
	t.Helper()

	trip := models.Trip{
		UserID:       userID,
		Name:         name,
		StartDate:    start,
		EndDate:      end,
		Destinations: []byte(`["Paris"]`),
		Status:       "PLANNING",
	}
	if err := storage.DB.Create(&trip).Error; err != nil {
		t.Fatalf("create test trip: %v", err)
	}
	return trip
}

func doJSON(t *testing.T, app *iris.Application, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return out
}

func mustDecodeList(t *testing.T, raw []byte, out *[]map[string]interface{}) {
	t.Helper()

	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode list response %q: %v", string(raw), err)
	}
}

func expectStatus(t *testing.T, resp *httptest.ResponseRecorder, want int) {
	t.Helper()

	if resp.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.Code, resp.Body.String())
	}
}
