package main

import (
	"log"
	"os"

	"trip-planner-server/routes"
	"trip-planner-server/services"
	"trip-planner-server/storage"
	"trip-planner-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	if os.Getenv("SEED_CATALOG") == "true" {
		if err := services.SeedCatalog(); err != nil {
			log.Printf("catalog seeding failed: %v", err)
		}
	}

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the web frontend
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}

		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/me", accessTokenVerifierMiddleware, routes.GetMe)
		user.Patch("/profile", accessTokenVerifierMiddleware, routes.UpdateProfile)
	}

	trip := app.Party("/api/trip", accessTokenVerifierMiddleware)
	{
		trip.Post("/", routes.CreateTrip)
		trip.Get("/", routes.GetUserTrips)
		trip.Get("/{id:uint}", routes.GetTrip)
		trip.Patch("/{id:uint}", routes.UpdateTrip)
		trip.Delete("/{id:uint}", routes.DeleteTrip)
		trip.Post("/{id:uint}/activities", routes.AddTripActivity)
		trip.Delete("/{id:uint}/activities/{tripActivityID:uint}", routes.RemoveTripActivity)
	}

	city := app.Party("/api/city")
	{
		city.Get("/search", routes.SearchCities)
		city.Get("/popular", routes.GetPopularCities)
		city.Get("/{id:uint}", routes.GetCity)
	}

	activity := app.Party("/api/activity")
	{
		activity.Get("/search", routes.SearchActivities)
		activity.Get("/city/{cityID:uint}", routes.GetActivitiesByCity)
		activity.Get("/{id:uint}", routes.GetActivity)
	}

	share := app.Party("/api/share")
	{
		// Public redemption path; everything else requires auth
		share.Get("/user/links", accessTokenVerifierMiddleware, routes.GetUserShareLinks)
		share.Get("/{token:string}", routes.GetSharedTrip)
		share.Post("/", accessTokenVerifierMiddleware, routes.CreateShareLink)
		share.Delete("/{token:string}", accessTokenVerifierMiddleware, routes.RevokeShareLink)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", routes.AdminStats)
		admin.Get("/users", routes.AdminListUsers)
		admin.Put("/users/{id:uint}/status", routes.AdminUpdateUserStatus)
		admin.Delete("/users/{id:uint}", routes.AdminDeleteUser)
		admin.Get("/trips", routes.AdminListTrips)
		admin.Get("/activity", routes.AdminActivity)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	app.Listen(":" + port)
}
