package main

import (
	"errors"
	"log"
	"os"

	"charity-gaming-system/handlers"
	"charity-gaming-system/models"
	"charity-gaming-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// seedGames makes sure the static game reference rows exist. Games are never
// created through the API.
func seedGames(db *gorm.DB) error {
	for _, name := range []string{models.GameLeagueOfLegends} {
		var game models.Game
		err := db.Where("name = ?", name).First(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = db.Create(&models.Game{ID: uuid.NewString(), Name: name}).Error
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	identityKey := os.Getenv("IDENTITY_API_KEY")
	if identityKey == "" {
		log.Fatal("IDENTITY_API_KEY environment variable not set")
	}

	riotKey := os.Getenv("RIOT_API_KEY")
	if riotKey == "" {
		log.Fatal("RIOT_API_KEY environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Charity{},
		&models.Game{},
		&models.User{},
		&models.PlayerHandle{},
		&models.MatchRecord{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := seedGames(db); err != nil {
		log.Fatal("failed to seed games:", err)
	}

	identity := services.NewIdentityClient(os.Getenv("IDENTITY_BASE_URL"), identityKey)
	riot := services.NewRiotClient(os.Getenv("RIOT_BASE_URL"), riotKey)

	charityService := services.NewCharityService(db)
	userService := services.NewUserService(db, identity, charityService)
	matchService := services.NewMatchService(db)
	leaderboardService := services.NewLeaderboardService(db)

	app := fiber.New()

	// The web client is served from anywhere; every route is cross-origin.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.SetupAuthRoutes(app, identity, userService)
	handlers.SetupCharityRoutes(app, identity, charityService)
	handlers.SetupUserRoutes(app, identity, userService)
	handlers.SetupMatchRoutes(app, identity, userService, matchService, riot)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ Server running on http://localhost:%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server error:", err)
	}
}
