package main

import (
	"log"
	"os"
	"strconv"

	"ringside/config"
	"ringside/controllers"
	"ringside/db"
	"ringside/repositories/mongodb"
	"ringside/routes"
	"ringside/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env values feed the environment overrides in LoadConfig
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	combatRepo := mongodb.NewCombatRepository(db.MongoDatabase)
	gymRepo := mongodb.NewGymRepository(db.MongoDatabase)
	userRepo := mongodb.NewUserRepository(db.MongoDatabase)
	ratingRepo := mongodb.NewRatingRepository(db.MongoDatabase)

	combatService := services.NewCombatService(combatRepo)
	gymService := services.NewGymService(gymRepo, services.TokenConfig{
		Secret:               cfg.JWT.Secret,
		AccessExpiryMinutes:  cfg.JWT.AccessExpiryMinutes,
		RefreshExpiryMinutes: cfg.JWT.RefreshExpiryMinutes,
	})
	userService := services.NewUserService(userRepo)
	ratingService := services.NewRatingService(ratingRepo, combatRepo)

	routes.SetupRoutes(router, routes.Controllers{
		Combats: controllers.NewCombatController(combatService),
		Gyms:    controllers.NewGymController(gymService),
		Ratings: controllers.NewRatingController(ratingService),
		Users:   controllers.NewUserController(userService),
	}, cfg.JWT.Secret)

	return router
}
