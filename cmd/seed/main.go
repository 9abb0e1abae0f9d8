package main

import (
	"context"
	"log"
	"time"

	"fittrack/workout-app/internal/config"
	"fittrack/workout-app/internal/repository/mongo"
	"fittrack/workout-app/internal/service"
)

// Seeds the exercise catalog with the built-in exercise list. Safe to
// run repeatedly; a non-empty catalog is left untouched.
func main() {
	log.Println("Starting exercise catalog seeder...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))

	catalog := mongo.NewMongoExerciseCatalog(appDB)
	exerciseService := service.NewExerciseService(catalog)

	inserted, err := exerciseService.SeedCatalog(ctx, builtinExercises)
	if err != nil {
		log.Fatalf("FATAL: Seeding failed: %v", err)
	}
	if inserted == 0 {
		log.Println("Exercise catalog already populated, nothing to do.")
		return
	}
	log.Printf("Seeded %d exercises.", inserted)
}
