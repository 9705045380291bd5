// Assigns public ids to legacy portfolio projects that were migrated
// without one. Once every row has an id, the title-based delete
// fallback can be retired.
package main

import (
	"log"

	"devconnect/config"
	"devconnect/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()
	db := config.InitDB(cfg.Database)

	var projects []models.Project
	if err := db.Where("public_id = ''").Find(&projects).Error; err != nil {
		log.Fatal("Failed to load legacy projects:", err)
	}

	for i := range projects {
		projects[i].PublicID = uuid.NewString()
		if err := db.Save(&projects[i]).Error; err != nil {
			log.Fatal("Failed to update project:", err)
		}
	}

	log.Printf("Assigned public ids to %d legacy projects", len(projects))
}
