package main

import (
	"log"
	"os"
	"time"

	"petmedia-be/internal/model"
	"petmedia-be/pkg/database"
	"petmedia-be/pkg/threadid"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Demo data for local development. Idempotent: rows are keyed on fixed
// ids/emails and upserted on re-run.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo data...")

	aliceId := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	bobId := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	seedUsers(db, aliceId, bobId)
	seedPets(db, aliceId)
	seedMapSpots(db, bobId)
	seedThread(db, aliceId, bobId)

	color.Green("Seeding completed.")
}

func hashPassword(plain string) *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	s := string(hash)
	return &s
}

func upsert(db *gorm.DB, rows interface{}) {
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rows).Error; err != nil {
		color.Red("Seed upsert failed: %v", err)
		os.Exit(1)
	}
}

func seedUsers(db *gorm.DB, aliceId, bobId uuid.UUID) {
	color.Yellow("Seeding users...")
	users := []model.User{
		{
			Id:           aliceId,
			Email:        "alice@example.com",
			PasswordHash: hashPassword("password123"),
			DisplayName:  "Alice",
			City:         "Istanbul",
			Bio:          "Cat person, occasional dog walker.",
			Favorites:    datatypes.NewJSONSlice([]string{}),
		},
		{
			Id:           bobId,
			Email:        "bob@example.com",
			PasswordHash: hashPassword("password123"),
			DisplayName:  "Bob",
			City:         "Ankara",
			Bio:          "Fostering rescues since 2019.",
			Favorites:    datatypes.NewJSONSlice([]string{}),
		},
	}
	upsert(db, &users)
}

func seedPets(db *gorm.DB, ownerId uuid.UUID) {
	color.Yellow("Seeding pets...")
	pets := []model.Pet{
		{
			Id:          uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			OwnerId:     ownerId,
			Name:        "Pamuk",
			Species:     "cat",
			Breed:       "Angora",
			Age:         2,
			Gender:      "female",
			Description: "Gentle and playful, good with kids.",
			City:        "Istanbul",
			Photos:      datatypes.NewJSONSlice([]string{"https://example.com/photos/pamuk.jpg"}),
			Tags:        datatypes.NewJSONSlice([]string{"vaccinated", "neutered"}),
		},
		{
			Id:          uuid.MustParse("44444444-4444-4444-4444-444444444444"),
			OwnerId:     ownerId,
			Name:        "Karabas",
			Species:     "dog",
			Breed:       "Kangal mix",
			Age:         4,
			Gender:      "male",
			Description: "Loyal guard, needs a garden.",
			City:        "Istanbul",
			Photos:      datatypes.NewJSONSlice([]string{"https://example.com/photos/karabas.jpg"}),
			Tags:        datatypes.NewJSONSlice([]string{"vaccinated"}),
		},
	}
	upsert(db, &pets)
}

func seedMapSpots(db *gorm.DB, creatorId uuid.UUID) {
	color.Yellow("Seeding map spots...")
	spots := []model.MapSpot{
		{
			Id:                uuid.MustParse("55555555-5555-5555-5555-555555555555"),
			CreatorId:         creatorId,
			Type:              "both",
			Title:             "Park entrance feeding point",
			Note:              "Refilled most mornings.",
			Latitude:          41.0431,
			Longitude:         29.0099,
			ContributorsCount: 3,
		},
		{
			Id:                uuid.MustParse("66666666-6666-6666-6666-666666666666"),
			CreatorId:         creatorId,
			Type:              "veterinary",
			Title:             "24h vet clinic",
			Latitude:          39.9255,
			Longitude:         32.8663,
			ContributorsCount: 1,
		},
	}
	upsert(db, &spots)
}

func seedThread(db *gorm.DB, aliceId, bobId uuid.UUID) {
	color.Yellow("Seeding demo conversation...")

	id, err := threadid.Derive(aliceId.String(), bobId.String())
	if err != nil {
		color.Red("Failed to derive thread id: %v", err)
		os.Exit(1)
	}
	first, second, _ := threadid.Participants(id)

	lastText := "Yes! Want to come meet her tomorrow?"
	lastAt := time.Now().Add(-1 * time.Hour)

	thread := model.Thread{
		Id:            id,
		Participants:  datatypes.NewJSONSlice([]string{first, second}),
		User1Id:       aliceId,
		User1Name:     "Alice",
		User2Id:       bobId,
		User2Name:     "Bob",
		LastMessage:   &lastText,
		LastMessageAt: &lastAt,
	}
	upsert(db, &thread)

	messages := []model.Message{
		{
			Id:        uuid.MustParse("77777777-7777-7777-7777-777777777777"),
			ThreadId:  id,
			SenderId:  bobId,
			Text:      "Hi! Is Pamuk still up for adoption?",
			ReadBy:    datatypes.NewJSONSlice([]string{aliceId.String(), bobId.String()}),
			CreatedAt: time.Now().Add(-2 * time.Hour),
		},
		{
			Id:        uuid.MustParse("88888888-8888-8888-8888-888888888888"),
			ThreadId:  id,
			SenderId:  aliceId,
			Text:      lastText,
			ReadBy:    datatypes.NewJSONSlice([]string{aliceId.String()}),
			CreatedAt: lastAt,
		},
	}
	upsert(db, &messages)
}
