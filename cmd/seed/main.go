package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"tourbase/internal/config"
	"tourbase/internal/db"
	"tourbase/internal/model"
	"tourbase/internal/repository"
)

// demoPassword satisfies the signup strength policy so the seeded users
// can also be created through the API.
const demoPassword = "Str0ng!Pass"

type seedUser struct {
	user  model.User
	tours []model.Tour
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Tour{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	tourRepo := repository.NewTourRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	seeds := []seedUser{
		{
			user: model.User{
				Name:             "Amina Hassan",
				Email:            "amina@example.com",
				PasswordHash:     string(hash),
				PhoneNumber:      "201001234567",
				Gender:           model.GenderFemale,
				DateOfBirth:      time.Date(1992, 4, 11, 0, 0, 0, 0, time.UTC),
				MembershipStatus: model.MembershipActive,
			},
			tours: []model.Tour{
				{
					Title:        "Nile Felucca Sunset",
					Location:     "Aswan",
					Price:        decimal.NewFromFloat(49.99),
					DurationDays: 1,
					Description:  "Evening sail past Elephantine Island.",
				},
				{
					Title:        "White Desert Camp",
					Location:     "Farafra",
					Price:        decimal.NewFromFloat(180),
					DurationDays: 3,
					Description:  "Two nights among the chalk formations.",
				},
			},
		},
		{
			user: model.User{
				Name:             "Omar Farouk",
				Email:            "omar@example.com",
				PasswordHash:     string(hash),
				PhoneNumber:      "201009876543",
				Gender:           model.GenderMale,
				DateOfBirth:      time.Date(1988, 9, 2, 0, 0, 0, 0, time.UTC),
				MembershipStatus: model.MembershipActive,
			},
			tours: []model.Tour{
				{
					Title:        "Siwa Oasis Loop",
					Location:     "Siwa",
					Price:        decimal.NewFromFloat(320.50),
					DurationDays: 5,
					Description:  "Salt lakes, springs, and the Shali fortress.",
				},
			},
		},
	}

	ctx := context.Background()
	for _, s := range seeds {
		existing, err := userRepo.FindByEmail(ctx, s.user.Email)
		if err == nil && existing != nil {
			log.Printf("user %s already seeded, skipping", s.user.Email)
			continue
		}

		user := s.user
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatalf("seed user %s: %v", user.Email, err)
		}
		for _, t := range s.tours {
			tour := t
			tour.UserID = user.ID
			if err := tourRepo.Create(ctx, &tour); err != nil {
				log.Fatalf("seed tour %q: %v", tour.Title, err)
			}
		}
		log.Printf("seeded %s with %d tours", user.Email, len(s.tours))
	}

	log.Println("Seed complete")
}
