package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/oksasatya/procrm-api/config"
	"github.com/oksasatya/procrm-api/internal/domain/entity"
	"github.com/oksasatya/procrm-api/internal/infrastructure/jsonfile"
	"github.com/oksasatya/procrm-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	seedUsers(cfg)
	seedLeads(cfg)
}

func seedUsers(cfg *config.Config) {
	repo := jsonfile.NewUserRepository(jsonfile.NewStore(cfg.UsersFile))

	demo := []struct {
		email, password, name, role string
	}{
		{"admin@crm.com", "admin123", "Admin User", entity.RoleAdmin},
		{"sales@crm.com", "sales123", "Sales Rep", entity.RoleSales},
	}

	for _, d := range demo {
		if _, err := repo.GetByEmail(d.email); err == nil {
			fmt.Printf("user exists, skipping: %s\n", d.email)
			continue
		}
		hash, err := helpers.HashPassword(d.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u := &entity.User{
			Email:     d.email,
			Name:      d.name,
			Password:  hash,
			Role:      d.role,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Create(u); err != nil {
			log.Fatalf("failed to seed user %s: %v", d.email, err)
		}
		fmt.Printf("seeded user: email=%s role=%s password=%s\n", d.email, d.role, d.password)
	}
}

func seedLeads(cfg *config.Config) {
	store := jsonfile.NewStore(cfg.LeadsFile)
	repo := jsonfile.NewLeadRepository(store)

	existing, err := repo.List()
	if err != nil {
		log.Fatalf("failed to read leads: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("leads file already has %d records, skipping\n", len(existing))
		return
	}

	samples := []entity.Lead{
		{FirstName: "Sarah", LastName: "Johnson", Company: "Acme Inc", Position: "CTO", Email: "sarah@acme.com", Phone: "+15550101", DealValue: 50000, Stage: entity.StageProspect, Notes: "Met at SaaS conference"},
		{FirstName: "Michael", LastName: "Chen", Company: "Globex", Position: "VP Engineering", Email: "mchen@globex.com", Phone: "+15550102", DealValue: 75000, Stage: entity.StageQualified},
		{FirstName: "Emily", LastName: "Davis", Company: "Initech", Position: "Head of Ops", Email: "emily@initech.com", DealValue: 120000, Stage: entity.StageNegotiation, Notes: "Waiting on legal review"},
		{FirstName: "James", LastName: "Wilson", Company: "Umbrella Corp", Position: "CEO", Email: "jwilson@umbrella.com", Phone: "+15550104", DealValue: 200000, Stage: entity.StageClosed},
	}

	now := time.Now().UTC()
	for i := range samples {
		samples[i].ID = uuid.NewString()
		samples[i].CreatedAt = now
		samples[i].UpdatedAt = now
		if err := repo.Create(&samples[i]); err != nil {
			log.Fatalf("failed to seed lead: %v", err)
		}
	}
	fmt.Printf("seeded %d sample leads into %s\n", len(samples), store.Path())
}
