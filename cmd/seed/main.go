package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nevodrive/nevo_testdrive_service/internal/adapter/postgres"
	"github.com/nevodrive/nevo_testdrive_service/internal/config"
	"github.com/nevodrive/nevo_testdrive_service/internal/core/domain"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

type vehicleFile struct {
	Vehicles []*domain.Vehicle `json:"vehicles"`
}

type seedReservation struct {
	VehicleID     string `json:"vehicleId"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type reservationFile struct {
	Reservations []seedReservation `json:"reservations"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := goose.Up(db, "./internal/adapter/postgres/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	if err := seed(ctx, db, cfg.Seed.DataDir); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done seeding")
}

func seed(ctx context.Context, db *sql.DB, dataDir string) error {
	vehicles, err := loadVehicles(filepath.Join(dataDir, "vehicles.json"))
	if err != nil {
		return err
	}
	reservations, err := loadReservations(filepath.Join(dataDir, "reservations.json"))
	if err != nil {
		return err
	}

	// Reservations reference vehicles, so they go first.
	if _, err := db.ExecContext(ctx, `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("clearing reservations: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM vehicles`); err != nil {
		return fmt.Errorf("clearing vehicles: %w", err)
	}

	vehicleRepo := postgres.NewVehicleRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)

	log.Printf("Seeding vehicles: %d", len(vehicles))
	for _, v := range vehicles {
		if _, err := vehicleRepo.CreateVehicle(ctx, v); err != nil {
			return fmt.Errorf("seeding vehicle %s: %w", v.ID, err)
		}
	}

	log.Printf("Seeding reservations: %d", len(reservations))
	for _, r := range reservations {
		start, err := time.Parse(time.RFC3339, r.StartDateTime)
		if err != nil {
			return fmt.Errorf("reservation for %s: %w", r.VehicleID, err)
		}
		end, err := time.Parse(time.RFC3339, r.EndDateTime)
		if err != nil {
			return fmt.Errorf("reservation for %s: %w", r.VehicleID, err)
		}
		_, err = reservationRepo.CreateReservation(ctx, &domain.Reservation{
			ID:            uuid.New(),
			VehicleID:     r.VehicleID,
			StartDateTime: start.UTC(),
			EndDateTime:   end.UTC(),
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			CustomerPhone: r.CustomerPhone,
		})
		if err != nil {
			return fmt.Errorf("seeding reservation for %s: %w", r.VehicleID, err)
		}
	}

	return nil
}

func loadVehicles(path string) ([]*domain.Vehicle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var file vehicleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file.Vehicles, nil
}

func loadReservations(path string) ([]seedReservation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var file reservationFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file.Reservations, nil
}
