package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database"
	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/repository"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML data files
type BreedData struct {
	Name       string `yaml:"name"`
	AnimalType string `yaml:"animal_type"`
}

type ZipCodeData struct {
	Zip       string  `yaml:"zip"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// File structures
type BreedsFile struct {
	Breeds []BreedData `yaml:"breeds"`
}

type ZipCodesFile struct {
	ZipCodes []ZipCodeData `yaml:"zip_codes"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	breeds, err := loadBreeds(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load breeds: %w", err)
	}

	zipCodes, err := loadZipCodes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load zip codes: %w", err)
	}

	breedRepo := repository.NewBreedRepository(db)
	breedCount := 0
	for _, breedData := range breeds {
		animalType := models.AnimalType(strings.ToUpper(breedData.AnimalType))
		if !animalType.IsValid() {
			log.Printf("⚠️  Warning: skipping breed %q: unknown animal type %q", breedData.Name, breedData.AnimalType)
			continue
		}
		breed := &models.Breed{
			Name:       breedData.Name,
			Slug:       slug.Make(breedData.Name),
			AnimalType: animalType,
		}
		if err := breedRepo.Upsert(breed); err != nil {
			return fmt.Errorf("failed to upsert breed %s: %w", breedData.Name, err)
		}
		breedCount++
	}
	log.Printf("📋 Breeds: %d upserted", breedCount)

	zipRepo := repository.NewZipCodeRepository(db)
	batch := make([]models.ZipCode, 0, len(zipCodes))
	for _, zipData := range zipCodes {
		batch = append(batch, models.ZipCode{
			Zip:       zipData.Zip,
			Latitude:  zipData.Latitude,
			Longitude: zipData.Longitude,
		})
	}
	if len(batch) > 0 {
		if err := zipRepo.UpsertBatch(batch); err != nil {
			return fmt.Errorf("failed to upsert zip codes: %w", err)
		}
	}
	log.Printf("📋 Zip codes: %d upserted", len(batch))

	return nil
}

func loadBreeds(dataDir string) ([]BreedData, error) {
	var allBreeds []BreedData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "breeds") {
			var file BreedsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBreeds = append(allBreeds, file.Breeds...)
		}
		return nil
	})

	return allBreeds, err
}

func loadZipCodes(dataDir string) ([]ZipCodeData, error) {
	var allZips []ZipCodeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "zip_codes") {
			var file ZipCodesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allZips = append(allZips, file.ZipCodes...)
		}
		return nil
	})

	return allZips, err
}
