package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"template-service-backend/internal/config"
	"template-service-backend/internal/database"
	"template-service-backend/internal/database/models"
	"template-service-backend/internal/repository"
	"template-service-backend/internal/service"
	"template-service-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TemplateData describes one seeded template. The settings block uses the
// same keys as the updateTemplateSettings payload.
type TemplateData struct {
	OwnerID                int64                  `yaml:"owner_id"`
	TeamID                 *int64                 `yaml:"team_id,omitempty"`
	Title                  string                 `yaml:"title"`
	TemplateDocumentDataID string                 `yaml:"template_document_data_id"`
	Recipients             []RecipientData        `yaml:"recipients,omitempty"`
	Settings               map[string]interface{} `yaml:"settings,omitempty"`
	SigningOrder           string                 `yaml:"signing_order,omitempty"`
	DirectLink             *DirectLinkData        `yaml:"direct_link,omitempty"`
}

type RecipientData struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
}

type DirectLinkData struct {
	Enabled bool `yaml:"enabled"`
}

// File structures
type TemplatesFile struct {
	Templates []TemplateData `yaml:"templates"`
}

type seeder struct {
	db        *gorm.DB
	validator *validation.Validator
	templates *repository.TemplateRepository
	service   *service.TemplateService
}

func main() {
	log.Println("Loading initial templates from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	v, err := validation.New(validator.New())
	if err != nil {
		log.Fatalf("Failed to build validator: %v", err)
	}

	templateRepo := repository.NewTemplateRepository(db)
	s := &seeder{
		db:        db,
		validator: v,
		templates: templateRepo,
		service: service.NewTemplateService(
			templateRepo,
			repository.NewDirectLinkRepository(db),
			repository.NewDocumentRepository(db),
		),
	}

	if err := s.loadDataFromYAMLFiles(context.Background(), "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial templates loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
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

func (s *seeder) loadDataFromYAMLFiles(ctx context.Context, dataDir string) error {
	templates, err := loadTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	created := 0
	for _, data := range templates {
		ok, err := s.createTemplate(ctx, data)
		if err != nil {
			log.Printf("Warning: failed to create template %q: %v", data.Title, err)
			continue
		}
		if ok {
			created++
		}
	}
	log.Printf("Templates: %d created, %d total", created, len(templates))
	return nil
}

func loadTemplates(dataDir string) ([]TemplateData, error) {
	var all []TemplateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "templates") {
			var file TemplatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Templates...)
		}
		return nil
	})

	return all, err
}

// createTemplate runs every seeded step through the same validation as the
// API, so a bad data file fails the way a bad request would.
func (s *seeder) createTemplate(ctx context.Context, data TemplateData) (bool, error) {
	var existing models.Template
	err := s.db.Where("user_id = ? AND title = ?", data.OwnerID, data.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query template: %w", err)
	}

	create := map[string]interface{}{
		"title":                  data.Title,
		"templateDocumentDataId": data.TemplateDocumentDataID,
	}
	if data.TeamID != nil {
		create["teamId"] = *data.TeamID
	}
	createReq, err := validated(s.validator.CreateTemplate, create)
	if err != nil {
		return false, err
	}
	template, err := s.service.CreateTemplate(ctx, data.OwnerID, createReq)
	if err != nil {
		return false, err
	}

	for _, r := range data.Recipients {
		recipient := &models.TemplateRecipient{TemplateID: template.ID, Email: r.Email, Name: r.Name}
		if err := s.templates.AddRecipient(recipient); err != nil {
			return false, fmt.Errorf("failed to add recipient %s: %w", r.Email, err)
		}
	}

	if len(data.Settings) > 0 {
		payload := withTemplate(data.Settings, template)
		req, err := validated(s.validator.UpdateTemplateSettings, payload)
		if err != nil {
			return false, err
		}
		if _, err := s.service.UpdateTemplateSettings(ctx, data.OwnerID, req); err != nil {
			return false, err
		}
	}

	if data.SigningOrder != "" {
		payload := withTemplate(map[string]interface{}{"signingOrder": data.SigningOrder}, template)
		req, err := validated(s.validator.SetSigningOrderForTemplate, payload)
		if err != nil {
			return false, err
		}
		if _, err := s.service.SetSigningOrderForTemplate(ctx, data.OwnerID, req); err != nil {
			return false, err
		}
	}

	if data.DirectLink != nil {
		req, err := validated(s.validator.CreateTemplateDirectLink, withTemplate(map[string]interface{}{}, template))
		if err != nil {
			return false, err
		}
		link, err := s.service.CreateTemplateDirectLink(ctx, data.OwnerID, req)
		if err != nil {
			return false, err
		}
		if !data.DirectLink.Enabled {
			toggle := withTemplate(map[string]interface{}{"enabled": false}, template)
			toggleReq, err := validated(s.validator.ToggleTemplateDirectLink, toggle)
			if err != nil {
				return false, err
			}
			if _, err := s.service.ToggleTemplateDirectLink(ctx, data.OwnerID, toggleReq); err != nil {
				return false, err
			}
		}
		log.Printf("Direct link for %q: %s", data.Title, link.Token)
	}

	return true, nil
}

func withTemplate(payload map[string]interface{}, template *models.Template) map[string]interface{} {
	out := make(map[string]interface{}, len(payload)+2)
	for k, v := range payload {
		out[k] = v
	}
	out["templateId"] = template.ID
	if template.TeamID != nil {
		out["teamId"] = *template.TeamID
	}
	return out
}

func validated[T any](validate func([]byte) (*T, error), payload map[string]interface{}) (*T, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return validate(raw)
}
