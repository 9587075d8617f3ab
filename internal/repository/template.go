package repository

import (
	"strings"

	"template-service-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TemplateScope limits template lookups to one workspace: a team when TeamID
// is set, otherwise the personal templates of UserID.
type TemplateScope struct {
	UserID int64
	TeamID *int64
}

func (s TemplateScope) apply(db *gorm.DB) *gorm.DB {
	if s.TeamID != nil {
		return db.Where("templates.team_id = ?", *s.TeamID)
	}
	return db.Where("templates.user_id = ? AND templates.team_id IS NULL", s.UserID)
}

// TemplateFilter holds the search parameters of Find
type TemplateFilter struct {
	Scope  TemplateScope
	Query  string
	Type   *models.TemplateType
	Limit  int
	Offset int
}

// TemplateRepository handles database operations for templates
type TemplateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create creates a new template together with its meta and recipients
func (r *TemplateRepository) Create(template *models.Template) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a template with its relations. A nil scope skips the
// workspace check; it is only used for public direct links.
func (r *TemplateRepository) GetByID(id int64, scope *TemplateScope) (*models.Template, error) {
	var template models.Template
	query := r.db.Preload("Meta").Preload("DirectLink").Preload("Recipients", func(db *gorm.DB) *gorm.DB {
		return db.Order("template_recipients.id")
	})
	if scope != nil {
		query = scope.apply(query)
	}
	if err := query.First(&template, "templates.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// Find searches templates by title within a scope with pagination
func (r *TemplateRepository) Find(filter TemplateFilter) ([]models.Template, int64, error) {
	var templates []models.Template
	var total int64

	query := filter.Scope.apply(r.db.Model(&models.Template{}))
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("templates.title ILIKE ?", "%"+q+"%")
	}
	if filter.Type != nil {
		query = query.Where("templates.type = ?", *filter.Type)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Meta").Preload("DirectLink").Preload("Recipients").
		Order("templates.created_at DESC").Order("templates.id DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&templates).Error
	if err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// Update saves the template columns; relations are written through their own methods
func (r *TemplateRepository) Update(template *models.Template) error {
	return r.db.Omit(clause.Associations).Save(template).Error
}

// Delete deletes a template; meta, recipients and the direct link cascade
func (r *TemplateRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Template{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertMeta creates or replaces the meta row of a template
func (r *TemplateRepository) UpsertMeta(meta *models.TemplateMeta) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "template_id"}},
		UpdateAll: true,
	}).Create(meta).Error
}

// UpdateWithMeta upserts the meta row and saves the template columns in one
// transaction, so a failed template write leaves the meta untouched.
func (r *TemplateRepository) UpdateWithMeta(template *models.Template, meta *models.TemplateMeta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &TemplateRepository{db: tx}
		if err := txRepo.UpsertMeta(meta); err != nil {
			return err
		}
		return txRepo.Update(template)
	})
}

// AddRecipient adds a placeholder recipient to a template
func (r *TemplateRepository) AddRecipient(recipient *models.TemplateRecipient) error {
	return r.db.Create(recipient).Error
}
