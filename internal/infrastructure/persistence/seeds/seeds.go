package seeds

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"deskd/internal/domain/user"
	"deskd/internal/infrastructure/persistence/models"
	"deskd/internal/shared/biztime"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

// SeedFile is the YAML shape of a seed data file.
type SeedFile struct {
	Admin *struct {
		Email    string `yaml:"email" validate:"required,email"`
		Name     string `yaml:"name" validate:"required"`
		Password string `yaml:"password" validate:"required,min=8"`
	} `yaml:"admin"`
	RoutingRules []struct {
		Name        string `yaml:"name" validate:"required,max=100"`
		Description string `yaml:"description" validate:"max=500"`
		Conditions  struct {
			Priority     string            `yaml:"priority"`
			Tags         []string          `yaml:"tags"`
			CustomFields map[string]string `yaml:"custom_fields"`
		} `yaml:"conditions"`
		RequiredSkills []string `yaml:"required_skills"`
		Weight         int      `yaml:"weight" validate:"gte=0"`
	} `yaml:"routing_rules"`
	CustomFields []struct {
		Key       string   `yaml:"key" validate:"required,max=50"`
		Label     string   `yaml:"label" validate:"required,max=100"`
		FieldType string   `yaml:"field_type" validate:"required"`
		Options   []string `yaml:"options"`
		Required  bool     `yaml:"required"`
	} `yaml:"custom_fields"`
}

// Run loads the seed file and inserts any records that do not exist yet.
// Seeding is idempotent; existing rows are left untouched.
func Run(db *gorm.DB, path string, hasher user.PasswordHasher, log logger.Interface) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infow("no seed file found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	if err := utils.ValidateStruct(&file); err != nil {
		return fmt.Errorf("invalid seed file: %w", err)
	}

	if err := seedAdmin(db, &file, hasher, log); err != nil {
		return err
	}
	if err := seedRoutingRules(db, &file, log); err != nil {
		return err
	}
	if err := seedCustomFields(db, &file, log); err != nil {
		return err
	}

	return nil
}

func seedAdmin(db *gorm.DB, file *SeedFile, hasher user.PasswordHasher, log logger.Interface) error {
	if file.Admin == nil {
		return nil
	}

	var count int64
	if err := db.Model(&models.UserModel{}).Where("email = ?", file.Admin.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(file.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := biztime.NowUTC()
	admin := models.UserModel{
		Email:        file.Admin.Email,
		Name:         file.Admin.Name,
		PasswordHash: hash,
		Role:         "admin",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Infow("seeded admin user", "email", file.Admin.Email)
	return nil
}

func seedRoutingRules(db *gorm.DB, file *SeedFile, log logger.Interface) error {
	now := biztime.NowUTC()

	for _, r := range file.RoutingRules {
		var count int64
		if err := db.Model(&models.RoutingRuleModel{}).Where("name = ?", r.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check routing rule: %w", err)
		}
		if count > 0 {
			continue
		}

		conditions := map[string]interface{}{}
		if r.Conditions.Priority != "" {
			conditions["priority"] = r.Conditions.Priority
		}
		if len(r.Conditions.Tags) > 0 {
			conditions["tags"] = r.Conditions.Tags
		}
		if len(r.Conditions.CustomFields) > 0 {
			conditions["custom_fields"] = r.Conditions.CustomFields
		}
		condJSON, _ := json.Marshal(conditions)

		skills := r.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		skillsJSON, _ := json.Marshal(skills)

		model := models.RoutingRuleModel{
			Name:           r.Name,
			Description:    r.Description,
			Conditions:     datatypes.JSON(condJSON),
			RequiredSkills: datatypes.JSON(skillsJSON),
			Weight:         r.Weight,
			IsActive:       true,
			CreatedBy:      1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed routing rule %q: %w", r.Name, err)
		}

		log.Infow("seeded routing rule", "name", r.Name)
	}

	return nil
}

func seedCustomFields(db *gorm.DB, file *SeedFile, log logger.Interface) error {
	now := biztime.NowUTC()

	for _, f := range file.CustomFields {
		var count int64
		if err := db.Model(&models.CustomFieldDefinitionModel{}).Where("key = ?", f.Key).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check custom field: %w", err)
		}
		if count > 0 {
			continue
		}

		options := f.Options
		if options == nil {
			options = []string{}
		}
		optionsJSON, _ := json.Marshal(options)

		model := models.CustomFieldDefinitionModel{
			Key:       f.Key,
			Label:     f.Label,
			FieldType: f.FieldType,
			Options:   datatypes.JSON(optionsJSON),
			Required:  f.Required,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed custom field %q: %w", f.Key, err)
		}

		log.Infow("seeded custom field", "key", f.Key)
	}

	return nil
}
