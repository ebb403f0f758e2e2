package taxonomy

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/wuchib/cbiu-website/internal/models"
)

// SchemaStore owns share categories and their dynamic field schemas.
type SchemaStore struct {
	db *gorm.DB
}

func NewSchemaStore(db *gorm.DB) *SchemaStore {
	return &SchemaStore{db: db}
}

// ValidateSchema checks a field definition list: every key non-empty and
// unique within the list, every type recognized, and select fields carrying
// at least one option.
func ValidateSchema(fields models.FieldDefList) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		name := fmt.Sprintf("fields[%d].key", i)
		key := strings.TrimSpace(f.Key)
		if key == "" {
			return &ValidationError{Field: name, Message: "field key is required"}
		}
		if seen[key] {
			return &ValidationError{Field: name, Message: fmt.Sprintf("duplicate field key %q", key)}
		}
		seen[key] = true
		switch f.Type {
		case models.FieldText, models.FieldNumber:
		case models.FieldSelect:
			if len(f.Options) == 0 {
				return &ValidationError{Field: name, Message: fmt.Sprintf("select field %q needs at least one option", key)}
			}
		default:
			return &ValidationError{Field: name, Message: fmt.Sprintf("unknown field type %q", f.Type)}
		}
	}
	return nil
}

// DefineSchema validates fields and replaces the category's stored schema
// wholesale. Existing resource custom data is deliberately left untouched.
func (s *SchemaStore) DefineSchema(categoryKey string, fields models.FieldDefList) error {
	if err := ValidateSchema(fields); err != nil {
		return err
	}
	var cat models.ShareCategory
	if err := s.db.First(&cat, "key = ?", categoryKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&cat).Update("fields_schema", fields).Error
}

// RenderedField pairs a schema field with the value to present for it.
type RenderedField struct {
	Def   models.FieldDef
	Value models.FieldValue
}

// RenderFields zips the current schema with values from custom data. A key
// present in data wins; anything else gets a type-appropriate default.
// Data keys the schema no longer mentions are simply not rendered.
func RenderFields(schema models.FieldDefList, data models.CustomData) []RenderedField {
	out := make([]RenderedField, 0, len(schema))
	for _, def := range schema {
		rf := RenderedField{Def: def}
		if v, ok := data.Get(def.Key); ok {
			rf.Value = v
		} else {
			rf.Value = defaultValue(def)
		}
		out = append(out, rf)
	}
	return out
}

func defaultValue(def models.FieldDef) models.FieldValue {
	switch def.Type {
	case models.FieldNumber:
		return models.NumberValue(0)
	case models.FieldSelect:
		if len(def.Options) > 0 {
			return models.SelectValue(def.Options[0])
		}
		return models.SelectValue("")
	default:
		return models.TextValue("")
	}
}

// RenderFieldsFor renders against the category's current schema. Read-only.
func (s *SchemaStore) RenderFieldsFor(categoryKey string, data models.CustomData) ([]RenderedField, error) {
	var cat models.ShareCategory
	if err := s.db.First(&cat, "key = ?", categoryKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return RenderFields(cat.FieldsSchema, data), nil
}

// CategoryExists reports whether a share category with the key exists.
func (s *SchemaStore) CategoryExists(key string) (bool, error) {
	var n int64
	if err := s.db.Model(&models.ShareCategory{}).Where("key = ?", key).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateCategory validates the schema and inserts the category. A taken key
// comes back as a conflict on "key".
func (s *SchemaStore) CreateCategory(cat *models.ShareCategory) error {
	if strings.TrimSpace(cat.Key) == "" {
		return &ValidationError{Field: "key", Message: "key is required"}
	}
	if strings.TrimSpace(cat.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if err := ValidateSchema(cat.FieldsSchema); err != nil {
		return err
	}
	var n int64
	if err := s.db.Model(&models.ShareCategory{}).Where("key = ?", cat.Key).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return &ConflictError{Field: "key", Message: "category key already exists"}
	}
	return TranslateDuplicate(s.db.Create(cat).Error, "key", "category key already exists")
}

// UpdateCategory replaces the category's attributes and schema. The key
// itself is immutable.
func (s *SchemaStore) UpdateCategory(key string, upd models.ShareCategory) (*models.ShareCategory, error) {
	if err := ValidateSchema(upd.FieldsSchema); err != nil {
		return nil, err
	}
	var cat models.ShareCategory
	if err := s.db.First(&cat, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cat.Name = upd.Name
	cat.Description = upd.Description
	cat.Icon = upd.Icon
	cat.Color = upd.Color
	cat.SortOrder = upd.SortOrder
	cat.FieldsSchema = upd.FieldsSchema
	if err := s.db.Save(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes the category unless any share resource still
// references it. Count and delete run in one transaction so a resource
// inserted in between cannot be orphaned.
func (s *SchemaStore) DeleteCategory(key string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cat models.ShareCategory
		if err := tx.First(&cat, "key = ?", key).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var n int64
		if err := tx.Model(&models.ShareResource{}).Where("category_key = ?", key).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return &ConflictError{Field: "category", Message: "category in use"}
		}
		return tx.Delete(&cat).Error
	})
}
