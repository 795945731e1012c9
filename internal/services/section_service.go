package services

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SectionService owns the user-defined grouping buckets. Name validation
// happens upstream; the case-insensitive per-owner uniqueness constraint
// lives in the database, and this service translates its violation into
// ErrSectionNameTaken.
type SectionService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewSectionService(db *gorm.DB, log *zap.SugaredLogger) *SectionService {
	return &SectionService{db: db, log: log}
}

// ListWithCounts returns the user's sections ordered by name, each carrying
// its application count.
func (s *SectionService) ListWithCounts(ctx context.Context, userID uuid.UUID) ([]models.Section, error) {
	var sections []models.Section
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&sections).Error
	if err != nil {
		return nil, errors.Wrap(err, "list sections")
	}
	if len(sections) == 0 {
		return sections, nil
	}

	type countRow struct {
		SectionID uuid.UUID
		Count     int64
	}
	var rows []countRow
	err = s.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("section_id, COUNT(*) AS count").
		Where("user_id = ? AND section_id IS NOT NULL", userID).
		Group("section_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count applications per section")
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.SectionID] = r.Count
	}
	for i := range sections {
		sections[i].ApplicationCount = counts[sections[i].ID]
	}
	return sections, nil
}

// Create inserts a new section for the user.
func (s *SectionService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Section, error) {
	section := &models.Section{UserID: userID, Name: name}
	if err := s.db.WithContext(ctx).Create(section).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSectionNameTaken
		}
		return nil, errors.Wrap(err, "create section")
	}
	s.log.Infow("section created", "id", section.ID, "user_id", userID)
	return section, nil
}

// Rename changes the name of a section owned by the user.
func (s *SectionService) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*models.Section, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Section{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("name", name)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return nil, ErrSectionNameTaken
		}
		return nil, errors.Wrap(res.Error, "rename section")
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var section models.Section
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&section).Error
	if err != nil {
		return nil, errors.Wrap(err, "reload section")
	}
	return &section, nil
}

// Delete removes a section owned by the user. Applications referencing it
// are unsectioned, never deleted: their section_id is cleared in the same
// transaction before the row goes away.
func (s *SectionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Application{}).
			Where("section_id = ? AND user_id = ?", id, userID).
			Update("section_id", nil).Error
		if err != nil {
			return errors.Wrap(err, "clear section references")
		}

		res := tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&models.Section{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete section")
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err == nil {
		s.log.Infow("section deleted", "id", id, "user_id", userID)
	}
	return err
}
