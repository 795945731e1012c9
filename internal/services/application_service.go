package services

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ApplicationService owns CRUD for job applications. Every query is filtered
// by the owning user id, so one user can never read or write another user's
// rows.
type ApplicationService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewApplicationService(db *gorm.DB, log *zap.SugaredLogger) *ApplicationService {
	return &ApplicationService{db: db, log: log}
}

// List returns all of the user's applications with their section joined,
// ordered by date applied descending. This ordering is what the grouped view
// preserves within each bucket.
func (s *ApplicationService) List(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Preload("Section").
		Where("user_id = ?", userID).
		Order("date_applied DESC, created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, errors.Wrap(err, "list applications")
	}
	return apps, nil
}

// Get returns a single application owned by the user.
func (s *ApplicationService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).
		Preload("Section").
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get application")
	}
	return &app, nil
}

// Create inserts a new application for the user from validated input.
func (s *ApplicationService) Create(ctx context.Context, userID uuid.UUID, in models.ApplicationInput) (*models.Application, error) {
	if err := s.checkSectionOwnership(ctx, userID, in.SectionID); err != nil {
		return nil, err
	}

	app := &models.Application{
		UserID:         userID,
		SectionID:      in.SectionID,
		CompanyName:    in.CompanyName,
		PositionTitle:  in.PositionTitle,
		JobPostingURL:  in.JobPostingURL,
		Location:       in.Location,
		WorkType:       in.WorkType,
		SalaryRangeMin: in.SalaryRangeMin,
		SalaryRangeMax: in.SalaryRangeMax,
		Status:         in.Status,
		DateApplied:    in.DateApplied,
	}
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, errors.Wrap(err, "create application")
	}
	s.log.Infow("application created", "id", app.ID, "user_id", userID)
	return s.Get(ctx, userID, app.ID)
}

// Update overwrites all user-editable fields of an application owned by the
// user. The same validated input type as Create — no divergent rules between
// the two paths. Optional fields are written explicitly so a cleared field
// becomes NULL.
func (s *ApplicationService) Update(ctx context.Context, userID, id uuid.UUID, in models.ApplicationInput) (*models.Application, error) {
	if err := s.checkSectionOwnership(ctx, userID, in.SectionID); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"section_id":       in.SectionID,
			"company_name":     in.CompanyName,
			"position_title":   in.PositionTitle,
			"job_posting_url":  in.JobPostingURL,
			"location":         in.Location,
			"work_type":        in.WorkType,
			"salary_range_min": in.SalaryRangeMin,
			"salary_range_max": in.SalaryRangeMax,
			"status":           in.Status,
			"date_applied":     in.DateApplied,
		})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update application")
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, userID, id)
}

// UpdateStatus performs a targeted single-column status update.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.Status) error {
	res := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update application status")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application owned by the user.
func (s *ApplicationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Application{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete application")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.log.Infow("application deleted", "id", id, "user_id", userID)
	return nil
}

// checkSectionOwnership rejects a section reference that does not belong to
// the user. A nil reference (unsectioned) is always fine.
func (s *ApplicationService) checkSectionOwnership(ctx context.Context, userID uuid.UUID, sectionID *uuid.UUID) error {
	if sectionID == nil {
		return nil
	}
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Section{}).
		Where("id = ? AND user_id = ?", *sectionID, userID).
		Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "check section ownership")
	}
	if count == 0 {
		return ErrSectionNotFound
	}
	return nil
}
