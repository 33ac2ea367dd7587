package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nutrifind/models"
)

// RecordService persists selected foods to the user's record store.
type RecordService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRecordService(db *gorm.DB, logger *zap.Logger) *RecordService {
	return &RecordService{db: db, logger: logger}
}

// Save checks whether the food is already stored for this user and inserts
// it if absent. The check and the insert are not atomic; the unique index on
// (user_id, fdc_id, description) is what actually prevents duplicates, and
// an insert losing that race is reported as a conflict like any other.
func (s *RecordService) Save(ctx context.Context, userID uint, food models.FoodItem) (*models.SavedRecord, error) {
	var existing []models.SavedRecord
	err := s.db.WithContext(ctx).
		Select("id", "fdc_id", "description").
		Where("user_id = ? AND fdc_id = ? AND description = ?", userID, food.FdcID, food.Description).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	if len(existing) > 0 {
		recordConflictsTotal.Inc()
		return nil, &ConflictError{FdcID: food.FdcID, Description: food.Description}
	}

	rec := &models.SavedRecord{
		UserID:      userID,
		FdcID:       food.FdcID,
		Description: food.Description,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isDuplicateKey(err) {
			recordConflictsTotal.Inc()
			return nil, &ConflictError{FdcID: food.FdcID, Description: food.Description}
		}
		return nil, &SaveError{Err: err}
	}

	recordSavesTotal.Inc()
	s.logger.Info("record saved",
		zap.Uint("user_id", userID),
		zap.Int64("fdc_id", food.FdcID),
		zap.String("description", food.Description))
	return rec, nil
}

// List returns the user's saved records, newest first.
func (s *RecordService) List(ctx context.Context, userID uint) ([]models.SavedRecord, error) {
	var records []models.SavedRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return records, nil
}

// Delete removes one of the user's records. The delete is unscoped: a
// soft-deleted row would keep its unique-index entry and block re-saving
// the same food. Deleting a record that does not exist (or belongs to
// someone else) reports gorm.ErrRecordNotFound.
func (s *RecordService) Delete(ctx context.Context, userID, recordID uint) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.SavedRecord{})
	if res.Error != nil {
		return &QueryError{Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key")
}
