package service

import (
	"errors"
	"fmt"

	"github.com/hidr4lisk/experimento/internal/apperr"
	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/internal/repository"
	"github.com/hidr4lisk/experimento/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordInput carries raw form/JSON values for record creation and edits.
// Dates arrive as strings and are validated here rather than stored verbatim.
type RecordInput struct {
	AgentID   uint
	Category  string
	StartDate string
	EndDate   string
	Notes     string
}

type RecordService struct {
	recordRepo repository.RecordRepository
	agentRepo  repository.AgentRepository
	logger     *logrus.Logger
}

func NewRecordService(recordRepo repository.RecordRepository, agentRepo repository.AgentRepository) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		agentRepo:  agentRepo,
		logger:     logrus.New(),
	}
}

func (s *RecordService) Get(id uint) (*models.Record, error) {
	record, err := s.recordRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: record %d", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record %d: %w", id, err)
	}
	return record, nil
}

func (s *RecordService) List(filter repository.RecordFilter) ([]models.Record, error) {
	return s.recordRepo.List(filter)
}

func (s *RecordService) Create(input RecordInput) (*models.Record, error) {
	record, err := s.buildRecord(input)
	if err != nil {
		return nil, err
	}
	if err := s.recordRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	s.logger.Infof("Created record ID %d (%s) for agent %d", record.ID, record.Category, record.AgentID)
	return record, nil
}

func (s *RecordService) Update(id uint, input RecordInput) (*models.Record, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	updated, err := s.buildRecord(input)
	if err != nil {
		return nil, err
	}
	existing.AgentID = updated.AgentID
	existing.Category = updated.Category
	existing.StartDate = updated.StartDate
	existing.EndDate = updated.EndDate
	existing.Notes = updated.Notes
	if err := s.recordRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update record %d: %w", id, err)
	}
	return existing, nil
}

func (s *RecordService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.recordRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, err)
	}
	s.logger.Infof("Deleted record ID %d", id)
	return nil
}

// buildRecord validates raw input into a storable record: the agent must
// exist, the category must belong to the closed set, both dates must parse
// and start must not come after end.
func (s *RecordService) buildRecord(input RecordInput) (*models.Record, error) {
	if _, err := s.agentRepo.GetByID(input.AgentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agent %d", apperr.ErrNotFound, input.AgentID)
		}
		return nil, fmt.Errorf("failed to load agent %d: %w", input.AgentID, err)
	}

	if !models.KnownCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrInvalidInput, input.Category)
	}

	start, err := dateutil.ParseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", apperr.ErrInvalidInput, err)
	}
	end, err := dateutil.ParseDate(input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", apperr.ErrInvalidInput, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s before start date %s",
			apperr.ErrInvalidInput, input.EndDate, input.StartDate)
	}

	return &models.Record{
		AgentID:   input.AgentID,
		Category:  input.Category,
		StartDate: start,
		EndDate:   end,
		Notes:     input.Notes,
	}, nil
}
