package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hidr4lisk/experimento/internal/apperr"
	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AgentService handles agent CRUD and composes the derived views (calendar,
// availability) on top of the record store and the core calculators.
type AgentService struct {
	agentRepo    repository.AgentRepository
	recordRepo   repository.RecordRepository
	calendar     *CalendarService
	availability *AvailabilityService
	logger       *logrus.Logger
}

func NewAgentService(
	agentRepo repository.AgentRepository,
	recordRepo repository.RecordRepository,
	calendar *CalendarService,
	availability *AvailabilityService,
) *AgentService {
	return &AgentService{
		agentRepo:    agentRepo,
		recordRepo:   recordRepo,
		calendar:     calendar,
		availability: availability,
		logger:       logrus.New(),
	}
}

func (s *AgentService) Get(id uint) (*models.Agent, error) {
	agent, err := s.agentRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: agent %d", apperr.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load agent %d: %w", id, err)
	}
	return agent, nil
}

func (s *AgentService) List() ([]models.Agent, error) {
	return s.agentRepo.GetAll()
}

func (s *AgentService) Create(name, location string) (*models.Agent, error) {
	agent := &models.Agent{Name: name, Location: location}
	if !agent.IsValid() {
		return nil, fmt.Errorf("%w: agent name is required", apperr.ErrInvalidInput)
	}
	if err := s.agentRepo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	s.logger.Infof("Created agent ID %d (%s)", agent.ID, agent.Name)
	return agent, nil
}

func (s *AgentService) Update(id uint, name, location string) (*models.Agent, error) {
	agent, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	agent.Name = name
	agent.Location = location
	if !agent.IsValid() {
		return nil, fmt.Errorf("%w: agent name is required", apperr.ErrInvalidInput)
	}
	if err := s.agentRepo.Update(agent); err != nil {
		return nil, fmt.Errorf("failed to update agent %d: %w", id, err)
	}
	return agent, nil
}

// Delete removes the agent together with its records (cascade ownership).
func (s *AgentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.recordRepo.DeleteByAgentID(id); err != nil {
		return fmt.Errorf("failed to delete records of agent %d: %w", id, err)
	}
	if err := s.agentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete agent %d: %w", id, err)
	}
	s.logger.Infof("Deleted agent ID %d", id)
	return nil
}

// Calendar materializes every record of the agent, defaulting the holiday
// span to today's year when the agent has no records.
func (s *AgentService) Calendar(agentID uint, today time.Time) ([]models.CalendarEvent, error) {
	if _, err := s.Get(agentID); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.GetByAgentID(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records of agent %d: %w", agentID, err)
	}
	return s.calendar.EventsForRecords(records, today.Year())
}

// Availability computes the agent's current status from the records active
// today. Recomputed on every call, never cached.
func (s *AgentService) Availability(agentID uint, today time.Time) (models.AvailabilityStatus, error) {
	if _, err := s.Get(agentID); err != nil {
		return models.AvailabilityStatus{}, err
	}
	active, err := s.recordRepo.ActiveOn(agentID, today)
	if err != nil {
		return models.AvailabilityStatus{}, fmt.Errorf("failed to load active records of agent %d: %w", agentID, err)
	}
	return s.availability.Status(today, active)
}
