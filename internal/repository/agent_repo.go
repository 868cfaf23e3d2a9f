package repository

import (
	"github.com/hidr4lisk/experimento/internal/models"

	"gorm.io/gorm"
)

type AgentRepository interface {
	Create(agent *models.Agent) error
	GetByID(id uint) (*models.Agent, error)
	GetAll() ([]models.Agent, error)
	Update(agent *models.Agent) error
	Delete(id uint) error
}

type GormAgentRepository struct {
	db *gorm.DB
}

func NewGormAgentRepository(db *gorm.DB) (AgentRepository, error) {
	if err := db.AutoMigrate(&models.Agent{}); err != nil {
		return nil, err
	}
	return &GormAgentRepository{db: db}, nil
}

func (r *GormAgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

func (r *GormAgentRepository) GetByID(id uint) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *GormAgentRepository) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.Order("name ASC").Find(&agents).Error
	return agents, err
}

func (r *GormAgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

func (r *GormAgentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Agent{}, id).Error
}
