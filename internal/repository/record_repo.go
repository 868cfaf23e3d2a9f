package repository

import (
	"time"

	"github.com/hidr4lisk/experimento/internal/models"

	"gorm.io/gorm"
)

// RecordFilter narrows record listings. Zero values mean "no filter".
type RecordFilter struct {
	AgentID  uint
	Category string
	Search   string
}

type RecordRepository interface {
	Create(record *models.Record) error
	GetByID(id uint) (*models.Record, error)
	Update(record *models.Record) error
	Delete(id uint) error
	List(filter RecordFilter) ([]models.Record, error)
	GetByAgentID(agentID uint) ([]models.Record, error)
	ActiveOn(agentID uint, date time.Time) ([]models.Record, error)
	DeleteByAgentID(agentID uint) error
}

type GormRecordRepository struct {
	db *gorm.DB
}

func NewGormRecordRepository(db *gorm.DB) (RecordRepository, error) {
	if err := db.AutoMigrate(&models.Record{}); err != nil {
		return nil, err
	}
	return &GormRecordRepository{db: db}, nil
}

func (r *GormRecordRepository) Create(record *models.Record) error {
	return r.db.Create(record).Error
}

func (r *GormRecordRepository) GetByID(id uint) (*models.Record, error) {
	var record models.Record
	err := r.db.Preload("Agent").First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *GormRecordRepository) Update(record *models.Record) error {
	return r.db.Save(record).Error
}

func (r *GormRecordRepository) Delete(id uint) error {
	return r.db.Delete(&models.Record{}, id).Error
}

func (r *GormRecordRepository) List(filter RecordFilter) ([]models.Record, error) {
	query := r.db.Model(&models.Record{}).Preload("Agent")

	if filter.AgentID != 0 {
		query = query.Where("records.agent_id = ?", filter.AgentID)
	}
	if filter.Category != "" {
		query = query.Where("records.category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN agents ON agents.id = records.agent_id").
			Where("records.notes LIKE ? OR agents.name LIKE ?", like, like)
	}

	var records []models.Record
	err := query.Order("records.start_date DESC").Find(&records).Error
	return records, err
}

func (r *GormRecordRepository) GetByAgentID(agentID uint) ([]models.Record, error) {
	var records []models.Record
	err := r.db.Where("agent_id = ?", agentID).
		Order("start_date DESC").
		Find(&records).Error
	return records, err
}

// ActiveOn returns the agent's records whose [start, end] range contains the
// given date.
func (r *GormRecordRepository) ActiveOn(agentID uint, date time.Time) ([]models.Record, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	var records []models.Record
	err := r.db.Where("agent_id = ? AND start_date <= ? AND end_date >= ?",
		agentID, day, day).
		Find(&records).Error
	return records, err
}

func (r *GormRecordRepository) DeleteByAgentID(agentID uint) error {
	return r.db.Where("agent_id = ?", agentID).Delete(&models.Record{}).Error
}
