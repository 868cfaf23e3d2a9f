package service

import (
	"time"

	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/internal/repository"
	"github.com/hidr4lisk/experimento/pkg/holidays"

	"gorm.io/gorm"
)

// fakeProvider serves synthetic holiday sets and records the queried ranges.
type fakeProvider struct {
	set   holidays.Set
	err   error
	calls [][2]int
}

func (p *fakeProvider) HolidaysForYears(from, to int) (holidays.Set, error) {
	p.calls = append(p.calls, [2]int{from, to})
	if p.err != nil {
		return nil, p.err
	}
	set := holidays.Set{}
	for key, name := range p.set {
		date, err := time.Parse(holidays.DateKey, key)
		if err != nil {
			continue
		}
		if date.Year() >= from && date.Year() <= to {
			set[key] = name
		}
	}
	return set, nil
}

type fakeAgentRepo struct {
	agents map[uint]*models.Agent
	nextID uint
}

func newFakeAgentRepo() *fakeAgentRepo {
	return &fakeAgentRepo{agents: make(map[uint]*models.Agent), nextID: 1}
}

func (r *fakeAgentRepo) Create(agent *models.Agent) error {
	agent.ID = r.nextID
	r.nextID++
	stored := *agent
	r.agents[agent.ID] = &stored
	return nil
}

func (r *fakeAgentRepo) GetByID(id uint) (*models.Agent, error) {
	agent, ok := r.agents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *agent
	return &copied, nil
}

func (r *fakeAgentRepo) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	for _, agent := range r.agents {
		agents = append(agents, *agent)
	}
	return agents, nil
}

func (r *fakeAgentRepo) Update(agent *models.Agent) error {
	if _, ok := r.agents[agent.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *agent
	r.agents[agent.ID] = &stored
	return nil
}

func (r *fakeAgentRepo) Delete(id uint) error {
	delete(r.agents, id)
	return nil
}

type fakeRecordRepo struct {
	records map[uint]*models.Record
	nextID  uint
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uint]*models.Record), nextID: 1}
}

func (r *fakeRecordRepo) Create(record *models.Record) error {
	record.ID = r.nextID
	r.nextID++
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *fakeRecordRepo) GetByID(id uint) (*models.Record, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *fakeRecordRepo) Update(record *models.Record) error {
	if _, ok := r.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *fakeRecordRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) List(filter repository.RecordFilter) ([]models.Record, error) {
	var records []models.Record
	for _, record := range r.records {
		if filter.AgentID != 0 && record.AgentID != filter.AgentID {
			continue
		}
		if filter.Category != "" && record.Category != filter.Category {
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

func (r *fakeRecordRepo) GetByAgentID(agentID uint) ([]models.Record, error) {
	return r.List(repository.RecordFilter{AgentID: agentID})
}

func (r *fakeRecordRepo) ActiveOn(agentID uint, date time.Time) ([]models.Record, error) {
	var records []models.Record
	for _, record := range r.records {
		if record.AgentID == agentID && record.ContainsDate(date) {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (r *fakeRecordRepo) DeleteByAgentID(agentID uint) error {
	for id, record := range r.records {
		if record.AgentID == agentID {
			delete(r.records, id)
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}
