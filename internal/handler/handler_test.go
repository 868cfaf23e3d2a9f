package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/internal/repository"
	"github.com/hidr4lisk/experimento/internal/service"
	"github.com/hidr4lisk/experimento/pkg/holidays"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memAgentRepo struct {
	agents map[uint]*models.Agent
	nextID uint
}

func (r *memAgentRepo) Create(agent *models.Agent) error {
	agent.ID = r.nextID
	r.nextID++
	stored := *agent
	r.agents[agent.ID] = &stored
	return nil
}

func (r *memAgentRepo) GetByID(id uint) (*models.Agent, error) {
	agent, ok := r.agents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *agent
	return &copied, nil
}

func (r *memAgentRepo) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	for _, agent := range r.agents {
		agents = append(agents, *agent)
	}
	return agents, nil
}

func (r *memAgentRepo) Update(agent *models.Agent) error {
	stored := *agent
	r.agents[agent.ID] = &stored
	return nil
}

func (r *memAgentRepo) Delete(id uint) error {
	delete(r.agents, id)
	return nil
}

type memRecordRepo struct {
	records map[uint]*models.Record
	nextID  uint
}

func (r *memRecordRepo) Create(record *models.Record) error {
	record.ID = r.nextID
	r.nextID++
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *memRecordRepo) GetByID(id uint) (*models.Record, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *memRecordRepo) Update(record *models.Record) error {
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *memRecordRepo) Delete(id uint) error {
	delete(r.records, id)
	return nil
}

func (r *memRecordRepo) List(filter repository.RecordFilter) ([]models.Record, error) {
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

func (r *memRecordRepo) GetByAgentID(agentID uint) ([]models.Record, error) {
	return r.List(repository.RecordFilter{AgentID: agentID})
}

func (r *memRecordRepo) ActiveOn(agentID uint, date time.Time) ([]models.Record, error) {
	var records []models.Record
	for _, record := range r.records {
		if record.AgentID == agentID && record.ContainsDate(date) {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (r *memRecordRepo) DeleteByAgentID(agentID uint) error {
	for id, record := range r.records {
		if record.AgentID == agentID {
			delete(r.records, id)
		}
	}
	return nil
}

type memUserRepo struct {
	users map[string]*models.User
}

func (r *memUserRepo) Create(user *models.User) error {
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

type emptyProvider struct{}

func (emptyProvider) HolidaysForYears(from, to int) (holidays.Set, error) {
	return holidays.Set{}, nil
}

type testEnv struct {
	app        *fiber.App
	agentRepo  *memAgentRepo
	recordRepo *memRecordRepo
	auth       *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	agentRepo := &memAgentRepo{agents: map[uint]*models.Agent{}, nextID: 1}
	recordRepo := &memRecordRepo{records: map[uint]*models.Record{}, nextID: 1}
	userRepo := &memUserRepo{users: map[string]*models.User{}}

	provider := emptyProvider{}
	calendar := service.NewCalendarService(provider)
	availability := service.NewAvailabilityService(provider)
	agents := service.NewAgentService(agentRepo, recordRepo, calendar, availability)
	records := service.NewRecordService(recordRepo, agentRepo)
	auth := service.NewAuthService(userRepo, "test-secret")
	require.NoError(t, auth.EnsureAdmin("admin", "s3cret"))

	app := fiber.New()
	NewHandler(agents, records, auth, nil).RegisterRoutes(app)
	return &testEnv{app: app, agentRepo: agentRepo, recordRepo: recordRepo, auth: auth}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) loginAdmin(t *testing.T) string {
	t.Helper()
	resp := e.request(t, http.MethodPost, "/api/login", fiber.Map{
		"username": "admin",
		"password": "s3cret",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session" {
			return cookie.Value
		}
	}
	t.Fatal("login response carried no session cookie")
	return ""
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAvailabilityUnknownAgent(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/agents/99/availability", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAvailabilityOnLeave(t *testing.T) {
	env := newTestEnv(t)

	agent := &models.Agent{Name: "Pérez"}
	require.NoError(t, env.agentRepo.Create(agent))
	// Range wide enough to contain any test run date; ends 2099-12-31
	// (a Thursday), so the empty-holiday return date is Friday 2100-01-01.
	require.NoError(t, env.recordRepo.Create(&models.Record{
		AgentID:   agent.ID,
		Category:  models.CategoryVacation,
		StartDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC),
	}))

	resp := env.request(t, http.MethodGet, "/api/agents/1/availability", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Available  bool    `json:"available"`
		ReturnDate *string `json:"return_date"`
	}
	decodeBody(t, resp, &status)
	assert.False(t, status.Available)
	require.NotNil(t, status.ReturnDate)
	assert.Equal(t, "2100-01-01", *status.ReturnDate)
}

func TestAvailabilityWithOnlyFutureRecords(t *testing.T) {
	env := newTestEnv(t)

	agent := &models.Agent{Name: "Gómez"}
	require.NoError(t, env.agentRepo.Create(agent))
	require.NoError(t, env.recordRepo.Create(&models.Record{
		AgentID:   agent.ID,
		Category:  models.CategoryVacation,
		StartDate: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2099, 1, 10, 0, 0, 0, 0, time.UTC),
	}))

	resp := env.request(t, http.MethodGet, "/api/agents/1/availability", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Available  bool    `json:"available"`
		ReturnDate *string `json:"return_date"`
	}
	decodeBody(t, resp, &status)
	assert.True(t, status.Available)
	assert.Nil(t, status.ReturnDate)
}

func TestCalendarEndpointShape(t *testing.T) {
	env := newTestEnv(t)

	agent := &models.Agent{Name: "Suárez"}
	require.NoError(t, env.agentRepo.Create(agent))
	// Single Wednesday.
	require.NoError(t, env.recordRepo.Create(&models.Record{
		AgentID:   agent.ID,
		Category:  models.CategoryAssignment,
		StartDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
	}))

	resp := env.request(t, http.MethodGet, "/api/agents/1/calendar", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []models.CalendarEvent
	decodeBody(t, resp, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Comisión", events[0].Title)
	assert.Equal(t, "2024-03-06", events[0].Start)
	assert.Equal(t, "#dc3545", events[0].BackgroundColor)
	assert.True(t, events[0].AllDay)
}

func TestMutationsRequireSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/records", fiber.Map{
		"agent_id":   1,
		"category":   models.CategoryVacation,
		"start_date": "2024-03-04",
		"end_date":   "2024-03-08",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateRecordValidation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAdmin(t)

	agent := &models.Agent{Name: "Díaz"}
	require.NoError(t, env.agentRepo.Create(agent))

	resp := env.request(t, http.MethodPost, "/api/records", fiber.Map{
		"agent_id":   agent.ID,
		"category":   models.CategoryVacation,
		"start_date": "el lunes pasado",
		"end_date":   "2024-03-08",
	}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/records", fiber.Map{
		"agent_id":   agent.ID,
		"category":   models.CategoryVacation,
		"start_date": "2024-03-04",
		"end_date":   "08/03/2024",
	}, cookie)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	agent := &models.Agent{Name: "Roldán"}
	require.NoError(t, env.agentRepo.Create(agent))

	resp := env.request(t, http.MethodDelete, "/api/agents/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cookie := env.loginAdmin(t)
	resp = env.request(t, http.MethodDelete, "/api/agents/1", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	var anon struct {
		IsAuthenticated bool `json:"is_authenticated"`
		IsAdmin         bool `json:"is_admin"`
	}
	resp := env.request(t, http.MethodGet, "/api/me", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &anon)
	assert.False(t, anon.IsAuthenticated)
	assert.False(t, anon.IsAdmin)

	cookie := env.loginAdmin(t)
	var authed struct {
		IsAuthenticated bool `json:"is_authenticated"`
		IsAdmin         bool `json:"is_admin"`
	}
	resp = env.request(t, http.MethodGet, "/api/me", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &authed)
	assert.True(t, authed.IsAuthenticated)
	assert.True(t, authed.IsAdmin)
}
