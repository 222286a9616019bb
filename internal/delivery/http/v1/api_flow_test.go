package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobplus-backend/config"
	v1 "go-jobplus-backend/internal/delivery/http/v1"
	"go-jobplus-backend/internal/domain"
	"go-jobplus-backend/internal/usecase"
	"go-jobplus-backend/pkg/apperror"
	"go-jobplus-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// memStore is a map-backed stand-in for the postgres layer, so handler and
// usecase behavior can be exercised end to end without a database. The fakes
// mirror the repository contracts: unique violations surface as conflicts,
// missing rows as domain.ErrNotFound, and a settled delivery stays settled.
type memStore struct {
	users      map[int64]*domain.User
	companies  map[int64]*domain.Company
	jobs       map[int64]*domain.Job
	deliveries map[int64]*domain.Delivery
	collected  map[[2]int64]bool
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		users:      make(map[int64]*domain.User),
		companies:  make(map[int64]*domain.Company),
		jobs:       make(map[int64]*domain.Job),
		deliveries: make(map[int64]*domain.Delivery),
		collected:  make(map[[2]int64]bool),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperror.Conflict("Username or email already taken")
		}
	}
	user.ID = r.s.id()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *memUserRepo) Fetch(_ context.Context, limit, offset int) ([]domain.User, int64, error) {
	users := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, *u)
	}
	return users, int64(len(r.s.users)), nil
}

func (r *memUserRepo) CollectJob(_ context.Context, userID, jobID int64) error {
	key := [2]int64{userID, jobID}
	if r.s.collected[key] {
		return apperror.Conflict("Job already collected")
	}
	r.s.collected[key] = true
	return nil
}

func (r *memUserRepo) UncollectJob(_ context.Context, userID, jobID int64) error {
	key := [2]int64{userID, jobID}
	if !r.s.collected[key] {
		return domain.ErrNotFound
	}
	delete(r.s.collected, key)
	return nil
}

func (r *memUserRepo) FetchCollectedJobs(_ context.Context, userID int64) ([]domain.Job, error) {
	var jobs []domain.Job
	for key := range r.s.collected {
		if key[0] != userID {
			continue
		}
		if j, ok := r.s.jobs[key[1]]; ok {
			jobs = append(jobs, *j)
		}
	}
	return jobs, nil
}

func (r *memUserRepo) IsJobCollected(_ context.Context, userID, jobID int64) (bool, error) {
	return r.s.collected[[2]int64{userID, jobID}], nil
}

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	for _, c := range r.s.companies {
		if c.Name == company.Name || c.Slug == company.Slug {
			return apperror.Conflict("Company name or slug already taken")
		}
	}
	company.ID = r.s.id()
	cp := *company
	r.s.companies[company.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetBySlug(_ context.Context, slug string) (*domain.Company, error) {
	for _, c := range r.s.companies {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCompanyRepo) GetByUserID(_ context.Context, userID int64) (*domain.Company, error) {
	for _, c := range r.s.companies {
		if c.UserID != nil && *c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCompanyRepo) Fetch(_ context.Context, limit, offset int) ([]domain.Company, int64, error) {
	companies := make([]domain.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		companies = append(companies, *c)
	}
	return companies, int64(len(r.s.companies)), nil
}

func (r *memCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := r.s.companies[company.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *company
	r.s.companies[company.ID] = &cp
	return nil
}

func (r *memCompanyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, id)
	return nil
}

type memJobRepo struct{ s *memStore }

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) error {
	job.ID = r.s.id()
	cp := *job
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *memJobRepo) Fetch(_ context.Context, limit, offset int) ([]domain.Job, int64, error) {
	jobs := make([]domain.Job, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		jobs = append(jobs, *j)
	}
	return jobs, int64(len(r.s.jobs)), nil
}

func (r *memJobRepo) FetchOpen(_ context.Context, limit, offset int) ([]domain.Job, int64, error) {
	var jobs []domain.Job
	for _, j := range r.s.jobs {
		if j.IsOpen {
			jobs = append(jobs, *j)
		}
	}
	return jobs, int64(len(jobs)), nil
}

func (r *memJobRepo) FetchByCompanyID(_ context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	var jobs []domain.Job
	for _, j := range r.s.jobs {
		if j.CompanyID == companyID {
			jobs = append(jobs, *j)
		}
	}
	return jobs, int64(len(jobs)), nil
}

func (r *memJobRepo) Update(_ context.Context, job *domain.Job) error {
	if _, ok := r.s.jobs[job.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *job
	r.s.jobs[job.ID] = &cp
	return nil
}

func (r *memJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.jobs, id)
	return nil
}

func (r *memJobRepo) IncrementViews(_ context.Context, id int64) (int, error) {
	j, ok := r.s.jobs[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	j.ViewsCount++
	return j.ViewsCount, nil
}

type memDeliveryRepo struct{ s *memStore }

func (r *memDeliveryRepo) Create(_ context.Context, delivery *domain.Delivery) error {
	delivery.ID = r.s.id()
	cp := *delivery
	r.s.deliveries[delivery.ID] = &cp
	return nil
}

func (r *memDeliveryRepo) GetByID(_ context.Context, id int64) (*domain.Delivery, error) {
	d, ok := r.s.deliveries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *memDeliveryRepo) Exists(_ context.Context, jobID, userID int64) (bool, error) {
	for _, d := range r.s.deliveries {
		if d.JobID != nil && *d.JobID == jobID && d.UserID != nil && *d.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memDeliveryRepo) FetchByUserID(_ context.Context, userID int64) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	for _, d := range r.s.deliveries {
		if d.UserID != nil && *d.UserID == userID {
			deliveries = append(deliveries, *d)
		}
	}
	return deliveries, nil
}

func (r *memDeliveryRepo) FetchByJobID(_ context.Context, jobID int64) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	for _, d := range r.s.deliveries {
		if d.JobID != nil && *d.JobID == jobID {
			deliveries = append(deliveries, *d)
		}
	}
	return deliveries, nil
}

func (r *memDeliveryRepo) Fetch(_ context.Context, limit, offset int) ([]domain.Delivery, int64, error) {
	deliveries := make([]domain.Delivery, 0, len(r.s.deliveries))
	for _, d := range r.s.deliveries {
		deliveries = append(deliveries, *d)
	}
	return deliveries, int64(len(r.s.deliveries)), nil
}

func (r *memDeliveryRepo) UpdateStatus(_ context.Context, id int64, status domain.DeliveryStatus, response *string) error {
	d, ok := r.s.deliveries[id]
	if !ok || d.Status != domain.DeliveryStatusWaiting {
		return domain.ErrNotFound
	}
	d.Status = status
	if response != nil {
		d.Response = response
	}
	return nil
}

// newMemRouter wires the real usecases over the in-memory store.
func newMemRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	userRepo := &memUserRepo{s: store}
	companyRepo := &memCompanyRepo{s: store}
	jobRepo := &memJobRepo{s: store}
	deliveryRepo := &memDeliveryRepo{s: store}
	validate := validator.New()

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:     usecase.NewAuthUsecase(userRepo, validate),
		CompanyUC:  usecase.NewCompanyUsecase(companyRepo, userRepo, validate),
		JobUC:      usecase.NewJobUsecase(jobRepo, companyRepo, userRepo),
		DeliveryUC: usecase.NewDeliveryUsecase(deliveryRepo, jobRepo, userRepo),
		AdminUC:    usecase.NewAdminUsecase(userRepo, deliveryRepo, 10),
		Config: &config.Config{
			IndexPerPage:             10,
			AdminPerPage:             10,
			RateLimitWindowSeconds:   60,
			RateLimitGlobalThreshold: 10000,
		},
		TemplateGlob: "../../../../templates/*.html",
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode response data: %v", err)
	}
}

func TestCreateJobBooleanDefaults(t *testing.T) {
	store := newMemStore()
	store.companies[1] = &domain.Company{ID: 1, Name: "Acme", Slug: "acme"}
	store.nextID = 1
	router := newMemRouter(store)

	t.Run("Should default is_fulltime and is_open to true when omitted", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/jobs", gin.H{
			"company_id":  1,
			"name":        "Backend Engineer",
			"salary_low":  5000,
			"salary_high": 8000,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created domain.Job
		decodeData(t, w, &created)
		assert.True(t, created.IsFulltime)
		assert.True(t, created.IsOpen)

		// The stored row must carry the defaults too, not just the response.
		w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/jobs/%d", created.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var fetched domain.Job
		decodeData(t, w, &fetched)
		assert.True(t, fetched.IsFulltime)
		assert.True(t, fetched.IsOpen)
		assert.Equal(t, 5000, fetched.SalaryLow)
		assert.Equal(t, 8000, fetched.SalaryHigh)
	})

	t.Run("Should honor explicit false values", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/jobs", gin.H{
			"company_id":  1,
			"name":        "Contract Designer",
			"salary_low":  3000,
			"salary_high": 4000,
			"is_fulltime": false,
			"is_open":     false,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created domain.Job
		decodeData(t, w, &created)
		assert.False(t, created.IsFulltime)
		assert.False(t, created.IsOpen)
	})

	t.Run("Should accept a zero salary floor", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/jobs", gin.H{
			"company_id":  1,
			"name":        "Unpaid Internship",
			"salary_low":  0,
			"salary_high": 1000,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var created domain.Job
		decodeData(t, w, &created)
		assert.Equal(t, 0, created.SalaryLow)
		assert.Equal(t, 1000, created.SalaryHigh)
	})
}

// TestApplicationFlow walks the whole hiring loop through the HTTP surface:
// a seeker registers, a company registers and posts a job, the seeker
// applies, and the company accepts the application with a reply.
func TestApplicationFlow(t *testing.T) {
	router := newMemRouter(newMemStore())

	w := doJSON(t, router, http.MethodPost, "/v1/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var seeker domain.User
	decodeData(t, w, &seeker)
	assert.Equal(t, domain.RoleUser, seeker.Role)

	w = doJSON(t, router, http.MethodPost, "/v1/auth/register", gin.H{
		"username": "acme-hr",
		"email":    "hr@acme.example.com",
		"password": "s3cret-pass",
		"role":     int16(domain.RoleCompany),
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var owner domain.User
	decodeData(t, w, &owner)

	w = doJSON(t, router, http.MethodPost, "/v1/companies", gin.H{
		"name":     "Acme",
		"slug":     "acme",
		"logo":     "https://acme.example.com/logo.png",
		"site":     "https://acme.example.com",
		"contact":  "555-0100",
		"email":    "jobs@acme.example.com",
		"location": "Berlin",
		"user_id":  owner.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var company domain.Company
	decodeData(t, w, &company)

	w = doJSON(t, router, http.MethodPost, "/v1/jobs", gin.H{
		"company_id":  company.ID,
		"name":        "Backend Engineer",
		"salary_low":  8000,
		"salary_high": 15000,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var job domain.Job
	decodeData(t, w, &job)
	assert.True(t, job.IsOpen)

	w = doJSON(t, router, http.MethodPost, "/v1/deliveries", gin.H{
		"job_id":  job.ID,
		"user_id": seeker.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var delivery domain.Delivery
	decodeData(t, w, &delivery)
	assert.Equal(t, domain.DeliveryStatusWaiting, delivery.Status)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/v1/deliveries/%d/status", delivery.ID), gin.H{
		"status":   int16(domain.DeliveryStatusAccepted),
		"response": "Welcome",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/deliveries/%d", delivery.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var settled domain.Delivery
	decodeData(t, w, &settled)
	assert.Equal(t, domain.DeliveryStatusAccepted, settled.Status)
	if assert.NotNil(t, settled.Response) {
		assert.Equal(t, "Welcome", *settled.Response)
	}

	// The decision is terminal; a second settlement attempt conflicts.
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/v1/deliveries/%d/status", delivery.ID), gin.H{
		"status": int16(domain.DeliveryStatusRejected),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
