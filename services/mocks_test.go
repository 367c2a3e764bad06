package services

import (
	"context"
	"fmt"
	"time"

	"barberpro-backend/models"

	"github.com/google/uuid"
)

// MockCustomerDirectory keeps customers in memory, keyed by id.
type MockCustomerDirectory struct {
	customers     map[uuid.UUID]*models.Customer
	findByIDError error
}

func newMockCustomerDirectory(customers ...*models.Customer) *MockCustomerDirectory {
	m := &MockCustomerDirectory{customers: map[uuid.UUID]*models.Customer{}}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

func (m *MockCustomerDirectory) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if m.findByIDError != nil {
		return nil, m.findByIDError
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MockCustomerDirectory) FindByReferralCode(ctx context.Context, code string) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ReferralCode == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrCustomerNotFound
}

type MockStaffDirectory struct {
	users map[uuid.UUID]*models.User
}

func (m *MockStaffDirectory) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

// MockServiceCatalog hands out copies so tests can mutate the catalog
// between calls.
type MockServiceCatalog struct {
	services map[uuid.UUID]*models.Service
}

func (m *MockServiceCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if s, ok := m.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, ErrServiceNotFound
}

type MockProductCatalog struct {
	products map[uuid.UUID]*models.Product
}

func (m *MockProductCatalog) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrProductNotFound
}

type MockPartnershipDirectory struct {
	partnerships map[uuid.UUID]*models.Partnership
}

func (m *MockPartnershipDirectory) FindByID(ctx context.Context, id uuid.UUID) (*models.Partnership, error) {
	if p, ok := m.partnerships[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrPartnershipNotFound
}

type MockFeeSettings struct {
	settings     models.Settings
	currentError error
}

func (m *MockFeeSettings) Current(ctx context.Context) (models.Settings, error) {
	return m.settings, m.currentError
}

// MockAppointmentStore stores deep-enough copies so a later catalog change
// cannot reach a persisted snapshot. Referral credits land on customers.
type MockAppointmentStore struct {
	customers    *MockCustomerDirectory
	credits      []ReferralCredit
	appointments map[uuid.UUID]models.Appointment
	creates      int
	saves        int
	lastQuery    AppointmentQuery
	listResult   []models.Appointment
	listTotal    int64
	finished     []models.Appointment
	finishedFrom time.Time
	finishedTo   time.Time
	saveError    error
}

func newMockAppointmentStore(customers *MockCustomerDirectory) *MockAppointmentStore {
	return &MockAppointmentStore{customers: customers, appointments: map[uuid.UUID]models.Appointment{}}
}

func cloneAppointment(a *models.Appointment) models.Appointment {
	cp := *a
	cp.Services = append([]models.AppointmentService(nil), a.Services...)
	cp.Products = append([]models.AppointmentProduct(nil), a.Products...)
	cp.Partnerships = append([]models.Partnership(nil), a.Partnerships...)
	return cp
}

func (m *MockAppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	m.creates++
	m.appointments[appt.ID] = cloneAppointment(appt)
	return nil
}

func (m *MockAppointmentStore) Save(ctx context.Context, appt *models.Appointment) error {
	m.saves++
	if m.saveError != nil {
		return m.saveError
	}
	m.appointments[appt.ID] = cloneAppointment(appt)
	return nil
}

func (m *MockAppointmentStore) SaveWithReferral(ctx context.Context, appt *models.Appointment, credit ReferralCredit) error {
	m.saves++
	if m.saveError != nil {
		return m.saveError
	}
	referred, ok := m.customers.customers[credit.ReferredID]
	if !ok {
		return ErrCustomerNotFound
	}
	referrer, ok := m.customers.customers[credit.ReferrerID]
	if !ok {
		return ErrCustomerNotFound
	}
	m.appointments[appt.ID] = cloneAppointment(appt)
	if referred.ReferralCodeCount != 0 {
		return nil
	}
	referred.ReferralCodeCount++
	referrer.ReferralCodeCount++
	m.credits = append(m.credits, credit)
	return nil
}

func (m *MockAppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotFound, id)
	}
	cp := cloneAppointment(&a)
	return &cp, nil
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.appointments[id]; !ok {
		return ErrAppointmentNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *MockAppointmentStore) List(ctx context.Context, q AppointmentQuery) ([]models.Appointment, int64, error) {
	m.lastQuery = q
	return m.listResult, m.listTotal, nil
}

func (m *MockAppointmentStore) ListFinished(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	m.finishedFrom, m.finishedTo = from, to
	return m.finished, nil
}

type MockNotifier struct {
	created  []models.Appointment
	updated  []models.Appointment
	previous []models.AppointmentStatus
}

func (m *MockNotifier) AppointmentCreated(ctx context.Context, appt *models.Appointment) {
	m.created = append(m.created, *appt)
}

func (m *MockNotifier) AppointmentUpdated(ctx context.Context, appt *models.Appointment, previous models.AppointmentStatus) {
	m.updated = append(m.updated, *appt)
	m.previous = append(m.previous, previous)
}

// fixture bundles one engine with all of its fakes.
type fixture struct {
	svc          *AppointmentService
	store        *MockAppointmentStore
	customers    *MockCustomerDirectory
	staff        *MockStaffDirectory
	catalog      *MockServiceCatalog
	products     *MockProductCatalog
	partnerships *MockPartnershipDirectory
	fees         *MockFeeSettings
	notifier     *MockNotifier
	customer     *models.Customer
	now          time.Time
}

func newFixture() *fixture {
	customer := &models.Customer{ID: uuid.New(), Name: "Carlos", ReferralCode: "CARL0S"}
	customers := newMockCustomerDirectory(customer)
	f := &fixture{
		store:        newMockAppointmentStore(customers),
		customers:    customers,
		staff:        &MockStaffDirectory{users: map[uuid.UUID]*models.User{}},
		catalog:      &MockServiceCatalog{services: map[uuid.UUID]*models.Service{}},
		products:     &MockProductCatalog{products: map[uuid.UUID]*models.Product{}},
		partnerships: &MockPartnershipDirectory{partnerships: map[uuid.UUID]*models.Partnership{}},
		fees:         &MockFeeSettings{},
		notifier:     &MockNotifier{},
		customer:     customer,
		now:          time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
	}
	f.svc = NewAppointmentService(Dependencies{
		Store:        f.store,
		Customers:    f.customers,
		Staff:        f.staff,
		Services:     f.catalog,
		Products:     f.products,
		Partnerships: f.partnerships,
		Fees:         f.fees,
		Notifier:     f.notifier,
	})
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) addService(value float64, promo *float64, promoOn bool, weight int) uuid.UUID {
	id := uuid.New()
	f.catalog.services[id] = &models.Service{
		ID:      id,
		Name:    "service",
		Pricing: models.Pricing{Value: value, PromotionValue: promo, PromotionEnabled: promoOn},
		Weight:  weight,
	}
	return id
}

func (f *fixture) addProduct(value float64, promo *float64, promoOn bool) uuid.UUID {
	id := uuid.New()
	f.products.products[id] = &models.Product{
		ID:      id,
		Name:    "product",
		Pricing: models.Pricing{Value: value, PromotionValue: promo, PromotionEnabled: promoOn},
	}
	return id
}

func (f *fixture) addPartnership(kind models.DiscountType, value float64) uuid.UUID {
	id := uuid.New()
	f.partnerships.partnerships[id] = &models.Partnership{ID: id, Name: "partner", DiscountType: kind, DiscountValue: value}
	return id
}

func (f *fixture) addAttendant(name string) uuid.UUID {
	id := uuid.New()
	f.staff.users[id] = &models.User{ID: id, Name: name}
	return id
}

func ptr[T any](v T) *T { return &v }
