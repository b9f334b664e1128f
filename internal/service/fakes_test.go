package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/school-admin-service/internal/domain"
	"github.com/spec-kit/school-admin-service/internal/events"
)

// In-memory repository fakes. They return bare pgx.ErrNoRows for misses,
// matching what the Postgres implementations surface.

type fakeAccountRepo struct {
	mu        sync.Mutex
	accounts  map[int64]*domain.Account
	nextID    int64
	createErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int64]*domain.Account), nextID: 1}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	account.ID = r.nextID
	r.nextID++
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *account
	return &clone, nil
}

func (r *fakeAccountRepo) GetByIdentifier(_ context.Context, identifier string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email != nil && *account.Email == identifier {
			clone := *account
			return &clone, nil
		}
		if account.Phone != nil && *account.Phone == identifier {
			clone := *account
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAccountRepo) UpdatePassword(_ context.Context, id int64, hash string, mustChange bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.PasswordHash = hash
	account.MustChangePassword = mustChange
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.accounts, id)
	return nil
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[int64]*domain.Student
	nextID   int64
	// onDelete mimics the FK cascade the database performs.
	onDelete func(studentID int64)
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*domain.Student), nextID: 1}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	student.ID = r.nextID
	r.nextID++
	clone := *student
	r.students[student.ID] = &clone
	return nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[student.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *student
	r.students[student.ID] = &clone
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *student
	return &clone, nil
}

func (r *fakeStudentRepo) List(_ context.Context) ([]domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Student, 0, len(r.students))
	for _, student := range r.students {
		out = append(out, *student)
	}
	return out, nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	onDelete := r.onDelete
	if _, ok := r.students[id]; !ok {
		r.mu.Unlock()
		return pgx.ErrNoRows
	}
	delete(r.students, id)
	r.mu.Unlock()
	if onDelete != nil {
		onDelete(id)
	}
	return nil
}

type fakeFeesRepo struct {
	mu      sync.Mutex
	records map[int64]*domain.FeesHistory
	nextID  int64
}

func newFakeFeesRepo() *fakeFeesRepo {
	return &fakeFeesRepo{records: make(map[int64]*domain.FeesHistory), nextID: 1}
}

func (r *fakeFeesRepo) Create(_ context.Context, record *domain.FeesHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeFeesRepo) Update(_ context.Context, record *domain.FeesHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeFeesRepo) GetByID(_ context.Context, id int64) (*domain.FeesHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *record
	return &clone, nil
}

func (r *fakeFeesRepo) ListByStudent(_ context.Context, studentID int64) ([]domain.FeesHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.FeesHistory, 0)
	for _, record := range r.records {
		if record.StudentID == studentID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (r *fakeFeesRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	return nil
}

func (r *fakeFeesRepo) deleteByStudent(studentID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, record := range r.records {
		if record.StudentID == studentID {
			delete(r.records, id)
		}
	}
}

type fakeLibraryRepo struct {
	mu      sync.Mutex
	records map[int64]*domain.LibraryHistory
	nextID  int64
}

func newFakeLibraryRepo() *fakeLibraryRepo {
	return &fakeLibraryRepo{records: make(map[int64]*domain.LibraryHistory), nextID: 1}
}

func (r *fakeLibraryRepo) Create(_ context.Context, record *domain.LibraryHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeLibraryRepo) Update(_ context.Context, record *domain.LibraryHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeLibraryRepo) GetByID(_ context.Context, id int64) (*domain.LibraryHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *record
	return &clone, nil
}

func (r *fakeLibraryRepo) ListByStudent(_ context.Context, studentID int64) ([]domain.LibraryHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LibraryHistory, 0)
	for _, record := range r.records {
		if record.StudentID == studentID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (r *fakeLibraryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.records, id)
	return nil
}

func (r *fakeLibraryRepo) deleteByStudent(studentID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, record := range r.records {
		if record.StudentID == studentID {
			delete(r.records, id)
		}
	}
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]int64
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]int64)}
}

func (s *fakeSessionStore) Put(_ context.Context, sessionID string, accountID int64, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = accountID
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, sessionID string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accountID, ok := s.sessions[sessionID]
	return accountID, ok, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

func strPtr(s string) *string { return &s }
