package usecase

import (
	"context"
	"sync"

	"job-khojo/internal/infrastructure/webhook"
	"job-khojo/internal/repository"

	"github.com/google/uuid"
)

type fakeApplicantRepo struct {
	mu       sync.Mutex
	byEmail  map[string]uuid.UUID
	status   map[uuid.UUID]string
	upserts  int
	statusWr int

	upsertErr error
	existsErr error
	statusErr error
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{
		byEmail: map[string]uuid.UUID{},
		status:  map[uuid.UUID]string{},
	}
}

func (f *fakeApplicantRepo) UpsertByEmail(_ context.Context, in repository.ApplicantUpsert) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return uuid.Nil, f.upsertErr
	}
	f.upserts++
	if id, ok := f.byEmail[in.Email]; ok {
		return id, nil
	}
	id := uuid.New()
	f.byEmail[in.Email] = id
	f.status[id] = "pending"
	return id, nil
}

func (f *fakeApplicantRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.status[id]
	return ok, nil
}

func (f *fakeApplicantRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return false, f.statusErr
	}
	if _, ok := f.status[id]; !ok {
		return false, nil
	}
	f.status[id] = status
	f.statusWr++
	return true, nil
}

func (f *fakeApplicantRepo) rowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}

func repositoryUpsertFixture() repository.ApplicantUpsert {
	return repository.ApplicantUpsert{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
	}
}

type fakePreferenceRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]repository.PreferenceUpsert
	err  error
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{rows: map[uuid.UUID]repository.PreferenceUpsert{}}
}

func (f *fakePreferenceRepo) UpsertByUserID(_ context.Context, in repository.PreferenceUpsert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rows[in.UserID] = in
	return nil
}

type fakeResumeRepo struct {
	mu         sync.Mutex
	rows       map[uuid.UUID]repository.ResumeUpsert
	ids        map[uuid.UUID]uuid.UUID
	embeddings []repository.EmbeddingRecord
	err        error
	embedErr   error
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{
		rows: map[uuid.UUID]repository.ResumeUpsert{},
		ids:  map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeResumeRepo) UpsertByUserID(_ context.Context, in repository.ResumeUpsert) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.rows[in.UserID] = in
	id, ok := f.ids[in.UserID]
	if !ok {
		id = uuid.New()
		f.ids[in.UserID] = id
	}
	return id, nil
}

func (f *fakeResumeRepo) SaveEmbedding(_ context.Context, in repository.EmbeddingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.embedErr != nil {
		return f.embedErr
	}
	f.embeddings = append(f.embeddings, in)
	return nil
}

type fakeUploader struct {
	mu       sync.Mutex
	calls    int
	lastPath string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, objectPath, _ string, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.calls++
	f.lastPath = objectPath
	return "https://storage.example/public/" + objectPath, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls int
	last  webhook.Event
	code  int
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, evt webhook.Event) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = evt
	if f.err != nil {
		return 0, f.err
	}
	if f.code == 0 {
		return 200, nil
	}
	return f.code, nil
}

type fakeEmbedder struct {
	calls int
	vec   []float32
	err   error
}

func (f *fakeEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.vec == nil {
		return []float32{0.1, 0.2, 0.3}, nil
	}
	return f.vec, nil
}

type fakeApplicationQueryRepo struct {
	lastFilter repository.ApplicationListFilter
	rows       []repository.ApplicationRow
	err        error
}

func (f *fakeApplicationQueryRepo) List(_ context.Context, filter repository.ApplicationListFilter) ([]repository.ApplicationRow, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
