package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	"github.com/m04kA/SMC-AgendaService/internal/service/services/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

const (
	profA     = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	unknownID = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
)

type fakeServices struct {
	created *domain.Service
	err     error
}

func (f *fakeServices) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	s.ID = "service-1"
	f.created = s
	return s, nil
}

func (f *fakeServices) List(context.Context) ([]*domain.Service, error) {
	return []*domain.Service{{ID: "service-1", Name: "Corte", Price: 50}}, nil
}

type fakeProfessionals map[string]bool

func (f fakeProfessionals) GetByID(_ context.Context, id string) (*domain.Professional, error) {
	if f[id] {
		return &domain.Professional{ID: id}, nil
	}
	return nil, professionalRepo.ErrProfessionalNotFound
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func newService() (*Service, *fakeServices, *fakeTx) {
	repo := &fakeServices{}
	tx := &fakeTx{}
	return NewService(repo, fakeProfessionals{profA: true}, tx, logger.NewNop()), repo, tx
}

func TestCreate(t *testing.T) {
	svc, repo, tx := newService()

	id, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "Corte",
		Description:     "Corte de cabelo",
		Price:           49.999,
		ProfessionalIDs: []string{profA, profA},
	})
	require.NoError(t, err)
	assert.Equal(t, "service-1", id)
	assert.Equal(t, []string{profA}, repo.created.ProfessionalIDs)
	assert.Equal(t, 50.0, repo.created.Price)
	assert.Equal(t, 1, tx.calls)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Price: 10}},
		{"zero price", models.CreateServiceRequest{Name: "Corte"}},
		{"negative price", models.CreateServiceRequest{Name: "Corte", Price: -1}},
		{"bad professional id", models.CreateServiceRequest{Name: "Corte", Price: 10, ProfessionalIDs: []string{"alice"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService()
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestCreate_UnknownProfessional(t *testing.T) {
	svc, repo, _ := newService()

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name: "Corte", Price: 10, ProfessionalIDs: []string{profA, unknownID},
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Nil(t, repo.created)
}

func TestCreate_StorageError(t *testing.T) {
	svc, repo, _ := newService()
	repo.err = errors.New("boom")

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{Name: "Corte", Price: 10})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList(t *testing.T) {
	svc, _, _ := newService()

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].ProfessionalIDs)
}
