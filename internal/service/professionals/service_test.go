package professionals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

const (
	professionalID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	serviceID      = "1f0e2d3c-4b5a-4968-8776-a5b4c3d2e1f0"
)

type fakeRepo struct {
	created   *domain.Professional
	listArg   *string
	updated   domain.WeeklyAvailability
	createErr error
	updateErr error
}

func (f *fakeRepo) Create(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = professionalID
	f.created = p
	return p, nil
}

func (f *fakeRepo) List(_ context.Context, serviceID *string) ([]*domain.Professional, error) {
	f.listArg = serviceID
	return []*domain.Professional{{ID: professionalID, Name: "Alice", Availability: domain.WeeklyAvailability{"monday": {"09:00"}}}}, nil
}

func (f *fakeRepo) UpdateAvailability(_ context.Context, id string, availability domain.WeeklyAvailability) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = availability
	return nil
}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	return NewService(repo, logger.NewNop()), repo
}

func TestCreate_NormalizesAvailability(t *testing.T) {
	svc, repo := newService()

	id, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{
		Name:           "  Alice ",
		Specialization: "Cabelo",
		Availability:   map[string][]string{"Monday": {"10:00", "09:00", "09:00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, professionalID, id)
	assert.Equal(t, "Alice", repo.created.Name)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, repo.created.Availability["monday"])
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateProfessionalRequest{
		Name:         "Alice",
		Availability: map[string][]string{"someday": {"09:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidAvailability)
	assert.ErrorIs(t, err, domain.ErrUnknownWeekday)

	assert.Nil(t, repo.created)
}

func TestCreate_StorageError(t *testing.T) {
	svc, repo := newService()
	repo.createErr = errors.New("boom")

	_, err := svc.Create(context.Background(), &models.CreateProfessionalRequest{Name: "Alice"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList(t *testing.T) {
	svc, repo := newService()

	list, err := svc.List(context.Background(), serviceID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, map[string][]string{"monday": {"09:00"}}, list[0].Availability)
	require.NotNil(t, repo.listArg)
	assert.Equal(t, serviceID, *repo.listArg)

	_, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, repo.listArg)

	_, err = svc.List(context.Background(), "haircut")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAvailability(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, repo := newService()
		err := svc.UpdateAvailability(context.Background(), professionalID, map[string][]string{"friday": {"14:00"}})
		require.NoError(t, err)
		assert.Equal(t, domain.WeeklyAvailability{"friday": {"14:00"}}, repo.updated)
	})

	t.Run("bad time", func(t *testing.T) {
		svc, _ := newService()
		err := svc.UpdateAvailability(context.Background(), professionalID, map[string][]string{"friday": {"2pm"}})
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newService()
		repo.updateErr = professionalRepo.ErrProfessionalNotFound
		err := svc.UpdateAvailability(context.Background(), professionalID, nil)
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})
}
