package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/pgerrors"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// professionalIDsColumn агрегирует ID специалистов услуги, пустой массив если их нет
const professionalIDsColumn = "COALESCE(array_agg(sp.professional_id::text ORDER BY sp.professional_id) " +
	"FILTER (WHERE sp.professional_id IS NOT NULL), '{}') AS professional_ids"

// Repository репозиторий услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет услугу и её связи со специалистами
// Вызывается внутри транзакции, иначе при ошибке вставки связей услуга останется без них
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	s.ID = uuid.New().String()

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "name", "description", "price").
		Values(s.ID, s.Name, s.Description, s.Price).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	if len(s.ProfessionalIDs) == 0 {
		return s, nil
	}

	linkBuilder := psqlbuilder.Insert("service_professionals").
		Columns("service_id", "professional_id")
	for _, professionalID := range s.ProfessionalIDs {
		linkBuilder = linkBuilder.Values(s.ID, professionalID)
	}

	query, args, err = linkBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build link query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.Is(err, pgerrors.ForeignKeyViolation) {
			return nil, fmt.Errorf("%w: Create: %w", ErrProfessionalNotFound, err)
		}
		return nil, fmt.Errorf("%w: Create - execute link insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает услугу со списком специалистов
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectServices().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %w", ErrScanRow, err)
	}

	return s, nil
}

// List возвращает все услуги по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectServices().
		OrderBy("s.name ASC", "s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

func selectServices() squirrel.SelectBuilder {
	return psqlbuilder.Select("s.id", "s.name", "s.description", "s.price", professionalIDsColumn).
		From("services s").
		LeftJoin("service_professionals sp ON sp.service_id = s.id").
		GroupBy("s.id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var professionalIDs []string
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, pq.Array(&professionalIDs)); err != nil {
		return nil, err
	}
	s.ProfessionalIDs = professionalIDs
	if s.ProfessionalIDs == nil {
		s.ProfessionalIDs = []string{}
	}
	return &s, nil
}
