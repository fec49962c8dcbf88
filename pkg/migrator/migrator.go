package migrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

var (
	// ErrUnknownCommand возвращается для неподдерживаемой команды миграций
	ErrUnknownCommand = errors.New("migrator: unknown command")
)

// Logger интерфейс логгера goose
type Logger interface {
	Printf(format string, v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Migrator обёртка над goose с миграциями из встроенной файловой системы
type Migrator struct {
	db  *sql.DB
	dir string
}

// New настраивает goose на postgres и файловую систему миграций
func New(db *sql.DB, migrations fs.FS, dir string, logger Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations)
	if logger != nil {
		goose.SetLogger(logger)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db, dir: dir}, nil
}

// Run выполняет команду: up, down или status
func (m *Migrator) Run(ctx context.Context, command string) error {
	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, m.db, m.dir)
	case "down":
		err = goose.DownContext(ctx, m.db, m.dir)
	case "status":
		err = goose.StatusContext(ctx, m.db, m.dir)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}
