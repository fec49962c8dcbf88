package user

import "github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов (БД или транзакция)
type DBExecutor = dbmetrics.DBExecutor
