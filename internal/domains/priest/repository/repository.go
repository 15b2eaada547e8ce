package repository

import (
	"parish/infras/otel"
	"parish/infras/postgres"
	"parish/internal/domains/priest/model"
	gRepo "parish/shared/repository"
)

func New(db *postgres.Connection, otl otel.Otel) gRepo.Store[model.Priest] {
	return gRepo.New[model.Priest](model.EntityName, model.TableName, model.FieldID, db, otl)
}
