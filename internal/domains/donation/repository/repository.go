package repository

import (
	"parish/infras/otel"
	"parish/infras/postgres"
	"parish/internal/domains/donation/model"
	gRepo "parish/shared/repository"
)

func New(db *postgres.Connection, otl otel.Otel) gRepo.Store[model.Donation] {
	return gRepo.New[model.Donation](model.EntityName, model.TableName, model.FieldID, db, otl)
}
