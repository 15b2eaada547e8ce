package repository

import (
	"parish/infras/otel"
	"parish/infras/postgres"
	"parish/internal/domains/booking/model"
	gRepo "parish/shared/repository"
)

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/repository_mock.go -package=booking_repository_mocks

// Bookings bundles one store per sacrament table. The schedule shapes differ
// enough that each sacrament keeps its own table; callers that only need to
// mutate status use Mutator so they never have to know the concrete row type.
type Bookings struct {
	Wedding      gRepo.Store[model.WeddingRecord]
	Baptism      gRepo.Store[model.BaptismRecord]
	Burial       gRepo.Store[model.BurialRecord]
	Communion    gRepo.Store[model.CommunionRecord]
	Confirmation gRepo.Store[model.ConfirmationRecord]
	Anointing    gRepo.Store[model.AnointingRecord]
	Confession   gRepo.Store[model.ConfessionRecord]
}

func New(db *postgres.Connection, otl otel.Otel) *Bookings {
	return &Bookings{
		Wedding:      gRepo.New[model.WeddingRecord](model.WeddingEntityName, model.WeddingTableName, model.FieldID, db, otl),
		Baptism:      gRepo.New[model.BaptismRecord](model.BaptismEntityName, model.BaptismTableName, model.FieldID, db, otl),
		Burial:       gRepo.New[model.BurialRecord](model.BurialEntityName, model.BurialTableName, model.FieldID, db, otl),
		Communion:    gRepo.New[model.CommunionRecord](model.CommunionEntityName, model.CommunionTableName, model.FieldID, db, otl),
		Confirmation: gRepo.New[model.ConfirmationRecord](model.ConfirmationEntityName, model.ConfirmationTableName, model.FieldID, db, otl),
		Anointing:    gRepo.New[model.AnointingRecord](model.AnointingEntityName, model.AnointingTableName, model.FieldID, db, otl),
		Confession:   gRepo.New[model.ConfessionRecord](model.ConfessionEntityName, model.ConfessionTableName, model.FieldID, db, otl),
	}
}

// Mutator returns the store for a sacrament narrowed to its mutation surface.
func (b *Bookings) Mutator(sacrament model.Sacrament) gRepo.Mutator {
	switch sacrament {
	case model.SacramentWedding:
		return b.Wedding
	case model.SacramentBaptism:
		return b.Baptism
	case model.SacramentBurial:
		return b.Burial
	case model.SacramentCommunion:
		return b.Communion
	case model.SacramentConfirmation:
		return b.Confirmation
	case model.SacramentAnointing:
		return b.Anointing
	case model.SacramentConfession:
		return b.Confession
	}

	return nil
}
