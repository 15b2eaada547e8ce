package dto

import (
	"parish/internal/domains/priest/model"
	gModel "parish/shared/model"
	"parish/shared/timezone"

	"github.com/google/uuid"
)

type CreatePriestRequest struct {
	Name  string `json:"name"  validate:"required,max=150"`
	Title string `json:"title" validate:"omitempty,max=100"`
}

func (r *CreatePriestRequest) ToModel(user string) model.Priest {
	now := timezone.Now()

	return model.Priest{
		ID:     uuid.NewString(),
		Name:   r.Name,
		Title:  r.Title,
		Active: true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PriestResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Active bool   `json:"active"`
}

func (r *PriestResponse) FromModel(priest model.Priest) {
	r.ID = priest.ID
	r.Name = priest.Name
	r.Title = priest.Title
	r.Active = priest.Active
}

type GetPriestsResponse struct {
	Priests []PriestResponse `json:"priests"`
}

func (r *GetPriestsResponse) FromModels(priests []model.Priest) {
	r.Priests = make([]PriestResponse, len(priests))
	for i, priest := range priests {
		r.Priests[i].FromModel(priest)
	}
}
