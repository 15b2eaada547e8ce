package model

import "fmt"

// Sacrament identifies one of the seven parish service categories. Each has
// its own submission form, record shape and document checklist.
type Sacrament string

const (
	SacramentWedding      Sacrament = "wedding"
	SacramentBaptism      Sacrament = "baptism"
	SacramentBurial       Sacrament = "burial"
	SacramentCommunion    Sacrament = "communion"
	SacramentConfirmation Sacrament = "confirmation"
	SacramentAnointing    Sacrament = "anointing"
	SacramentConfession   Sacrament = "confession"
)

var sacramentLabels = map[Sacrament]string{
	SacramentWedding:      "Wedding",
	SacramentBaptism:      "Baptism",
	SacramentBurial:       "Burial",
	SacramentCommunion:    "Communion",
	SacramentConfirmation: "Confirmation",
	SacramentAnointing:    "Anointing",
	SacramentConfession:   "Confession",
}

// Transaction id prefixes disambiguate booking types, so identifiers stay
// unique across all sacraments combined.
var sacramentPrefixes = map[Sacrament]string{
	SacramentWedding:      "WD",
	SacramentBaptism:      "BP",
	SacramentBurial:       "BR",
	SacramentCommunion:    "CM",
	SacramentConfirmation: "CF",
	SacramentAnointing:    "AN",
	SacramentConfession:   "CN",
}

func ParseSacrament(s string) (Sacrament, error) {
	switch Sacrament(s) {
	case SacramentWedding, SacramentBaptism, SacramentBurial, SacramentCommunion,
		SacramentConfirmation, SacramentAnointing, SacramentConfession:
		return Sacrament(s), nil
	default:
		return "", fmt.Errorf("unknown sacrament: %s", s)
	}
}

// AllSacraments returns every sacrament in stable display order.
func AllSacraments() []Sacrament {
	return []Sacrament{
		SacramentWedding,
		SacramentBaptism,
		SacramentBurial,
		SacramentCommunion,
		SacramentConfirmation,
		SacramentAnointing,
		SacramentConfession,
	}
}

// Label returns the human-readable type label shown on the review screen.
func (s Sacrament) Label() string {
	return sacramentLabels[s]
}

// Prefix returns the transaction id prefix for the sacrament.
func (s Sacrament) Prefix() string {
	return sacramentPrefixes[s]
}
