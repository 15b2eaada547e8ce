// Package requirements resolves the document checklist a sacrament booking
// must satisfy before it can be scheduled.
package requirements

import (
	"parish/internal/domains/booking/model"
)

// Requirement describes one checklist entry. RequiresUpload marks documents
// collected as scans through the object store; the rest are physical copies
// the staff ticks off on the admin form.
type Requirement struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	RequiresUpload bool   `json:"requires_upload"`
}

// Flags carries the submission answers that condition the checklist.
type Flags struct {
	// CivillyMarried holds the wedding form's "are you civilly married?"
	// answer verbatim; the marriage contract is required only on "yes".
	CivillyMarried string
}

const civillyMarriedYes = "yes"

// Wedding's marriage contract entry, filtered out unless the couple is
// civilly married.
const RequirementMarriageContract = "marriage_contract"

var requirementTables = map[model.Sacrament][]Requirement{
	model.SacramentWedding: {
		{ID: "baptismal_certificate", Label: "Baptismal Certificate (groom and bride)", RequiresUpload: true},
		{ID: "confirmation_certificate", Label: "Confirmation Certificate (groom and bride)", RequiresUpload: true},
		{ID: "cenomar", Label: "Certificate of No Marriage (CENOMAR)", RequiresUpload: true},
		{ID: RequirementMarriageContract, Label: "Civil Marriage Contract", RequiresUpload: true},
		{ID: "marriage_banns", Label: "Marriage Banns", RequiresUpload: false},
		{ID: "canonical_interview", Label: "Canonical Interview", RequiresUpload: false},
		{ID: "pre_cana_seminar", Label: "Pre-Cana Seminar Attendance", RequiresUpload: false},
	},
	model.SacramentBaptism: {
		{ID: "birth_certificate", Label: "PSA Birth Certificate", RequiresUpload: true},
		{ID: "parents_marriage_certificate", Label: "Parents' Marriage Certificate", RequiresUpload: true},
		{ID: "sponsors_list", Label: "List of Godparents", RequiresUpload: false},
		{ID: "pre_baptismal_seminar", Label: "Pre-Baptismal Seminar Attendance", RequiresUpload: false},
	},
	model.SacramentBurial: {
		{ID: "death_certificate", Label: "Death Certificate", RequiresUpload: true},
		{ID: "burial_permit", Label: "Burial Permit", RequiresUpload: true},
		{ID: "deceased_baptismal_certificate", Label: "Baptismal Certificate of the Deceased", RequiresUpload: false},
	},
	model.SacramentCommunion: {
		{ID: "baptismal_certificate", Label: "Baptismal Certificate", RequiresUpload: true},
		{ID: "catechism_certificate", Label: "Catechism Completion Certificate", RequiresUpload: false},
	},
	model.SacramentConfirmation: {
		{ID: "baptismal_certificate", Label: "Baptismal Certificate", RequiresUpload: true},
		{ID: "communion_certificate", Label: "First Communion Certificate", RequiresUpload: true},
		{ID: "sponsor_certificate", Label: "Sponsor's Certificate of Eligibility", RequiresUpload: false},
	},
	model.SacramentAnointing: {
		{ID: "medical_abstract", Label: "Medical Abstract or Physician's Note", RequiresUpload: false},
	},
	model.SacramentConfession: {},
}

// Resolve returns the checklist applicable to the sacrament under the given
// flags. The returned slice is a copy; callers may reorder or trim it.
func Resolve(sacrament model.Sacrament, flags Flags) []Requirement {
	table := requirementTables[sacrament]
	resolved := make([]Requirement, 0, len(table))

	for _, requirement := range table {
		if requirement.ID == RequirementMarriageContract && flags.CivillyMarried != civillyMarriedYes {
			continue
		}

		resolved = append(resolved, requirement)
	}

	return resolved
}

// IsKnown reports whether the requirement id exists for the sacrament,
// regardless of conditional flags.
func IsKnown(sacrament model.Sacrament, requirementID string) bool {
	for _, requirement := range requirementTables[sacrament] {
		if requirement.ID == requirementID {
			return true
		}
	}

	return false
}

// UploadsOnly filters the checklist down to the entries collected as scans.
func UploadsOnly(list []Requirement) []Requirement {
	uploads := make([]Requirement, 0, len(list))

	for _, requirement := range list {
		if requirement.RequiresUpload {
			uploads = append(uploads, requirement)
		}
	}

	return uploads
}
