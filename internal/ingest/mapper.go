package ingest

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sonquang/laixe-registry/internal/app/models"
)

// Column layout shared by every tabular source (0-indexed). Positions 3, 7
// and 8 exist in the sources but carry nothing the record needs. The notes
// column may be missing; everything before it must be present.
const (
	colID                   = 0
	colFullName             = 1
	colDateOfBirth          = 2
	colGender               = 4
	colAddress              = 5
	colPhone                = 6
	colNationalID           = 9
	colNationalIDIssueDate  = 10
	colNationalIDIssuedBy   = 11
	colDegreeType           = 12
	colLicenseClass         = 13
	colLicenseNumber        = 14
	colLicenseIssueDate     = 15
	colLicenseIssuedBy      = 16
	colLicenseExpiry        = 17
	colCertificateName      = 18
	colCertificateNumber    = 19
	colCertificateIssueDate = 20
	colCertificateIssuedBy  = 21
	colContract             = 22
	colInsuranceCode        = 23
	colNotes                = 24

	minRowWidth = 24
)

// Insurance code tokens and the note phrases that refine a mandatory code.
const (
	insuranceCodeMandatory = "BB"
	insuranceCodeVoluntary = "TN"
	noteRetired            = "hưu trí"
	noteOtherUnit          = "đơn vị khác"
)

// MapRow builds one TeacherRecord from a flat row of cells.
//
// A row is rejected (nil, false) when its identifier cell is empty or, only
// after that check, when it carries fewer than minRowWidth cells. Field-level
// problems never reject a row: dates degrade to best-effort text, optional
// sub-records are left out, and a panic while mapping drops just that row.
func MapRow(row []Cell) (rec *models.TeacherRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("cause", r).Msg("Dropping row after mapping panic")
			rec, ok = nil, false
		}
	}()

	id := cellAt(row, colID).String()
	if id == "" {
		return nil, false
	}
	if len(row) < minRowWidth {
		return nil, false
	}

	notes := cellAt(row, colNotes).String()
	status, participates := classifyInsurance(cellAt(row, colInsuranceCode).String(), notes)
	contract := parseContract(cellAt(row, colContract))

	rec = &models.TeacherRecord{
		ID:          id,
		FullName:    textOr(row, colFullName, models.NotAvailable),
		DateOfBirth: dateOr(row, colDateOfBirth, models.NotAvailable),
		Gender:      parseGender(cellAt(row, colGender).String()),
		Address:     textOr(row, colAddress, models.NotAvailable),
		Phone:       textOr(row, colPhone, models.NotAvailable),

		Qualifications:        parseQualifications(cellAt(row, colDegreeType)),
		DrivingLicense:        parseLicense(row),
		InstructorCertificate: parseCertificate(row),

		// The sources guarantee these attachments for every listed teacher.
		HealthCertificate:    true,
		CurriculumVitae:      true,
		BirthCertificateCopy: true,

		Contract:    contract,
		HasContract: contract != nil,

		InsuranceStatus: status,
		HasInsurance:    participates,

		Note: notes,
	}

	if number := cellAt(row, colNationalID).String(); number != "" {
		rec.NationalIDNumber = number
		rec.NationalIDIssueDate, _ = Normalize(cellAt(row, colNationalIDIssueDate))
		rec.NationalIDIssuedBy = cellAt(row, colNationalIDIssuedBy).String()
	}

	return rec, true
}

func cellAt(row []Cell, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return AbsentCell()
	}
	return row[idx]
}

func textOr(row []Cell, idx int, fallback string) string {
	if s := cellAt(row, idx).String(); s != "" {
		return s
	}
	return fallback
}

func dateOr(row []Cell, idx int, fallback string) string {
	if s, _ := Normalize(cellAt(row, idx)); s != "" {
		return s
	}
	return fallback
}

func parseGender(raw string) models.Gender {
	switch models.Gender(raw) {
	case models.GenderMale:
		return models.GenderMale
	case models.GenderFemale:
		return models.GenderFemale
	default:
		return models.GenderOther
	}
}

// parseQualifications turns a non-empty degree-type cell into a
// single-element list. The sources carry only the degree type; the remaining
// fields get explicit placeholders rather than empty strings.
func parseQualifications(cell Cell) []models.Qualification {
	degree := cell.String()
	if degree == "" {
		return nil
	}
	return []models.Qualification{{
		Type:           degree,
		Major:          models.NotAvailable,
		School:         models.NotAvailable,
		GraduationYear: models.NotAvailable,
	}}
}

// parseLicense is all-or-nothing: number, class, issue date and expiry must
// all be present, otherwise the record carries no licence at all.
func parseLicense(row []Cell) *models.DrivingLicense {
	number := cellAt(row, colLicenseNumber).String()
	class := cellAt(row, colLicenseClass).String()
	issueCell := cellAt(row, colLicenseIssueDate)
	expiryCell := cellAt(row, colLicenseExpiry)
	if number == "" || class == "" || issueCell.IsEmpty() || expiryCell.IsEmpty() {
		return nil
	}
	issue, _ := Normalize(issueCell)
	expiry, _ := Normalize(expiryCell)
	return &models.DrivingLicense{
		Number:    number,
		Class:     class,
		IssueDate: issue,
		IssuedBy:  cellAt(row, colLicenseIssuedBy).String(),
		Expiry:    expiry,
	}
}

// parseCertificate requires the certificate number and issue date; name and
// issuer stay optional.
func parseCertificate(row []Cell) *models.Certificate {
	number := cellAt(row, colCertificateNumber).String()
	issueCell := cellAt(row, colCertificateIssueDate)
	if number == "" || issueCell.IsEmpty() {
		return nil
	}
	issue, _ := Normalize(issueCell)
	return &models.Certificate{
		Name:      cellAt(row, colCertificateName).String(),
		Number:    number,
		IssueDate: issue,
		IssuedBy:  cellAt(row, colCertificateIssuedBy).String(),
	}
}

// parseContract splits the combined contract cell on its first newline into
// contract number and signing date. With a confident signing date the expiry
// is derived one year out; an unparseable date is kept verbatim with no
// derived expiry; a missing date leaves both placeholders.
func parseContract(cell Cell) *models.ContractInfo {
	raw := cell.String()
	if raw == "" {
		return nil
	}
	lines := strings.SplitN(raw, "\n", 2)
	number := strings.TrimSpace(lines[0])
	if number == "" {
		return nil
	}
	signing := ""
	if len(lines) > 1 {
		signing = strings.TrimSpace(lines[1])
	}
	if signing == "" {
		return &models.ContractInfo{
			Number:      number,
			SigningDate: models.NotAvailable,
			Expiry:      models.NotAvailable,
		}
	}
	if normalized, ok := Normalize(TextCell(signing)); ok {
		return &models.ContractInfo{
			Number:      number,
			SigningDate: normalized,
			Expiry:      AddOneYear(normalized),
		}
	}
	return &models.ContractInfo{
		Number:      number,
		SigningDate: signing,
		Expiry:      models.NotAvailable,
	}
}

// classifyInsurance maps the BHXH code column plus the notes text onto a
// status label. Only the mandatory code counts as active participation.
func classifyInsurance(code, notes string) (string, bool) {
	switch strings.ToUpper(code) {
	case insuranceCodeMandatory:
		lower := strings.ToLower(notes)
		switch {
		case strings.Contains(lower, noteRetired):
			return models.InsuranceMandatoryRetired, true
		case strings.Contains(lower, noteOtherUnit):
			return models.InsuranceMandatoryOther, true
		default:
			return models.InsuranceMandatory, true
		}
	case insuranceCodeVoluntary:
		return models.InsuranceVoluntary, false
	default:
		return models.InsuranceNone, false
	}
}
