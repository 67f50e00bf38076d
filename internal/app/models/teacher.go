package models

// Gender is the closed set of gender labels carried by the registry data.
type Gender string

const (
	GenderMale   Gender = "Nam"
	GenderFemale Gender = "Nữ"
	GenderOther  Gender = "Khác"
)

// Social-insurance participation labels. Classification is derived from the
// BHXH code column combined with the free-text notes column during ingestion.
const (
	InsuranceNone             = "Không tham gia"
	InsuranceMandatory        = "Bắt buộc"
	InsuranceMandatoryRetired = "Bắt buộc (Hưu trí)"
	InsuranceMandatoryOther   = "Bắt buộc (Đơn vị khác)"
	InsuranceVoluntary        = "Tự nguyện"
)

// NotAvailable marks a field the source data never supplies.
const NotAvailable = "N/A"

// Qualification is one academic or vocational qualification. The current
// sources only carry the qualification type; the remaining fields hold
// NotAvailable until a richer source can fill them.
type Qualification struct {
	Type           string `json:"type"`
	Major          string `json:"major"`
	School         string `json:"school"`
	GraduationYear string `json:"graduationYear"`
	TrainingForm   string `json:"trainingForm,omitempty"`
}

// DrivingLicense holds the teacher's driving licence. A record carries it
// only when number, class, issue date and expiry are all present.
type DrivingLicense struct {
	Number    string `json:"number"`
	Class     string `json:"class"`
	IssueDate string `json:"issueDate"`
	IssuedBy  string `json:"issuedBy,omitempty"`
	Expiry    string `json:"expiry"`
}

// Certificate is a professional certificate (instructor or pedagogy).
type Certificate struct {
	Name      string `json:"name,omitempty"`
	Number    string `json:"number"`
	IssueDate string `json:"issueDate"`
	IssuedBy  string `json:"issuedBy,omitempty"`
}

// ContractInfo holds the labour contract. The expiry is derived from the
// signing date when that date is in canonical form.
type ContractInfo struct {
	Number      string `json:"number"`
	SigningDate string `json:"signingDate"`
	Expiry      string `json:"expiry"`
}

// Vehicle is the training vehicle assigned to a teacher. The current sources
// never populate it; the schema keeps it for completeness.
type Vehicle struct {
	Plate string `json:"plate"`
	Owner string `json:"owner"`
	Code  string `json:"code,omitempty"`
}

// TeacherRecord is one driving-school teacher profile. ID is unique within a
// collection; it comes straight from the source's ordinal column and is never
// synthesized.
type TeacherRecord struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`

	NationalIDNumber    string `json:"nationalIdNumber,omitempty"`
	NationalIDIssueDate string `json:"nationalIdIssueDate,omitempty"`
	NationalIDIssuedBy  string `json:"nationalIdIssuedBy,omitempty"`

	Qualifications        []Qualification `json:"qualifications"`
	DrivingLicense        *DrivingLicense `json:"drivingLicense,omitempty"`
	InstructorCertificate *Certificate    `json:"instructorCertificate,omitempty"`
	PedagogyCertificate   *Certificate    `json:"pedagogyCertificate,omitempty"`

	HealthCertificate    bool `json:"healthCertificate"`
	CurriculumVitae      bool `json:"curriculumVitae"`
	BirthCertificateCopy bool `json:"birthCertificateCopy"`

	Contract    *ContractInfo `json:"contract,omitempty"`
	HasContract bool          `json:"hasContract"`

	InsuranceStatus string `json:"insuranceStatus"`
	HasInsurance    bool   `json:"hasInsurance"`

	Note    string   `json:"note,omitempty"`
	Vehicle *Vehicle `json:"vehicle,omitempty"`
}
