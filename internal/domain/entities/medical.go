package entities

// MedicalRecord holds a patient's lab values and treatment history
type MedicalRecord struct {
	MedicalRecordID  int64   `json:"medicalRecordId"`
	CustomerID       int64   `json:"customerId"`
	DoctorID         int64   `json:"doctorId"`
	CD4Count         float64 `json:"cd4Count"`
	ViralLoad        float64 `json:"viralLoad"`
	TreatmentHistory string  `json:"treatmentHistory"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	CustomerName     string  `json:"customerName,omitempty"`
}

// MedicalRecordRequest is the body of medical record create and update calls
type MedicalRecordRequest struct {
	CustomerID       int64   `json:"customerId"`
	DoctorID         int64   `json:"doctorId"`
	CD4Count         float64 `json:"cd4Count"`
	ViralLoad        float64 `json:"viralLoad"`
	TreatmentHistory string  `json:"treatmentHistory"`
}

// TreatmentPlanStatus represents the lifecycle of a treatment plan
type TreatmentPlanStatus string

const (
	TreatmentPlanStatusActive       TreatmentPlanStatus = "ACTIVE"
	TreatmentPlanStatusPaused       TreatmentPlanStatus = "PAUSED"
	TreatmentPlanStatusCompleted    TreatmentPlanStatus = "COMPLETED"
	TreatmentPlanStatusDiscontinued TreatmentPlanStatus = "DISCONTINUED"
)

// IsValid reports whether s is a known plan status
func (s TreatmentPlanStatus) IsValid() bool {
	switch s {
	case TreatmentPlanStatusActive, TreatmentPlanStatusPaused,
		TreatmentPlanStatusCompleted, TreatmentPlanStatusDiscontinued:
		return true
	}
	return false
}

// ARVRegimen describes a selectable antiretroviral template
type ARVRegimen struct {
	Code            string `json:"code"`
	Description     string `json:"description"`
	ApplicableGroup string `json:"applicableGroup"`
}

// ARVRegimenTemplates is the fixed set offered when creating a plan
var ARVRegimenTemplates = []ARVRegimen{
	{Code: "TDF/3TC/DTG", Description: "Tenofovir + Lamivudine + Dolutegravir", ApplicableGroup: "Người lớn"},
	{Code: "TDF/FTC/EFV", Description: "Tenofovir + Emtricitabine + Efavirenz", ApplicableGroup: "Người lớn"},
	{Code: "TDF/3TC/EFV", Description: "Tenofovir + Lamivudine + Efavirenz", ApplicableGroup: "Người lớn"},
	{Code: "TAF/FTC/BIC", Description: "Tenofovir alafenamide + Emtricitabine + Bictegravir", ApplicableGroup: "Người lớn"},
	{Code: "ABC/3TC/DTG", Description: "Abacavir + Lamivudine + Dolutegravir", ApplicableGroup: "Trẻ em"},
	{Code: "AZT/3TC/NVP", Description: "Zidovudine + Lamivudine + Nevirapine", ApplicableGroup: "Phụ nữ mang thai"},
}

// IsKnownARVRegimen reports whether code names a template
func IsKnownARVRegimen(code string) bool {
	for _, r := range ARVRegimenTemplates {
		if r.Code == code {
			return true
		}
	}
	return false
}

// TreatmentPlan links an ARV regimen to a medical record
type TreatmentPlan struct {
	PlanID          int64               `json:"planId"`
	MedicalRecordID int64               `json:"medicalRecordId"`
	DoctorID        int64               `json:"doctorId"`
	ARVRegimen      string              `json:"arvRegimen"`
	ApplicableGroup string              `json:"applicableGroup"`
	StartDate       string              `json:"startDate"`
	Status          TreatmentPlanStatus `json:"status"`
	Note            string              `json:"note"`
}

// TreatmentPlanRequest is the body of plan create and update calls
type TreatmentPlanRequest struct {
	MedicalRecordID int64               `json:"medicalRecordId"`
	DoctorID        int64               `json:"doctorId"`
	ARVRegimen      string              `json:"arvRegimen"`
	ApplicableGroup string              `json:"applicableGroup"`
	StartDate       string              `json:"startDate"`
	Status          TreatmentPlanStatus `json:"status,omitempty"`
	Note            string              `json:"note"`
}

// UpdateTreatmentPlanStatusRequest is the body of PUT /treatment-plan/{id}/status
type UpdateTreatmentPlanStatusRequest struct {
	Status TreatmentPlanStatus `json:"status"`
}
