package entities

// Gender as stored by the backend
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid reports whether g is one of the known values
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Staff is a clinic staff member. IsDeleted is the soft-delete flag; a
// staff member is "active" when it is false.
type Staff struct {
	StaffID   int64  `json:"staffId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    Gender `json:"gender"`
	IsDeleted bool   `json:"isDeleted"`
}

// StaffRequest carries the fields the staff endpoints accept. Password and
// gender are omitted when empty so an update leaves them unchanged.
type StaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Gender   Gender `json:"gender,omitempty"`
	Password string `json:"password,omitempty"`
}

// StaffStats is derived client-side from a fetched staff list
type StaffStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Male     int `json:"male"`
	Female   int `json:"female"`
	Other    int `json:"other"`
}

// ComputeStaffStats counts the list by active flag and gender. Unknown
// genders count as Other.
func ComputeStaffStats(list []Staff) StaffStats {
	stats := StaffStats{Total: len(list)}
	for _, s := range list {
		if s.IsDeleted {
			stats.Inactive++
		} else {
			stats.Active++
		}
		switch s.Gender {
		case GenderMale:
			stats.Male++
		case GenderFemale:
			stats.Female++
		default:
			stats.Other++
		}
	}
	return stats
}
