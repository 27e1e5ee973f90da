package models

import "time"

const (
	GenderFemale         = "female"
	GenderMale           = "male"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

const (
	ChildStatusActive   = "active"
	ChildStatusInactive = "inactive"
)

// Child is the admin view of a registered child. ChildID is the public
// identifier (CH001, CH002, ...) derived from ID after insert.
type Child struct {
	ID        int64     `json:"-" db:"id"`
	ChildID   string    `json:"child_id" db:"child_id" example:"CH001"`
	Name      string    `json:"name" db:"name" example:"Asha"`
	DOB       string    `json:"dob" db:"dob" example:"2016-05-10"`
	Gender    string    `json:"gender" db:"gender" example:"female"`
	Mobile    string    `json:"mobile" db:"mobile" example:"9876543210"`
	Status    string    `json:"status" db:"status" example:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PublicChild is what the public lookup endpoint exposes.
type PublicChild struct {
	ChildID string `json:"child_id" example:"CH001"`
	Name    string `json:"name" example:"Asha"`
	DOB     string `json:"dob" example:"2016-05-10"`
	Gender  string `json:"gender" example:"female"`
	Mobile  string `json:"mobile" example:"9876543210"`
}

func (c *Child) Public() PublicChild {
	return PublicChild{
		ChildID: c.ChildID,
		Name:    c.Name,
		DOB:     c.DOB,
		Gender:  c.Gender,
		Mobile:  c.Mobile,
	}
}

func ValidGender(g string) bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

func ValidChildStatus(s string) bool {
	return s == ChildStatusActive || s == ChildStatusInactive
}
