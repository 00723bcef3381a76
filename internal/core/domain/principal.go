package domain

import "time"

// Kind identifies which principal table a record lives in.
type Kind string

const (
	KindStaff   Kind = "staff"
	KindDoctor  Kind = "doctor"
	KindPatient Kind = "patient"
)

func (k Kind) String() string { return string(k) }

// Label is the human-readable form used in response messages.
func (k Kind) Label() string {
	switch k {
	case KindStaff:
		return "Staff"
	case KindDoctor:
		return "Doctor"
	case KindPatient:
		return "Patient"
	default:
		return string(k)
	}
}

// UniqueKey holds the columns that must not collide inside one principal table.
// Email is empty for staff.
type UniqueKey struct {
	Username string
	Email    string
}

// Identity is the non-secret view of a stored principal.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Principal is implemented by *Staff, *Doctor and *Patient.
type Principal interface {
	Kind() Kind
	UniqueKey() UniqueKey
	Identity() Identity
	SetPasswordHash(hash string)
	SetCreated(id int64, at time.Time)
}

// Account carries the fields shared by every principal.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Account) SetPasswordHash(hash string) { a.PasswordHash = hash }

func (a *Account) SetCreated(id int64, at time.Time) {
	a.ID = id
	a.CreatedAt = at
}

// Staff is a clinic operator row in v4_staffs.
type Staff struct {
	Account
}

func (*Staff) Kind() Kind { return KindStaff }

func (s *Staff) UniqueKey() UniqueKey { return UniqueKey{Username: s.Username} }

func (s *Staff) Identity() Identity { return Identity{ID: s.ID, Username: s.Username} }

// Doctor is a practitioner row in doctors.
type Doctor struct {
	Account
	Email        string  `json:"email"`
	OtherContact *string `json:"other_contact"`
	Image        *string `json:"image"`
	Experience   int     `json:"experience"`
	Status       int     `json:"status"`
}

func (*Doctor) Kind() Kind { return KindDoctor }

func (d *Doctor) UniqueKey() UniqueKey { return UniqueKey{Username: d.Username, Email: d.Email} }

func (d *Doctor) Identity() Identity {
	return Identity{ID: d.ID, Username: d.Username, Email: d.Email}
}

// Patient is a row in patients.
type Patient struct {
	Account
	Email        string  `json:"email"`
	OtherContact *string `json:"other_contact"`
	Image        *string `json:"image"`
	Status       int     `json:"status"`
}

func (*Patient) Kind() Kind { return KindPatient }

func (p *Patient) UniqueKey() UniqueKey { return UniqueKey{Username: p.Username, Email: p.Email} }

func (p *Patient) Identity() Identity {
	return Identity{ID: p.ID, Username: p.Username, Email: p.Email}
}
