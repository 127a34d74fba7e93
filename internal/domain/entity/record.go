package entity

import "github.com/google/uuid"

// Kind tags the collection a record belongs to.
type Kind string

const (
	KindEmployee     Kind = "employees"
	KindDoctor       Kind = "doctors"
	KindConsultation Kind = "consultations"
	KindUser         Kind = "users"
)

// Kinds lists every record collection in a stable order.
var Kinds = []Kind{KindEmployee, KindDoctor, KindConsultation, KindUser}

func (k Kind) Valid() bool {
	switch k {
	case KindEmployee, KindDoctor, KindConsultation, KindUser:
		return true
	}
	return false
}

// Record is implemented by the four record variants.
type Record interface {
	RecordKind() Kind
	RecordID() uuid.UUID
}

var (
	_ Record = Employee{}
	_ Record = Doctor{}
	_ Record = Consultation{}
	_ Record = User{}
)
