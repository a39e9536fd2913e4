package model

import (
	"minihotel/shared/model"
	"time"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID        = "customer_id"
	FieldFullName  = "full_name"
	FieldTelephone = "telephone"
	FieldEmail     = "email"
	FieldBirthday  = "birthday"
	FieldStatus    = "status"
	FieldPassword  = "password"
)

// Customer status values are stored as small integers for compatibility
// with pre-existing data. Only Active customers can place bookings.
const (
	StatusActive   = 1
	StatusInactive = 2
)

type Customer struct {
	ID        int       `db:"customer_id"`
	FullName  string    `db:"full_name"`
	Telephone string    `db:"telephone"`
	Email     string    `db:"email"`
	Birthday  time.Time `db:"birthday"`
	Status    int       `db:"status"`
	Password  string    `db:"password"`
	model.Metadata
}
