// Package models defines the student record, the editor draft and the wire
// payloads exchanged with the students API.
package models

import (
	"errors"
	"fmt"
)

// Field names as they appear on the wire and in the editor.
const (
	FieldName          = "name"
	FieldRollNumber    = "rollNumber"
	FieldContactNumber = "contactNumber"
	FieldBloodGroup    = "bloodGroup"
	FieldEmail         = "email"
	FieldAddress       = "address"
)

var ErrUnknownField = errors.New("unknown field")

// FieldSpec describes one editable field of a student record.
type FieldSpec struct {
	Name  string
	Label string
}

// Fields lists the editable fields in display order.
var Fields = []FieldSpec{
	{Name: FieldName, Label: "Name"},
	{Name: FieldRollNumber, Label: "Roll Number"},
	{Name: FieldContactNumber, Label: "Contact Number"},
	{Name: FieldBloodGroup, Label: "Blood Group"},
	{Name: FieldEmail, Label: "Email"},
	{Name: FieldAddress, Label: "Address"},
}

// Student is one directory record. ID is assigned by the server and is empty
// for records that have not been created yet.
type Student struct {
	ID            string `json:"_id,omitempty"`
	Name          string `json:"name"`
	RollNumber    string `json:"rollNumber"`
	ContactNumber string `json:"contactNumber"`
	BloodGroup    string `json:"bloodGroup"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// Draft is an unsaved copy of a record's fields held by the editor.
type Draft struct {
	Name          string
	RollNumber    string
	ContactNumber string
	BloodGroup    string
	Email         string
	Address       string
}

// DraftFrom seeds a draft with the field values of s.
func DraftFrom(s Student) Draft {
	return Draft{
		Name:          s.Name,
		RollNumber:    s.RollNumber,
		ContactNumber: s.ContactNumber,
		BloodGroup:    s.BloodGroup,
		Email:         s.Email,
		Address:       s.Address,
	}
}

func (d *Draft) field(name string) (*string, error) {
	switch name {
	case FieldName:
		return &d.Name, nil
	case FieldRollNumber:
		return &d.RollNumber, nil
	case FieldContactNumber:
		return &d.ContactNumber, nil
	case FieldBloodGroup:
		return &d.BloodGroup, nil
	case FieldEmail:
		return &d.Email, nil
	case FieldAddress:
		return &d.Address, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Set writes value into the named field verbatim.
func (d *Draft) Set(name, value string) error {
	p, err := d.field(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Get returns the value of the named field.
func (d Draft) Get(name string) (string, error) {
	p, err := d.field(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Record converts the draft into a record without an identifier.
func (d Draft) Record() Student {
	return Student{
		Name:          d.Name,
		RollNumber:    d.RollNumber,
		ContactNumber: d.ContactNumber,
		BloodGroup:    d.BloodGroup,
		Email:         d.Email,
		Address:       d.Address,
	}
}

// UpdateRequest is the PUT body: the full field set plus the admin password.
type UpdateRequest struct {
	Name          string `json:"name"`
	RollNumber    string `json:"rollNumber"`
	ContactNumber string `json:"contactNumber"`
	BloodGroup    string `json:"bloodGroup"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	AdminPassword string `json:"adminPassword"`
}

// NewUpdateRequest builds a PUT body from s and password. The identifier is
// carried in the path, not the body.
func NewUpdateRequest(s Student, password string) UpdateRequest {
	return UpdateRequest{
		Name:          s.Name,
		RollNumber:    s.RollNumber,
		ContactNumber: s.ContactNumber,
		BloodGroup:    s.BloodGroup,
		Email:         s.Email,
		Address:       s.Address,
		AdminPassword: password,
	}
}

// DeleteRequest is the DELETE body.
type DeleteRequest struct {
	AdminPassword string `json:"adminPassword"`
}
