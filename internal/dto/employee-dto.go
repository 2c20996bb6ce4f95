package dto

import "io"

// EmployeeRecord - сотрудник в том виде, в котором его отдает список бэкенда.
type EmployeeRecord struct {
	ID          OpaqueID `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	JoiningDate string   `json:"joiningDate"`
	DocumentURL string   `json:"documentUrl"`
	CreatedAt   string   `json:"createdAt"`
}

// EmployeeCreationInput is the employee form. The zero value is the form's
// default state and the struct itself is the multipart payload.
type EmployeeCreationInput struct {
	FirstName   string `json:"firstName"   form:"firstName"   validate:"required"       label:"First Name"`
	LastName    string `json:"lastName"    form:"lastName"    validate:"required"       label:"Last Name"`
	Email       string `json:"email"       form:"email"       validate:"required,email" label:"Email"`
	Phone       string `json:"phone"       form:"phone"       validate:"required"       label:"Phone"`
	JoiningDate string `json:"joiningDate" form:"joiningDate" validate:"required"       label:"Joining Date"`
}

// PlaceholderFileName is sent as pdfFile when no document was chosen.
const PlaceholderFileName = "empty-file.txt"

// Attachment - файл, прикрепленный к форме сотрудника.
type Attachment struct {
	FileName string
	Body     io.Reader
}
