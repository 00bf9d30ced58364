package domain

import "time"

type Patient struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth    Date      `gorm:"type:date;not null" json:"date_of_birth"`
	ContactNumber  string    `gorm:"type:varchar(20);not null" json:"contact_number"`
	Email          string    `gorm:"type:varchar(254);not null" json:"email"`
	Address        string    `gorm:"type:varchar(255);not null" json:"address"`
	MedicalHistory string    `gorm:"type:text;not null" json:"medical_history"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (p *Patient) GetID() int   { return p.ID }
func (p *Patient) SetID(id int) { p.ID = id }
func (p *Patient) Kind() string { return "patient" }

// PatientPayload is the writable part of a patient as accepted on the wire.
type PatientPayload struct {
	FirstName      string `json:"first_name" valid:"required~This field may not be blank.,runelength(1|100)~Ensure this field has no more than 100 characters."`
	LastName       string `json:"last_name" valid:"required~This field may not be blank.,runelength(1|100)~Ensure this field has no more than 100 characters."`
	DateOfBirth    Date   `json:"date_of_birth" valid:"-"`
	ContactNumber  string `json:"contact_number" valid:"required~This field may not be blank.,runelength(1|20)~Ensure this field has no more than 20 characters."`
	Email          string `json:"email" valid:"required~This field may not be blank.,email~Enter a valid email address.,runelength(1|254)~Ensure this field has no more than 254 characters."`
	Address        string `json:"address" valid:"required~This field may not be blank.,runelength(1|255)~Ensure this field has no more than 255 characters."`
	MedicalHistory string `json:"medical_history" valid:"required~This field may not be blank."`
}

func (pp PatientPayload) ToRecord() Patient {
	return Patient{
		FirstName:      pp.FirstName,
		LastName:       pp.LastName,
		DateOfBirth:    pp.DateOfBirth,
		ContactNumber:  pp.ContactNumber,
		Email:          pp.Email,
		Address:        pp.Address,
		MedicalHistory: pp.MedicalHistory,
	}
}
