package domain

import "time"

type Doctor struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName     string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Qualification string    `gorm:"type:varchar(100);not null" json:"qualification"`
	ContactNumber string    `gorm:"type:varchar(20);not null" json:"contact_number"`
	Email         string    `gorm:"type:varchar(254);not null" json:"email"`
	Address       string    `gorm:"type:varchar(255);not null" json:"address"`
	Biography     string    `gorm:"type:text;not null" json:"biography"`
	IsOnVacation  bool      `gorm:"not null;default:false" json:"is_on_vacation"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (d *Doctor) GetID() int   { return d.ID }
func (d *Doctor) SetID(id int) { d.ID = id }
func (d *Doctor) Kind() string { return "doctor" }

// DoctorPayload is the writable part of a doctor as accepted on the wire.
// is_on_vacation may be omitted and defaults to false.
type DoctorPayload struct {
	FirstName     string `json:"first_name" valid:"required~This field may not be blank.,runelength(1|100)~Ensure this field has no more than 100 characters."`
	LastName      string `json:"last_name" valid:"required~This field may not be blank.,runelength(1|100)~Ensure this field has no more than 100 characters."`
	Qualification string `json:"qualification" valid:"required~This field may not be blank.,runelength(1|100)~Ensure this field has no more than 100 characters."`
	ContactNumber string `json:"contact_number" valid:"required~This field may not be blank.,runelength(1|20)~Ensure this field has no more than 20 characters."`
	Email         string `json:"email" valid:"required~This field may not be blank.,email~Enter a valid email address.,runelength(1|254)~Ensure this field has no more than 254 characters."`
	Address       string `json:"address" valid:"required~This field may not be blank.,runelength(1|255)~Ensure this field has no more than 255 characters."`
	Biography     string `json:"biography" valid:"required~This field may not be blank."`
	IsOnVacation  bool   `json:"is_on_vacation"`
}

func (dp DoctorPayload) ToRecord() Doctor {
	return Doctor{
		FirstName:     dp.FirstName,
		LastName:      dp.LastName,
		Qualification: dp.Qualification,
		ContactNumber: dp.ContactNumber,
		Email:         dp.Email,
		Address:       dp.Address,
		Biography:     dp.Biography,
		IsOnVacation:  dp.IsOnVacation,
	}
}
