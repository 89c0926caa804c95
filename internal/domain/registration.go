package domain

import (
	"strings"
	"time"
)

// Registration is a CGCC competition entry. RegistrationID and
// ParticipantName are derived at creation time; the email+mobile pair is
// unique to prevent duplicate entries.
type Registration struct {
	RegistrationID  string    `json:"registrationId" dynamodbav:"registration_id"`
	RegistrationVia string    `json:"registrationVia" dynamodbav:"registration_via"`
	OtherSpecify    string    `json:"otherSpecify,omitempty" dynamodbav:"other_specify"`
	FirstName       string    `json:"firstName" dynamodbav:"first_name"`
	MiddleName      string    `json:"middleName,omitempty" dynamodbav:"middle_name"`
	LastName        string    `json:"lastName" dynamodbav:"last_name"`
	ParticipantName string    `json:"participantName" dynamodbav:"participant_name"`
	SchoolName      string    `json:"schoolName" dynamodbav:"school_name"`
	Standard        string    `json:"standard" dynamodbav:"standard"`
	ParentName      string    `json:"parentName" dynamodbav:"parent_name"`
	MobileNo        string    `json:"mobileNo" dynamodbav:"mobile_no"`
	EmailAddress    string    `json:"emailAddress" dynamodbav:"email_address"`
	DateOfBirth     string    `json:"dateOfBirth" dynamodbav:"date_of_birth"` // expected format: YYYY-MM-DD
	CompetitionYear int       `json:"competitionYear" dynamodbav:"competition_year"`
	IPAddress       string    `json:"-" dynamodbav:"ip_address"`
	UserAgent       string    `json:"-" dynamodbav:"user_agent"`
	CreatedAt       time.Time `json:"registrationDate" dynamodbav:"created_at"`
}

// FullName joins first, middle, and last names, skipping an empty middle name.
func (r *Registration) FullName() string {
	parts := []string{r.FirstName}
	if strings.TrimSpace(r.MiddleName) != "" {
		parts = append(parts, r.MiddleName)
	}
	parts = append(parts, r.LastName)
	return strings.Join(parts, " ")
}

type CreateRegistrationRequest struct {
	RegistrationVia string `json:"registrationVia" validate:"required,oneof='Balavihar Centre' 'School' 'Other'"`
	OtherSpecify    string `json:"otherSpecify"`
	FirstName       string `json:"firstName" validate:"required,max=50"`
	MiddleName      string `json:"middleName" validate:"max=50"`
	LastName        string `json:"lastName" validate:"required,max=50"`
	SchoolName      string `json:"schoolName" validate:"required,max=100"`
	Standard        string `json:"standard" validate:"required,oneof=Kindergarten 'Jr. KG' 'Sr. KG' 1st 2nd 3rd 4th 5th 6th 7th 8th 9th 10th 11th 12th"`
	ParentName      string `json:"parentName" validate:"required,max=100"`
	MobileNo        string `json:"mobileNo" validate:"required,len=10,numeric"`
	EmailAddress    string `json:"emailAddress" validate:"required,email"`
	DateOfBirth     string `json:"dateOfBirth" validate:"required"`
}
