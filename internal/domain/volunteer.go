package domain

import "time"

// Volunteer is a sign-up submitted through the website. Records are created
// once and only ever read back in bulk by the export pipeline.
type Volunteer struct {
	VolunteerID        string    `json:"id" dynamodbav:"volunteer_id"`
	FirstName          string    `json:"firstName" dynamodbav:"first_name"`
	LastName           string    `json:"lastName" dynamodbav:"last_name"`
	Email              string    `json:"email" dynamodbav:"email"`
	PhoneNo            string    `json:"phoneNo" dynamodbav:"phone_no"`
	DOB                string    `json:"dob" dynamodbav:"dob"` // expected format: YYYY-MM-DD
	AdditionalComments string    `json:"additionalComments" dynamodbav:"additional_comments"`
	CreatedAt          time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type CreateVolunteerRequest struct {
	FirstName          string `json:"firstName" validate:"required"`
	LastName           string `json:"lastName" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	PhoneNo            string `json:"phoneNo" validate:"required"`
	DOB                string `json:"dob" validate:"required"`
	AdditionalComments string `json:"additionalComments"`
}
