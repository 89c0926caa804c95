package domain

import "time"

// Donation statuses.
const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
	DonationFailed    = "failed"
)

// Donation is a submitted donation record. The PAN number is hashed before it
// is persisted and never leaves the service again.
type Donation struct {
	DonationID        string    `json:"id" dynamodbav:"donation_id"`
	FullName          string    `json:"fullName" dynamodbav:"full_name"`
	Email             string    `json:"email" dynamodbav:"email"`
	PhoneNumber       string    `json:"phoneNumber" dynamodbav:"phone_number"`
	PANHash           string    `json:"-" dynamodbav:"pan_hash"`
	State             string    `json:"state" dynamodbav:"state"`
	City              string    `json:"city" dynamodbav:"city"`
	PinCode           string    `json:"pinCode" dynamodbav:"pin_code"`
	Address           string    `json:"address" dynamodbav:"address"`
	Seek80G           string    `json:"seek80G" dynamodbav:"seek_80g"` // "yes" | "no"
	Amount            float64   `json:"amount" dynamodbav:"amount"`
	TransactionID     string    `json:"transactionId" dynamodbav:"transaction_id"`
	ReasonForDonation string    `json:"reasonForDonation" dynamodbav:"reason_for_donation"`
	Purpose           string    `json:"purpose,omitempty" dynamodbav:"purpose"`
	DonationRef       string    `json:"donationRef" dynamodbav:"donation_ref"`
	Status            string    `json:"status" dynamodbav:"status"`
	IPAddress         string    `json:"-" dynamodbav:"ip_address"`
	UserAgent         string    `json:"-" dynamodbav:"user_agent"`
	CreatedAt         time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateDonationRequest struct {
	FullName          string  `json:"fullName" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	PhoneNumber       string  `json:"phoneNumber" validate:"required"`
	PANCardNumber     string  `json:"panCardNumber"`
	State             string  `json:"state" validate:"required"`
	City              string  `json:"city" validate:"required"`
	PinCode           string  `json:"pinCode" validate:"required"`
	Address           string  `json:"address" validate:"required"`
	Seek80G           string  `json:"seek80G" validate:"required,oneof=yes no"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	TransactionID     string  `json:"transactionId" validate:"required"`
	ReasonForDonation string  `json:"reasonForDonation" validate:"required,oneof='Gurudakshina' 'General Donation' 'Event Sponsorship' 'Building Fund' 'Educational Support' 'Community Service' 'Special Occasion' 'Other'"`
	Purpose           string  `json:"purpose"`
}
