package http

import (
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/Shreyas75/cmv-backend/internal/infrastructure/jwt"
	s3infra "github.com/Shreyas75/cmv-backend/internal/infrastructure/s3"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/smtp"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	VolunteerRepo     *dynamo.VolunteerRepo
	DonationRepo      *dynamo.DonationRepo
	CarouselRepo      *dynamo.CarouselRepo
	UpcomingEventRepo *dynamo.UpcomingEventRepo
	FeaturedEventRepo *dynamo.FeaturedEventRepo
	ArchivedEventRepo *dynamo.ArchivedEventRepo
	RegistrationRepo  *dynamo.RegistrationRepo
	VerificationRepo  *dynamo.VerificationRepo
	S3Store           *s3infra.Store
	Mailer            smtp.Mailer
	SMSSender         sns.SMSSender
	JWTProvider       *jwtinfra.Provider
}
