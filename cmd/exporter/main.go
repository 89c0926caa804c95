// Command exporter runs one volunteer export cycle and exits. It covers
// manual re-runs when a scheduled cycle failed or an off-schedule export is
// needed.
package main

import (
	"log"

	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/config"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/dynamo"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/smtp"
	"github.com/Shreyas75/cmv-backend/internal/jobs"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	dynamoClient := dynamo.NewClient(cfg)
	volunteerRepo := dynamo.NewVolunteerRepo(dynamoClient, cfg.DynamoTables.Volunteers)
	donationRepo := dynamo.NewDonationRepo(dynamoClient, cfg.DynamoTables.Donations)
	mailer := smtp.NewMailer(cfg)

	exportSvc := export.NewService(volunteerRepo, donationRepo)
	jobs.NewExportJob(exportSvc, mailer, cfg.ExportDir, cfg.AdminEmail).Run()
}
