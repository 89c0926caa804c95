package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/config"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/Shreyas75/cmv-backend/internal/infrastructure/jwt"
	s3infra "github.com/Shreyas75/cmv-backend/internal/infrastructure/s3"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/smtp"
	"github.com/Shreyas75/cmv-backend/internal/infrastructure/sns"
	"github.com/Shreyas75/cmv-backend/internal/jobs"
	transporthttp "github.com/Shreyas75/cmv-backend/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — admin routes fall open only in development).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 media store.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	volunteerRepo := dynamo.NewVolunteerRepo(dynamoClient, cfg.DynamoTables.Volunteers)
	donationRepo := dynamo.NewDonationRepo(dynamoClient, cfg.DynamoTables.Donations)

	deps := &transporthttp.Deps{
		VolunteerRepo:     volunteerRepo,
		DonationRepo:      donationRepo,
		CarouselRepo:      dynamo.NewCarouselRepo(dynamoClient, cfg.DynamoTables.CarouselItems),
		UpcomingEventRepo: dynamo.NewUpcomingEventRepo(dynamoClient, cfg.DynamoTables.UpcomingEvents),
		FeaturedEventRepo: dynamo.NewFeaturedEventRepo(dynamoClient, cfg.DynamoTables.FeaturedEvents),
		ArchivedEventRepo: dynamo.NewArchivedEventRepo(dynamoClient, cfg.DynamoTables.ArchivedEvents),
		RegistrationRepo:  dynamo.NewRegistrationRepo(dynamoClient, cfg.DynamoTables.Registrations),
		VerificationRepo:  dynamo.NewVerificationRepo(dynamoClient, cfg.DynamoTables.Verifications),
		S3Store:           s3Store,
		Mailer:            mailer,
		SMSSender:         smsSender,
		JWTProvider:       jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	// Monthly volunteer export, delivered to the administrator by email.
	exportSvc := export.NewService(volunteerRepo, donationRepo)
	exportJob := jobs.NewExportJob(exportSvc, mailer, cfg.ExportDir, cfg.AdminEmail)
	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.ExportCron, exportJob); err != nil {
		log.Fatalf("invalid export schedule %q: %v", cfg.ExportCron, err)
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	<-scheduler.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
