package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	S3BucketName    string
	S3PublicBaseURL string // base URL for uploaded images; derived from bucket/region when empty

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPFromName string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	AdminEmail        string // recipient of the monthly export
	AdminUsername     string
	AdminPasswordHash string // bcrypt hash of the admin password
	JWTSecret         string
	JWTExpiryHours    int

	ExportDir  string
	ExportCron string

	FrontendURL    string
	AllowedOrigins []string
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Volunteers     string
	Donations      string
	CarouselItems  string
	UpcomingEvents string
	FeaturedEvents string
	ArchivedEvents string
	Registrations  string
	Verifications  string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "5000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "ap-south-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Volunteers:     getEnv("DYNAMO_TABLE_VOLUNTEERS", "volunteers"),
			Donations:      getEnv("DYNAMO_TABLE_DONATIONS", "donations"),
			CarouselItems:  getEnv("DYNAMO_TABLE_CAROUSEL_ITEMS", "carousel_items"),
			UpcomingEvents: getEnv("DYNAMO_TABLE_UPCOMING_EVENTS", "upcoming_events"),
			FeaturedEvents: getEnv("DYNAMO_TABLE_FEATURED_EVENTS", "featured_events"),
			ArchivedEvents: getEnv("DYNAMO_TABLE_ARCHIVED_EVENTS", "archived_events"),
			Registrations:  getEnv("DYNAMO_TABLE_REGISTRATIONS", "cgcc_registrations"),
			Verifications:  getEnv("DYNAMO_TABLE_VERIFICATIONS", "verifications"),
		},

		S3BucketName:    getEnv("S3_BUCKET_NAME", "cmv-media"),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "info@chinmayamissionvasai.com"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Chinmaya Mission Vasai"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "ap-south-1"),

		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminUsername:     getEnv("ADMIN_USERNAME", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTExpiryHours:    getEnvInt("JWT_EXPIRY_HOURS", 12),

		ExportDir:  getEnv("EXPORT_DIR", "./exports"),
		ExportCron: getEnv("EXPORT_CRON", "47 0 25 * *"),

		FrontendURL:    getEnv("FRONTEND_URL", "https://chinmayamissionvasai.com"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
