package domain

import "time"

// UpcomingEvent is an event announced on the website before it happens.
// Image holds the legacy single-image URL; Images the newer gallery. Both are
// kept so older front-end builds keep working.
type UpcomingEvent struct {
	EventID     string    `json:"id" dynamodbav:"event_id"`
	EventName   string    `json:"eventName" dynamodbav:"event_name"`
	Description string    `json:"description" dynamodbav:"description"`
	Schedule    string    `json:"schedule" dynamodbav:"schedule"`
	Highlights  []string  `json:"highlights" dynamodbav:"highlights"`
	Contact     string    `json:"contact" dynamodbav:"contact"`
	Image       string    `json:"image,omitempty" dynamodbav:"image"`
	Images      []string  `json:"images" dynamodbav:"images"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// AllImages returns the single image and the gallery combined, single first.
func (e *UpcomingEvent) AllImages() []string {
	var imgs []string
	if e.Image != "" {
		imgs = append(imgs, e.Image)
	}
	return append(imgs, e.Images...)
}

// FeaturedEvent is a highlighted event with social-sharing metadata.
type FeaturedEvent struct {
	EventID     string    `json:"id" dynamodbav:"event_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description" dynamodbav:"description"`
	Date        time.Time `json:"date" dynamodbav:"date"`
	Schedule    string    `json:"schedule" dynamodbav:"schedule"`
	Highlights  []string  `json:"highlights" dynamodbav:"highlights"`
	Contact     string    `json:"contact" dynamodbav:"contact"`
	CoverImage  string    `json:"coverImage" dynamodbav:"cover_image"`
	Images      []string  `json:"images" dynamodbav:"images"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

func (e *FeaturedEvent) AllImages() []string {
	var imgs []string
	if e.CoverImage != "" {
		imgs = append(imgs, e.CoverImage)
	}
	return append(imgs, e.Images...)
}

// ShareURL builds the public page URL used in share links.
func (e *FeaturedEvent) ShareURL(frontendURL string) string {
	return frontendURL + "/featured-events/" + e.EventID
}

func (e *FeaturedEvent) MetaTitle() string {
	return e.Name + " - Chinmaya Mission Vasai"
}

// MetaDescription truncates the description to fit an og:description tag.
func (e *FeaturedEvent) MetaDescription() string {
	if len(e.Description) > 160 {
		return e.Description[:157] + "..."
	}
	return e.Description
}

func (e *FeaturedEvent) Year() int {
	if !e.Date.IsZero() {
		return e.Date.Year()
	}
	return e.CreatedAt.Year()
}

// ArchivedEvent is a past event kept as a photo archive.
type ArchivedEvent struct {
	EventID     string    `json:"id" dynamodbav:"event_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	CoverImage  string    `json:"coverImage" dynamodbav:"cover_image"`
	Images      []string  `json:"images" dynamodbav:"images"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

func (e *ArchivedEvent) AllImages() []string {
	var imgs []string
	if e.CoverImage != "" {
		imgs = append(imgs, e.CoverImage)
	}
	return append(imgs, e.Images...)
}

func (e *ArchivedEvent) Year() int {
	return e.CreatedAt.Year()
}

type CreateUpcomingEventRequest struct {
	EventName    string   `json:"eventName" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Schedule     string   `json:"schedule" validate:"required"`
	Highlights   []string `json:"highlights"`
	Contact      string   `json:"contact" validate:"required"`
	ImageBase64  string   `json:"imageBase64"`
	ImagesBase64 []string `json:"imagesBase64"`
}

type UpdateUpcomingEventRequest struct {
	EventName   *string   `json:"eventName"`
	Description *string   `json:"description"`
	Schedule    *string   `json:"schedule"`
	Highlights  *[]string `json:"highlights"`
	Contact     *string   `json:"contact"`
	ImageBase64 *string   `json:"imageBase64"`
}

type CreateFeaturedEventRequest struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Date             string   `json:"date"` // expected format: YYYY-MM-DD; defaults to today
	Schedule         string   `json:"schedule" validate:"required"`
	Highlights       []string `json:"highlights"`
	Contact          string   `json:"contact" validate:"required"`
	CoverImageBase64 string   `json:"coverImageBase64"`
	ImagesBase64     []string `json:"imagesBase64"`
}

type CreateArchivedEventRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	CoverImageBase64 string   `json:"coverImageBase64"`
	ImagesBase64     []string `json:"imagesBase64"`
}

type UpdateArchivedEventRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	CoverImageBase64 *string   `json:"coverImageBase64"`
	ImagesBase64     *[]string `json:"imagesBase64"`
}
