package domain

import "time"

// CarouselItem is a home-page carousel slide.
type CarouselItem struct {
	ItemID      string    `json:"id" dynamodbav:"item_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	Image       string    `json:"image" dynamodbav:"image"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
}

type CreateCarouselItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required,url"`
}
