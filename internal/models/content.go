package models

import "time"

// Event is a school event shown on the Events page and managed from the
// admin panel.
type Event struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	EventDate   string    `db:"event_date" json:"eventDate"`
	EventTime   *string   `db:"event_time" json:"eventTime,omitempty"`
	Location    *string   `db:"location" json:"location,omitempty"`
	Category    string    `db:"category" json:"category"`
	IsUpcoming  bool      `db:"is_upcoming" json:"isUpcoming"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// News is a news article or announcement. Unpublished articles are only
// visible to admins.
type News struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Excerpt     *string   `db:"excerpt" json:"excerpt,omitempty"`
	Author      string    `db:"author" json:"author"`
	Category    string    `db:"category" json:"category"`
	IsPublished bool      `db:"is_published" json:"isPublished"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// GalleryItem is a photo in the school gallery. Only the URL is stored;
// image assets live outside this service.
type GalleryItem struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Category    string    `db:"category" json:"category"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
