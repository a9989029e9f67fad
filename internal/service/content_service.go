package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mispadamapur/school-api/internal/cache"
	"github.com/mispadamapur/school-api/internal/models"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/utils"
)

// Cache serves the rendered public listings. *cache.ContentCache is the
// production implementation.
type Cache interface {
	Get(ctx context.Context, kind string) ([]byte, bool)
	Set(ctx context.Context, kind string, payload []byte)
	Invalidate(ctx context.Context, kind string)
}

// ContentService manages the CMS content behind the marketing site:
// events, news, and the gallery. Public reads go through the Redis
// content cache; every admin write invalidates the affected kind.
type ContentService struct {
	eventRepo   *repository.EventRepository
	newsRepo    *repository.NewsRepository
	galleryRepo *repository.GalleryRepository
	cache       Cache
}

func NewContentService(
	eventRepo *repository.EventRepository,
	newsRepo *repository.NewsRepository,
	galleryRepo *repository.GalleryRepository,
	contentCache Cache,
) *ContentService {
	return &ContentService{
		eventRepo:   eventRepo,
		newsRepo:    newsRepo,
		galleryRepo: galleryRepo,
		cache:       contentCache,
	}
}

// publicList serves a cached JSON listing, falling back to the loader on
// a cache miss and repopulating the cache from the result.
func (s *ContentService) publicList(ctx context.Context, kind string, load func() (interface{}, error)) ([]byte, error) {
	if payload, ok := s.cache.Get(ctx, kind); ok {
		return payload, nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, kind, payload)
	return payload, nil
}

// PublicEvents returns the events listing as rendered JSON.
func (s *ContentService) PublicEvents(ctx context.Context) ([]byte, error) {
	return s.publicList(ctx, cache.KindEvents, func() (interface{}, error) {
		return s.eventRepo.List()
	})
}

// PublicNews returns published news articles as rendered JSON.
func (s *ContentService) PublicNews(ctx context.Context) ([]byte, error) {
	return s.publicList(ctx, cache.KindNews, func() (interface{}, error) {
		return s.newsRepo.List(true)
	})
}

// PublicGallery returns the gallery listing as rendered JSON.
func (s *ContentService) PublicGallery(ctx context.Context) ([]byte, error) {
	return s.publicList(ctx, cache.KindGallery, func() (interface{}, error) {
		return s.galleryRepo.List()
	})
}

// --- Events ---

// EventRequest is the admin payload for creating or updating an event.
type EventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	EventDate   string  `json:"eventDate" binding:"required"`
	EventTime   *string `json:"eventTime"`
	Location    *string `json:"location"`
	Category    string  `json:"category" binding:"required"`
	IsUpcoming  *bool   `json:"isUpcoming"`
	ImageURL    *string `json:"imageUrl"`
}

func (s *ContentService) ListEvents() ([]*models.Event, error) {
	return s.eventRepo.List()
}

func (s *ContentService) CreateEvent(ctx context.Context, req *EventRequest) (*models.Event, error) {
	upcoming := true
	if req.IsUpcoming != nil {
		upcoming = *req.IsUpcoming
	}
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		Category:    req.Category,
		IsUpcoming:  upcoming,
		ImageURL:    req.ImageURL,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KindEvents)
	log.Info().Int64("id", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, id int64, req *EventRequest) (*models.Event, error) {
	upcoming := true
	if req.IsUpcoming != nil {
		upcoming = *req.IsUpcoming
	}
	event := &models.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		Category:    req.Category,
		IsUpcoming:  upcoming,
		ImageURL:    req.ImageURL,
	}
	if err := s.eventRepo.Update(event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KindEvents)
	return event, nil
}

func (s *ContentService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, cache.KindEvents)
	return nil
}

// --- News ---

// NewsRequest is the admin payload for creating or updating an article.
type NewsRequest struct {
	Title       string  `json:"title" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Excerpt     *string `json:"excerpt"`
	Author      string  `json:"author"`
	Category    string  `json:"category" binding:"required"`
	IsPublished *bool   `json:"isPublished"`
	ImageURL    *string `json:"imageUrl"`
}

func (s *ContentService) ListNews() ([]*models.News, error) {
	return s.newsRepo.List(false)
}

func newsFromRequest(id int64, req *NewsRequest) *models.News {
	author := req.Author
	if author == "" {
		author = "Admin"
	}
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}
	return &models.News{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      author,
		Category:    req.Category,
		IsPublished: published,
		ImageURL:    req.ImageURL,
	}
}

func (s *ContentService) CreateNews(ctx context.Context, req *NewsRequest) (*models.News, error) {
	article := newsFromRequest(0, req)
	if err := s.newsRepo.Create(article); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KindNews)
	log.Info().Int64("id", article.ID).Str("title", article.Title).Msg("News article created")
	return article, nil
}

func (s *ContentService) UpdateNews(ctx context.Context, id int64, req *NewsRequest) (*models.News, error) {
	article := newsFromRequest(id, req)
	if err := s.newsRepo.Update(article); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KindNews)
	return article, nil
}

func (s *ContentService) DeleteNews(ctx context.Context, id int64) error {
	if err := s.newsRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, cache.KindNews)
	return nil
}

// --- Gallery ---

// GalleryRequest is the admin payload for creating or updating a gallery item.
type GalleryRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

func (s *ContentService) ListGallery() ([]*models.GalleryItem, error) {
	return s.galleryRepo.List()
}

func (s *ContentService) CreateGalleryItem(ctx context.Context, req *GalleryRequest) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
	if err := s.galleryRepo.Create(item); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KindGallery)
	return item, nil
}

func (s *ContentService) UpdateGalleryItem(ctx context.Context, id int64, req *GalleryRequest) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
	if err := s.galleryRepo.Update(item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.KindGallery)
	return item, nil
}

func (s *ContentService) DeleteGalleryItem(ctx context.Context, id int64) error {
	if err := s.galleryRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return err
	}
	s.cache.Invalidate(ctx, cache.KindGallery)
	return nil
}
