package handler

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	defaultStatsDays = 30
	maxStatsDays     = 365
	topPathsLimit    = 10
)

// TrackRequest defines the structure for page view tracking events
type TrackRequest struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Referrer    string `json:"referrer"`
	ContentType string `json:"content_type"`
	ContentID   *uint  `json:"content_id"`
}

// DayCount represents page views for one day
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// PathCount represents page views for one path
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// TypeCount represents page views for one content type
type TypeCount struct {
	ContentType string `json:"contentType"`
	Count       int64  `json:"count"`
}

// StatsResponse is the analytics dashboard payload. Counts of content
// entities are all-time; the page view numbers are scoped to the
// requested window except totalPageViews.
type StatsResponse struct {
	Days                  int         `json:"days"`
	TotalPageViews        int64       `json:"totalPageViews"`
	PageViewsInWindow     int64       `json:"pageViewsInWindow"`
	PageViewsByDay        []DayCount  `json:"pageViewsByDay"`
	TopPaths              []PathCount `json:"topPaths"`
	ViewsByContentType    []TypeCount `json:"viewsByContentType"`
	PublishedBlogPosts    int64       `json:"publishedBlogPosts"`
	ActivePublications    int64       `json:"activePublications"`
	ActiveMasterclasses   int64       `json:"activeMasterclasses"`
	ActiveServices        int64       `json:"activeServices"`
	ActiveGalleryItems    int64       `json:"activeGalleryItems"`
	NewsletterSubscribers int64       `json:"newsletterSubscribers"`
	UnreadContactMessages int64       `json:"unreadContactMessages"`
	TotalRegistrations    int64       `json:"totalRegistrations"`
}

// TrackPageView ingests one page view event
func TrackPageView(c echo.Context) error {
	log := logger.FromContext(c)

	var req TrackRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Path == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Path is required"})
	}

	view := model.PageView{
		Path:        req.Path,
		Title:       req.Title,
		Referrer:    req.Referrer,
		UserAgent:   c.Request().UserAgent(),
		IP:          c.RealIP(),
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
	}

	result := database.GetDB().Create(&view)
	if result.Error != nil {
		log.Error("Failed to store page view", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to track page view"})
	}

	prometheus.PageViewsTrackedCounter.Inc()
	return c.JSON(http.StatusCreated, echo.Map{"message": "Tracked"})
}

// clampStatsDays normalizes the lookback window: anything that is not
// a positive number falls back to the default, anything above the
// maximum clamps to it.
func clampStatsDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return defaultStatsDays
	}
	if days > maxStatsDays {
		return maxStatsDays
	}
	return days
}

// GetAnalyticsStats computes the dashboard aggregates. Every
// sub-query runs independently and concurrently; a failing query is
// logged and its result defaulted (zero or empty) instead of failing
// the response.
func GetAnalyticsStats(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackDBOperation("analytics_stats")(time.Now())

	days := clampStatsDays(c.QueryParam("days"))
	since := time.Now().AddDate(0, 0, -days)
	db := database.GetDB()

	resp := StatsResponse{
		Days:               days,
		PageViewsByDay:     []DayCount{},
		TopPaths:           []PathCount{},
		ViewsByContentType: []TypeCount{},
	}

	// fallback to the zero value already in resp on any sub-query error
	run := func(name string, fn func() error) func() {
		return func() {
			if err := fn(); err != nil {
				log.Warn("Analytics sub-query failed, using fallback",
					zap.String("query", name),
					zap.Error(err))
				prometheus.RecordStatsQueryFailure(name)
			}
		}
	}

	queries := []func(){
		run("total_page_views", func() error {
			return db.Model(&model.PageView{}).Count(&resp.TotalPageViews).Error
		}),
		run("page_views_in_window", func() error {
			return db.Model(&model.PageView{}).Where("created_at >= ?", since).Count(&resp.PageViewsInWindow).Error
		}),
		run("page_views_by_day", func() error {
			rows := []DayCount{}
			err := db.Model(&model.PageView{}).
				Select("DATE(created_at) as date, COUNT(*) as count").
				Where("created_at >= ?", since).
				Group("DATE(created_at)").
				Order("date asc").
				Scan(&rows).Error
			if err != nil {
				return err
			}
			resp.PageViewsByDay = rows
			return nil
		}),
		run("top_paths", func() error {
			rows := []PathCount{}
			err := db.Model(&model.PageView{}).
				Select("path, COUNT(*) as count").
				Where("created_at >= ?", since).
				Group("path").
				Order("count desc").
				Limit(topPathsLimit).
				Scan(&rows).Error
			if err != nil {
				return err
			}
			resp.TopPaths = rows
			return nil
		}),
		run("views_by_content_type", func() error {
			rows := []TypeCount{}
			err := db.Model(&model.PageView{}).
				Select("content_type, COUNT(*) as count").
				Where("created_at >= ? AND content_type != ''", since).
				Group("content_type").
				Order("count desc").
				Scan(&rows).Error
			if err != nil {
				return err
			}
			resp.ViewsByContentType = rows
			return nil
		}),
		run("published_blog_posts", func() error {
			return db.Model(&model.BlogPost{}).Where("is_published = ?", true).Count(&resp.PublishedBlogPosts).Error
		}),
		run("active_publications", func() error {
			return db.Model(&model.Publication{}).Where("is_active = ?", true).Count(&resp.ActivePublications).Error
		}),
		run("active_masterclasses", func() error {
			return db.Model(&model.Masterclass{}).Where("is_active = ?", true).Count(&resp.ActiveMasterclasses).Error
		}),
		run("active_services", func() error {
			return db.Model(&model.ConsultancyService{}).Where("is_active = ?", true).Count(&resp.ActiveServices).Error
		}),
		run("active_gallery_items", func() error {
			return db.Model(&model.GalleryItem{}).Where("is_active = ?", true).Count(&resp.ActiveGalleryItems).Error
		}),
		run("newsletter_subscribers", func() error {
			return db.Model(&model.NewsletterSubscription{}).Where("is_active = ?", true).Count(&resp.NewsletterSubscribers).Error
		}),
		run("unread_contact_messages", func() error {
			return db.Model(&model.ContactMessage{}).Where("is_read = ?", false).Count(&resp.UnreadContactMessages).Error
		}),
		run("total_registrations", func() error {
			return db.Model(&model.MasterclassRegistration{}).Count(&resp.TotalRegistrations).Error
		}),
	}

	var wg sync.WaitGroup
	wg.Add(len(queries))
	for _, q := range queries {
		go func(q func()) {
			defer wg.Done()
			q()
		}(q)
	}
	wg.Wait()

	return c.JSON(http.StatusOK, resp)
}
