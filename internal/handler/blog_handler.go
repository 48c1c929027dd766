package handler

import (
	"net/http"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BlogPostRequest defines the structure for blog post creation/update requests
type BlogPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	CoverImage  string `json:"cover_image"`
	IsPublished *bool  `json:"is_published"`
}

// ListBlogPosts retrieves blog posts, newest first. The public view
// only returns published posts; ?admin=true returns everything.
// ?id= fetches a single post instead; a public single-post fetch
// still requires the post to be published.
func ListBlogPosts(c echo.Context) error {
	log := logger.FromContext(c)
	admin := c.QueryParam("admin") == "true"

	if id := c.QueryParam("id"); id != "" {
		query := database.GetDB()
		if !admin {
			query = query.Where("is_published = ?", true)
		}

		var post model.BlogPost
		if err := query.First(&post, "id = ?", id).Error; err != nil {
			log.Warn("Blog post not found", zap.String("post_id", id), zap.Error(err))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
		}
		return c.JSON(http.StatusOK, post)
	}

	query := database.GetDB().Order("created_at desc")
	if !admin {
		query = query.Where("is_published = ?", true)
	}

	var posts []model.BlogPost
	result := query.Find(&posts)
	if result.Error != nil {
		log.Error("Failed to retrieve blog posts", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve blog posts"})
	}

	return c.JSON(http.StatusOK, posts)
}

// CreateBlogPost adds a new blog post
func CreateBlogPost(c echo.Context) error {
	log := logger.FromContext(c)

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Blog post title is required"})
	}

	post := model.BlogPost{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Author:     req.Author,
		CoverImage: req.CoverImage,
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	result := database.GetDB().Create(&post)
	if result.Error != nil {
		log.Error("Failed to create blog post", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create blog post"})
	}

	log.Info("Blog post created", zap.Uint("post_id", post.ID), zap.String("title", post.Title))
	prometheus.RecordContentOperation("blog_post", "create")
	return c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost updates an existing blog post
func UpdateBlogPost(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("post_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var post model.BlogPost
	result := database.GetDB().First(&post, "id = ?", id)
	if result.Error != nil {
		log.Warn("Blog post not found", zap.String("post_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Excerpt != "" {
		post.Excerpt = req.Excerpt
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.CoverImage != "" {
		post.CoverImage = req.CoverImage
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	result = database.GetDB().Save(&post)
	if result.Error != nil {
		log.Error("Failed to update blog post", zap.String("post_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update blog post"})
	}

	log.Info("Blog post updated", zap.Uint("post_id", post.ID))
	prometheus.RecordContentOperation("blog_post", "update")
	return c.JSON(http.StatusOK, post)
}

// DeleteBlogPost hard-deletes a blog post
func DeleteBlogPost(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var post model.BlogPost
	result := database.GetDB().First(&post, "id = ?", id)
	if result.Error != nil {
		log.Warn("Blog post not found", zap.String("post_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
	}

	result = database.GetDB().Delete(&post)
	if result.Error != nil {
		log.Error("Failed to delete blog post", zap.Uint("post_id", post.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete blog post"})
	}

	log.Info("Blog post deleted", zap.Uint("post_id", post.ID))
	prometheus.RecordContentOperation("blog_post", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Blog post deleted successfully"})
}
