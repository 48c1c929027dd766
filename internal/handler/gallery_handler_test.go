package handler

import (
	"net/http"
	"strconv"
	"testing"

	"consulting-site/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVideoItemDerivesThumbnail(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/",
		`{"title": "Keynote recording", "media_type": "video", "video_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)
	require.NoError(t, CreateGalleryItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.GalleryItem
	decodeBody(t, rec, &created)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", created.Thumbnail)
}

func TestCreateVideoItemKeepsExplicitThumbnail(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/",
		`{"title": "Custom thumb", "media_type": "video", "video_url": "https://youtu.be/dQw4w9WgXcQ", "thumbnail": "https://cdn.example.com/custom.jpg"}`)
	require.NoError(t, CreateGalleryItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.GalleryItem
	decodeBody(t, rec, &created)
	assert.Equal(t, "https://cdn.example.com/custom.jpg", created.Thumbnail)
}

func TestCreateVideoItemRequiresVideoURL(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"title": "No video", "media_type": "video"}`)
	require.NoError(t, CreateGalleryItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateGalleryItemVideoURLRefreshesThumbnail(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	item := model.GalleryItem{
		Title:     "Talk",
		MediaType: model.MediaTypeVideo,
		VideoURL:  "https://youtu.be/aaaaaaaaaaa",
		Thumbnail: "https://img.youtube.com/vi/aaaaaaaaaaa/maxresdefault.jpg",
		IsActive:  true,
	}
	require.NoError(t, db.Create(&item).Error)

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"video_url": "https://youtu.be/bbbbbbbbbbb"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(item.ID)))
	require.NoError(t, UpdateGalleryItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.GalleryItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, "https://img.youtube.com/vi/bbbbbbbbbbb/maxresdefault.jpg", stored.Thumbnail)
}

func TestListGalleryItemsFilters(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	require.NoError(t, db.Create(&model.GalleryItem{Title: "Featured", MediaType: model.MediaTypeImage, Featured: true, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.GalleryItem{Title: "Plain", MediaType: model.MediaTypeImage, IsActive: true}).Error)
	hidden := model.GalleryItem{Title: "Hidden", MediaType: model.MediaTypeImage, IsActive: false}
	require.NoError(t, db.Create(&hidden).Error)

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, ListGalleryItems(c))
	var listed []model.GalleryItem
	decodeBody(t, rec, &listed)
	assert.Len(t, listed, 2)

	c, rec = newJSONContext(e, http.MethodGet, "/?featured=true", "")
	require.NoError(t, ListGalleryItems(c))
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Featured", listed[0].Title)

	c, rec = newJSONContext(e, http.MethodGet, "/?admin=true", "")
	require.NoError(t, ListGalleryItems(c))
	decodeBody(t, rec, &listed)
	assert.Len(t, listed, 3)

	// Single fetch by id respects the public visibility filter
	c, rec = newJSONContext(e, http.MethodGet, "/?id="+strconv.Itoa(int(hidden.ID)), "")
	require.NoError(t, ListGalleryItems(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newJSONContext(e, http.MethodGet, "/?id="+strconv.Itoa(int(hidden.ID))+"&admin=true", "")
	require.NoError(t, ListGalleryItems(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
