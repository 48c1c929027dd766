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

func TestPublicationSoftDeleteAndResurrection(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	pub := model.Publication{Title: "The Long Game", Author: "A. Mentor", IsActive: true}
	require.NoError(t, db.Create(&pub).Error)
	id := strconv.Itoa(int(pub.ID))

	// Delete only deactivates the row
	c, rec := newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, DeletePublication(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.Publication
	require.NoError(t, db.First(&stored, pub.ID).Error)
	assert.False(t, stored.IsActive)

	// Admin single fetch still sees the soft-deleted record
	c, rec = newJSONContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, GetPublication(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Any update resurrects it
	c, rec = newJSONContext(e, http.MethodPut, "/", `{"price": 19.99}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, UpdatePublication(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, db.First(&stored, pub.ID).Error)
	assert.True(t, stored.IsActive)
	assert.Equal(t, 19.99, stored.Price)
	assert.Equal(t, "The Long Game", stored.Title)
}

func TestPublicationPublicListFiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	require.NoError(t, db.Create(&model.Publication{Title: "Visible", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Publication{Title: "Hidden", IsActive: false}).Error)

	c, rec := newJSONContext(e, http.MethodGet, "/?dummy=1", "")
	require.NoError(t, ListPublications(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []model.Publication
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Visible", listed[0].Title)

	// Admin view sees both
	c, rec = newJSONContext(e, http.MethodGet, "/?admin=true", "")
	require.NoError(t, ListPublications(c))
	decodeBody(t, rec, &listed)
	assert.Len(t, listed, 2)
}

func TestPublicationUpdateMergesPartialPayload(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	pub := model.Publication{Title: "Original", Author: "Keep Me", Pages: 240, IsActive: true}
	require.NoError(t, db.Create(&pub).Error)

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"title": "Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(pub.ID)))
	require.NoError(t, UpdatePublication(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.Publication
	require.NoError(t, db.First(&stored, pub.ID).Error)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "Keep Me", stored.Author)
	assert.Equal(t, 240, stored.Pages)
}

func TestGetPublicationNotFound(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("9999")
	require.NoError(t, GetPublication(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
