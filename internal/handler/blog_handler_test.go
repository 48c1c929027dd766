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

func TestListBlogPostsPublicFiltersDrafts(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	require.NoError(t, db.Create(&model.BlogPost{Title: "Published", IsPublished: true}).Error)
	draft := model.BlogPost{Title: "Draft", IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, ListBlogPosts(c))
	var listed []model.BlogPost
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Published", listed[0].Title)

	c, rec = newJSONContext(e, http.MethodGet, "/?admin=true", "")
	require.NoError(t, ListBlogPosts(c))
	decodeBody(t, rec, &listed)
	assert.Len(t, listed, 2)

	// Single fetch of a draft is hidden from the public view
	c, rec = newJSONContext(e, http.MethodGet, "/?id="+strconv.Itoa(int(draft.ID)), "")
	require.NoError(t, ListBlogPosts(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newJSONContext(e, http.MethodGet, "/?id="+strconv.Itoa(int(draft.ID))+"&admin=true", "")
	require.NoError(t, ListBlogPosts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateBlogPostRequiresTitle(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"content": "body only"}`)
	require.NoError(t, CreateBlogPost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBlogPostDefaultsToDraft(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"title": "Fresh"}`)
	require.NoError(t, CreateBlogPost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.BlogPost
	decodeBody(t, rec, &created)
	assert.False(t, created.IsPublished)
}
