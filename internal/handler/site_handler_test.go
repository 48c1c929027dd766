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

func TestGetSiteConfigAutoCreates(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, GetSiteConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	db.Model(&model.SiteConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// A second GET reuses the same row
	c, rec = newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, GetSiteConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	db.Model(&model.SiteConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSiteConfigDoesNotAutoCreate(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"site_name": "New Name"}`)
	require.NoError(t, UpdateSiteConfig(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateHeroConfigMergesPartialPayload(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	hero := model.HeroConfig{
		HeroTitle:       "Old Title",
		HeroSubtitle:    "Stays",
		YearsExperience: 15,
		ClientsServed:   200,
		IsActive:        true,
	}
	require.NoError(t, db.Create(&hero).Error)

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"hero_title": "New"}`)
	require.NoError(t, UpdateHeroConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.HeroConfig
	require.NoError(t, db.First(&stored, hero.ID).Error)
	assert.Equal(t, "New", stored.HeroTitle)
	assert.Equal(t, "Stays", stored.HeroSubtitle)
	assert.Equal(t, 15, stored.YearsExperience)
	assert.Equal(t, 200, stored.ClientsServed)
}

func TestActivateHeroConfigDeactivatesSiblings(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	current := model.HeroConfig{HeroTitle: "Current", IsActive: true}
	next := model.HeroConfig{HeroTitle: "Next", IsActive: false}
	require.NoError(t, db.Create(&current).Error)
	require.NoError(t, db.Create(&next).Error)

	c, rec := newJSONContext(e, http.MethodPut, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(next.ID)))
	require.NoError(t, ActivateHeroConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var active []model.HeroConfig
	require.NoError(t, db.Where("is_active = ?", true).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, next.ID, active[0].ID)
}

func TestSocialMediaLinkLifecycle(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"platform": "LinkedIn", "url": "https://linkedin.com/in/someone"}`)
	require.NoError(t, CreateSocialMediaLink(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.SocialMediaLink
	decodeBody(t, rec, &created)

	c, rec = newJSONContext(e, http.MethodPut, "/", `{"url": "https://linkedin.com/company/firm"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(created.ID)))
	require.NoError(t, UpdateSocialMediaLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored model.SocialMediaLink
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "https://linkedin.com/company/firm", stored.URL)
	assert.Equal(t, "LinkedIn", stored.Platform)

	c, rec = newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(created.ID)))
	require.NoError(t, DeleteSocialMediaLink(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	db.Model(&model.SocialMediaLink{}).Count(&count)
	assert.Zero(t, count)
}
