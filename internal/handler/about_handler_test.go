package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"consulting-site/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAboutPageAutoCreatesActiveConfig(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, GetAboutPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AboutPageResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Config.IsActive)
	assert.Empty(t, resp.Journey)
	assert.Empty(t, resp.Education)

	var count int64
	db.Model(&model.AboutConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestActivateAboutConfigDeactivatesSiblings(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	first := model.AboutConfig{Title: "First", IsActive: true}
	second := model.AboutConfig{Title: "Second", IsActive: false}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	c, rec := newJSONContext(e, http.MethodPut, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(second.ID)))
	require.NoError(t, ActivateAboutConfig(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var active []model.AboutConfig
	require.NoError(t, db.Where("is_active = ?", true).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	// The about page now serves the newly activated config
	c, rec = newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, GetAboutPage(c))
	var resp AboutPageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Second", resp.Config.Title)
}

func TestCreateJourneyItemRemapsFormFields(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	about := model.AboutConfig{IsActive: true}
	require.NoError(t, db.Create(&about).Error)

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"yearRange": "2018-2022", "company": "Acme Corp", "role": "Principal Consultant"}`)
	require.NoError(t, CreateJourneyItem(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Responses use the storage names, not the form names
	var raw map[string]json.RawMessage
	decodeBody(t, rec, &raw)
	assert.Contains(t, raw, "period")
	assert.Contains(t, raw, "organization")
	assert.NotContains(t, raw, "yearRange")
	assert.NotContains(t, raw, "company")

	var stored model.JourneyItem
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "2018-2022", stored.Period)
	assert.Equal(t, "Acme Corp", stored.Organization)
	assert.Equal(t, about.ID, stored.AboutConfigID)
}

func TestCreateEducationRemapsDegree(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	about := model.AboutConfig{IsActive: true}
	require.NoError(t, db.Create(&about).Error)

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"degree": "MBA", "institution": "INSEAD", "year": "2010"}`)
	require.NoError(t, CreateEducation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var stored model.EducationQualification
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "MBA", stored.Qualification)
	assert.Equal(t, "INSEAD", stored.Institution)
}

func TestDeleteAboutConfigChildrenIndividually(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	about := model.AboutConfig{IsActive: true}
	require.NoError(t, db.Create(&about).Error)

	achievement := model.Achievement{AboutConfigID: about.ID, Title: "Top 40 Under 40", IsActive: true}
	speaking := model.SpeakingEngagement{AboutConfigID: about.ID, Title: "Keynote", Event: "LeadCon", IsActive: true}
	require.NoError(t, db.Create(&achievement).Error)
	require.NoError(t, db.Create(&speaking).Error)

	c, rec := newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(achievement.ID)))
	require.NoError(t, DeleteAchievement(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Only the deleted child is gone; siblings and the parent remain
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.SpeakingEngagement{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&model.AboutConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetAboutPagePublicHidesInactiveChildren(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	about := model.AboutConfig{IsActive: true}
	require.NoError(t, db.Create(&about).Error)
	require.NoError(t, db.Create(&model.JourneyItem{AboutConfigID: about.ID, Period: "2020-2024", Organization: "Visible", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.JourneyItem{AboutConfigID: about.ID, Period: "2015-2020", Organization: "Hidden", IsActive: false}).Error)

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, GetAboutPage(c))
	var resp AboutPageResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Journey, 1)
	assert.Equal(t, "Visible", resp.Journey[0].Organization)

	c, rec = newJSONContext(e, http.MethodGet, "/?admin=true", "")
	require.NoError(t, GetAboutPage(c))
	decodeBody(t, rec, &resp)
	assert.Len(t, resp.Journey, 2)
}

func TestCreateJourneyItemRejectsUnknownConfig(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"about_config_id": 99, "yearRange": "2020", "company": "Nowhere"}`)
	require.NoError(t, CreateJourneyItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
