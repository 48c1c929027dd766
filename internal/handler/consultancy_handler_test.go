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

func TestDeleteServiceRemovesFeatures(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	service := model.ConsultancyService{Name: "Career Coaching", ServiceType: model.ServiceTypeCareer, IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	features := []model.ServiceFeature{
		{ServiceID: service.ID, Title: "CV review", IsActive: true},
		{ServiceID: service.ID, Title: "Mock interviews", IsActive: true},
		{ServiceID: service.ID, Title: "Salary negotiation", IsActive: true},
	}
	for i := range features {
		require.NoError(t, db.Create(&features[i]).Error)
	}

	c, rec := newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(service.ID)))
	require.NoError(t, DeleteService(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Service and every feature are gone
	var count int64
	db.Model(&model.ConsultancyService{}).Where("id = ?", service.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.ServiceFeature{}).Where("service_id = ?", service.ID).Count(&count)
	assert.Zero(t, count)

	// Single-feature fetches report not found
	for _, f := range features {
		c, rec = newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(int(f.ID)))
		require.NoError(t, GetFeature(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestCreateServiceValidatesType(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"name": "Coaching", "service_type": "astrology"}`)
	require.NoError(t, CreateService(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(e, http.MethodPost, "/", `{"name": "Coaching", "service_type": "personal"}`)
	require.NoError(t, CreateService(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateFeatureRequiresExistingService(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"service_id": 42, "title": "Orphan"}`)
	require.NoError(t, CreateFeature(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListServicesOrdering(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	require.NoError(t, db.Create(&model.ConsultancyService{Name: "Second", ServiceType: model.ServiceTypeBusiness, Order: 2, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.ConsultancyService{Name: "First", ServiceType: model.ServiceTypeCareer, Order: 1, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.ConsultancyService{Name: "Hidden", ServiceType: model.ServiceTypePersonal, Order: 0, IsActive: false}).Error)

	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	require.NoError(t, ListServices(c))

	var listed []model.ConsultancyService
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, "First", listed[0].Name)
	assert.Equal(t, "Second", listed[1].Name)
}
