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

func TestCreateMasterclassDefaultsSeatsToTotal(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"title": "Scaling Teams", "total_seats": 30}`)
	require.NoError(t, CreateMasterclass(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.Masterclass
	decodeBody(t, rec, &created)
	assert.Equal(t, 30, created.TotalSeats)
	assert.Equal(t, 30, created.SeatsAvailable)
}

func TestRegisterDecrementsSeatCounter(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	mc := model.Masterclass{Title: "Scaling Teams", TotalSeats: 30, SeatsAvailable: 30, IsActive: true, IsUpcoming: true}
	require.NoError(t, db.Create(&mc).Error)

	body := `{"masterclass_id": ` + strconv.Itoa(int(mc.ID)) + `, "full_name": "Dana Attendee", "email": "dana@example.com"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	require.NoError(t, RegisterForMasterclass(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var stored model.Masterclass
	require.NoError(t, db.First(&stored, mc.ID).Error)
	assert.Equal(t, 29, stored.SeatsAvailable)

	var registration model.MasterclassRegistration
	require.NoError(t, db.Where("masterclass_id = ?", mc.ID).First(&registration).Error)
	assert.Equal(t, "Scaling Teams", registration.MasterclassTitle)
}

func TestRegisterUnguardedAllowsNegativeSeats(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	mc := model.Masterclass{Title: "Overbooked", TotalSeats: 1, SeatsAvailable: 0, IsActive: true}
	require.NoError(t, db.Create(&mc).Error)

	body := `{"masterclass_id": ` + strconv.Itoa(int(mc.ID)) + `, "full_name": "Late Comer", "email": "late@example.com"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	require.NoError(t, RegisterForMasterclass(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var stored model.Masterclass
	require.NoError(t, db.First(&stored, mc.ID).Error)
	assert.Equal(t, -1, stored.SeatsAvailable)
}

func TestRegisterGuardedRejectsWhenFull(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	guardSeats = true
	t.Cleanup(func() { guardSeats = false })

	mc := model.Masterclass{Title: "Full House", TotalSeats: 1, SeatsAvailable: 0, IsActive: true}
	require.NoError(t, db.Create(&mc).Error)

	body := `{"masterclass_id": ` + strconv.Itoa(int(mc.ID)) + `, "full_name": "Late Comer", "email": "late@example.com"}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	require.NoError(t, RegisterForMasterclass(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var count int64
	db.Model(&model.MasterclassRegistration{}).Where("masterclass_id = ?", mc.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterSubscribesNewsletter(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	mc := model.Masterclass{Title: "With Newsletter", TotalSeats: 10, SeatsAvailable: 10, IsActive: true}
	require.NoError(t, db.Create(&mc).Error)

	body := `{"masterclass_id": ` + strconv.Itoa(int(mc.ID)) + `, "full_name": "Keen Reader", "email": "keen@example.com", "subscribe_newsletter": true}`
	c, rec := newJSONContext(e, http.MethodPost, "/", body)
	require.NoError(t, RegisterForMasterclass(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var subscription model.NewsletterSubscription
	require.NoError(t, db.Where("email = ?", "keen@example.com").First(&subscription).Error)
	assert.True(t, subscription.IsActive)
}

func TestDeleteMasterclassRemovesRegistrations(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	mc := model.Masterclass{Title: "Gone Soon", TotalSeats: 5, SeatsAvailable: 5, IsActive: true}
	require.NoError(t, db.Create(&mc).Error)
	require.NoError(t, db.Create(&model.MasterclassRegistration{
		MasterclassID:    mc.ID,
		MasterclassTitle: mc.Title,
		FullName:         "Solo Attendee",
		Email:            "solo@example.com",
	}).Error)

	c, rec := newJSONContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(mc.ID)))
	require.NoError(t, DeleteMasterclass(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	db.Model(&model.Masterclass{}).Where("id = ?", mc.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.MasterclassRegistration{}).Where("masterclass_id = ?", mc.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterRequiresNameAndEmail(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"masterclass_id": 1, "email": "x@y.com"}`)
	require.NoError(t, RegisterForMasterclass(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(e, http.MethodPost, "/", `{"masterclass_id": 1, "full_name": "No Email"}`)
	require.NoError(t, RegisterForMasterclass(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
