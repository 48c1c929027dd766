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

func TestSubmitContactMessageValidatesFields(t *testing.T) {
	setupTestDB(t)
	e := echo.New()

	tests := []struct {
		body  string
		field string
	}{
		{`{"email": "a@b.com", "message": "hi"}`, "name"},
		{`{"name": "A", "message": "hi"}`, "email"},
		{`{"name": "A", "email": "a@b.com"}`, "message"},
	}
	for _, tt := range tests {
		c, rec := newJSONContext(e, http.MethodPost, "/", tt.body)
		require.NoError(t, SubmitContactMessage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, tt.field, resp["field"])
	}
}

func TestSubmitContactMessageStoresUnread(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"name": "Prospect", "email": "p@q.com", "subject": "Inquiry", "message": "Can we talk?"}`)
	require.NoError(t, SubmitContactMessage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var stored model.ContactMessage
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Prospect", stored.Name)
	assert.False(t, stored.IsRead)
}

func TestListContactMessagesUnreadFilter(t *testing.T) {
	db := setupTestDB(t)
	e := echo.New()

	require.NoError(t, db.Create(&model.ContactMessage{Name: "Old", Email: "o@x.com", Message: "seen", IsRead: true}).Error)
	unread := model.ContactMessage{Name: "New", Email: "n@x.com", Message: "unseen"}
	require.NoError(t, db.Create(&unread).Error)

	c, rec := newJSONContext(e, http.MethodGet, "/?unread=true", "")
	require.NoError(t, ListContactMessages(c))
	var listed []model.ContactMessage
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "New", listed[0].Name)

	// Marking it read empties the unread view
	c, rec = newJSONContext(e, http.MethodPut, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(unread.ID)))
	require.NoError(t, MarkContactMessageRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newJSONContext(e, http.MethodGet, "/?unread=true", "")
	require.NoError(t, ListContactMessages(c))
	decodeBody(t, rec, &listed)
	assert.Empty(t, listed)
}
