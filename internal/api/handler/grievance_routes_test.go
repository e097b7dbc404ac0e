package handler_test

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/auth"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

func TestShowSubmit_UserSession(t *testing.T) {
	r, _, authSvc := newTestEnv(t)

	w := get(r, "/submit", sessionCookie(t, authSvc, auth.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Submit a Grievance")
}

func TestSubmit_CreatesPendingRecord(t *testing.T) {
	r, store, authSvc := newTestEnv(t)

	store.On("CreateGrievance", mock.AnythingOfType("*models.Grievance")).
		Run(func(args mock.Arguments) {
			g := args.Get(0).(*models.Grievance)
			assert.Equal(t, "Noisy neighbors", g.Title)
			assert.Equal(t, "Loud at night", g.Description)
			assert.Equal(t, "Frustrated", g.Mood)
			assert.Equal(t, "High", g.Priority)
			assert.Nil(t, g.Response)
			// Simulate the database side of the insert.
			g.ID = 1
			g.Status = models.StatusPending
			g.CreatedAt = time.Now()
		}).
		Return(nil).Once()

	w := postForm(r, "/submit", url.Values{
		"title":       {"Noisy neighbors"},
		"description": {"Loud at night"},
		"mood":        {"Frustrated"},
		"priority":    {"High"},
	}, sessionCookie(t, authSvc, auth.RoleUser))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/thankyou", w.Header().Get("Location"))
	assert.True(t, hasCookie(w, "grievance_flash"), "a confirmation flash must be set")
	store.AssertExpectations(t)
}

func TestSubmit_BlankFieldRedisplaysForm(t *testing.T) {
	r, store, authSvc := newTestEnv(t)

	w := postForm(r, "/submit", url.Values{
		"title":       {""},
		"description": {"Loud at night"},
		"mood":        {"Frustrated"},
		"priority":    {"High"},
	}, sessionCookie(t, authSvc, auth.RoleUser))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required.")
	store.AssertNotCalled(t, "CreateGrievance", mock.Anything)
}

func TestSubmit_PersistenceFailureIsFatal(t *testing.T) {
	r, store, authSvc := newTestEnv(t)

	store.On("CreateGrievance", mock.Anything).Return(errors.New("store unavailable")).Once()

	w := postForm(r, "/submit", url.Values{
		"title":       {"t"},
		"description": {"d"},
		"mood":        {"m"},
		"priority":    {"p"},
	}, sessionCookie(t, authSvc, auth.RoleUser))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestThankYou_ShowsFlash(t *testing.T) {
	r, _, authSvc := newTestEnv(t)

	flash := &http.Cookie{Name: "grievance_flash", Value: url.QueryEscape("Grievance submitted!")}
	w := get(r, "/thankyou", sessionCookie(t, authSvc, auth.RoleUser), flash)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grievance submitted!")
	assert.Contains(t, w.Body.String(), "Aditya")
}

func TestMyGrievances_ListsAll(t *testing.T) {
	r, store, authSvc := newTestEnv(t)

	response := "Talked to the landlord"
	store.On("ListGrievances").Return([]models.Grievance{
		{ID: 2, Title: "Cold coffee", Mood: "Annoyed", Priority: "Low", Status: models.StatusPending},
		{ID: 1, Title: "Noisy neighbors", Mood: "Frustrated", Priority: "High", Status: models.StatusResolved, Response: &response},
	}, nil).Once()

	w := get(r, "/my_grievances", sessionCookie(t, authSvc, auth.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Cold coffee")
	assert.Contains(t, body, "Noisy neighbors")
	assert.Contains(t, body, "Talked to the landlord")
	// Newest first: storage already orders by created_at DESC and the page
	// must keep that order.
	assert.Less(t, strings.Index(body, "Cold coffee"), strings.Index(body, "Noisy neighbors"))
	store.AssertExpectations(t)
}

func TestMyGrievances_StorageError(t *testing.T) {
	r, store, authSvc := newTestEnv(t)

	store.On("ListGrievances").Return(nil, errors.New("store unavailable")).Once()

	w := get(r, "/my_grievances", sessionCookie(t, authSvc, auth.RoleUser))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
