package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/internal/db"
	"github.com/navjivan/navjivan-backend/internal/remote"
	"github.com/navjivan/navjivan-backend/internal/store"
	"gorm.io/gorm"
)

func setupAdminAPI(t *testing.T) (*gin.Engine, *store.Store, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	content := remote.NewContent(gormDB, nil)
	contentStore := store.New(store.Backend{
		Reader:  content,
		Writer:  content,
		Objects: nopObjects{},
	}, store.Options{DebounceWindow: 10 * time.Millisecond})

	ctrl := NewAdminController(contentStore)

	r := gin.New()
	r.GET("/admin/menu/items", ctrl.ListMenuItems)
	r.POST("/admin/menu/items", ctrl.CreateMenuItem)
	r.PUT("/admin/menu/items/:id", ctrl.UpdateMenuItem)
	r.DELETE("/admin/menu/items/:id", ctrl.DeleteMenuItem)
	r.POST("/admin/menu/categories", ctrl.CreateMenuCategory)
	r.DELETE("/admin/menu/categories/:name", ctrl.DeleteMenuCategory)
	r.PUT("/admin/faqs", ctrl.ReplaceFAQs)
	r.GET("/admin/reviews", ctrl.ListReviews)
	r.PUT("/admin/reviews/:id", ctrl.UpdateReview)
	r.GET("/admin/reservations", ctrl.ListReservations)
	r.PUT("/admin/reservations/:id", ctrl.UpdateReservation)
	r.GET("/admin/reservations/export", ctrl.ExportReservations)

	return r, contentStore, gormDB
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAdminMenuItemLifecycle(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)
	contentStore.RefreshAll(context.Background())

	// Create
	w := postJSON(t, r, "POST", "/admin/menu/items", map[string]interface{}{
		"name": "Dal Makhani", "price": 280.0, "category": "Main Course",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Item model.MenuItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Item.ID)

	// Mirror reflects the write immediately
	assert.Len(t, contentStore.MenuItems(), 1)

	// Update
	w = postJSON(t, r, "PUT", "/admin/menu/items/1", map[string]interface{}{
		"name": "Dal Makhani Special", "price": 320.0, "category": "Main Course",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.MenuItem
	require.NoError(t, gormDB.First(&stored, created.Item.ID).Error)
	assert.Equal(t, "Dal Makhani Special", stored.Name)
	assert.Equal(t, 320.0, stored.Price)
	assert.WithinDuration(t, created.Item.CreatedAt, stored.CreatedAt, time.Second)

	// Delete
	w = httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/admin/menu/items/1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, gormDB.Model(&model.MenuItem{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, contentStore.MenuItems())
}

func TestAdminCreateMenuItemValidation(t *testing.T) {
	r, _, _ := setupAdminAPI(t)

	w := postJSON(t, r, "POST", "/admin/menu/items", map[string]interface{}{
		"name": "No price",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
}

func TestAdminDeleteCategoryKeepsItems(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)

	require.NoError(t, gormDB.Create(&model.MenuCategory{Name: "Starters", Position: 0}).Error)
	require.NoError(t, gormDB.Create(&model.MenuItem{
		Name: "Paneer Tikka", Price: 320, Category: "Starters",
	}).Error)
	contentStore.RefreshAll(context.Background())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/admin/menu/categories/Starters", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var categories int64
	require.NoError(t, gormDB.Model(&model.MenuCategory{}).Count(&categories).Error)
	assert.Zero(t, categories)

	// The item keeps its category string
	var item model.MenuItem
	require.NoError(t, gormDB.First(&item).Error)
	assert.Equal(t, "Starters", item.Category)
}

func TestAdminReplaceFAQsReturnsFreshRows(t *testing.T) {
	r, contentStore, _ := setupAdminAPI(t)
	contentStore.RefreshAll(context.Background())

	w := postJSON(t, r, "PUT", "/admin/faqs", map[string]interface{}{
		"faqs": []map[string]string{
			{"question": "Parking?", "answer": "Yes, free"},
			{"question": "Delivery?", "answer": "Within 5 km"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FAQs []model.FAQItem `json:"faqs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.FAQs, 2)
	assert.NotZero(t, resp.FAQs[0].ID)
	assert.NotZero(t, resp.FAQs[1].ID)
}

func TestAdminApproveReview(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)

	require.NoError(t, gormDB.Create(&model.ReviewItem{
		Name: "Ravi", Rating: 4, Comment: "Good", Status: model.ReviewPending,
		ReviewDate: time.Now(),
	}).Error)
	contentStore.RefreshAll(context.Background())

	w := postJSON(t, r, "PUT", "/admin/reviews/1", map[string]interface{}{
		"name": "Ravi", "rating": 4, "comment": "Good", "status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.ReviewItem
	require.NoError(t, gormDB.First(&stored, 1).Error)
	assert.Equal(t, model.ReviewApproved, stored.Status)
	assert.Len(t, contentStore.ApprovedReviews(), 1)
}

func TestAdminListPendingReviews(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)

	require.NoError(t, gormDB.Create(&model.ReviewItem{
		Name: "Asha", Rating: 5, Status: model.ReviewApproved, ReviewDate: time.Now(),
	}).Error)
	require.NoError(t, gormDB.Create(&model.ReviewItem{
		Name: "Ravi", Rating: 4, Status: model.ReviewPending, ReviewDate: time.Now(),
	}).Error)
	contentStore.RefreshAll(context.Background())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/reviews?status=pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ravi")
	assert.NotContains(t, w.Body.String(), "Asha")
}

func TestAdminConfirmReservationKeepsCreatedAt(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)

	reservation := &model.ReservationItem{
		Name: "Meera", Phone: "111", Date: "2026-09-10", Time: "19:00",
		Guests: 2, Status: model.ReservationPending,
	}
	require.NoError(t, gormDB.Create(reservation).Error)
	contentStore.RefreshAll(context.Background())

	w := postJSON(t, r, "PUT", "/admin/reservations/1", map[string]interface{}{
		"name": "Meera", "phone": "111", "date": "2026-09-10", "time": "19:00",
		"guests": 2, "status": "Confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.ReservationItem
	require.NoError(t, gormDB.First(&stored, reservation.ID).Error)
	assert.Equal(t, model.ReservationConfirmed, stored.Status)
	assert.WithinDuration(t, reservation.CreatedAt, stored.CreatedAt, time.Second)

	mirrored := contentStore.Reservations()
	require.Len(t, mirrored, 1)
	assert.Equal(t, model.ReservationConfirmed, mirrored[0].Status)
	assert.WithinDuration(t, reservation.CreatedAt, mirrored[0].CreatedAt, time.Second)
}

func TestAdminConfirmReservationPreservesOrdering(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)

	older := &model.ReservationItem{
		Name: "Asha", Phone: "222", Date: "2026-09-11", Time: "18:00",
		Guests: 4, Status: model.ReservationPending,
	}
	require.NoError(t, gormDB.Create(older).Error)
	newer := &model.ReservationItem{
		Name: "Ravi", Phone: "333", Date: "2026-09-12", Time: "20:00",
		Guests: 2, Status: model.ReservationPending,
	}
	require.NoError(t, gormDB.Create(newer).Error)
	require.NoError(t, gormDB.Model(newer).
		Update("created_at", older.CreatedAt.Add(time.Hour)).Error)
	contentStore.RefreshAll(context.Background())

	// Confirming the older reservation must not move it to the end
	w := postJSON(t, r, "PUT", "/admin/reservations/1", map[string]interface{}{
		"name": "Asha", "phone": "222", "date": "2026-09-11", "time": "18:00",
		"guests": 4, "status": "Confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	contentStore.RefreshAll(context.Background())
	reservations := contentStore.Reservations()
	require.Len(t, reservations, 2)
	assert.Equal(t, "Ravi", reservations[0].Name)
	assert.Equal(t, "Asha", reservations[1].Name)
	assert.Equal(t, model.ReservationConfirmed, reservations[1].Status)
}

func TestAdminUpdateReservationUnknownID(t *testing.T) {
	r, contentStore, _ := setupAdminAPI(t)
	contentStore.RefreshAll(context.Background())

	w := postJSON(t, r, "PUT", "/admin/reservations/99", map[string]interface{}{
		"name": "Ghost", "phone": "000", "date": "2026-09-10", "time": "19:00",
		"guests": 2, "status": "Confirmed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RESERVATION_NOT_FOUND")
}

func TestAdminExportReservationsIsXLSX(t *testing.T) {
	r, contentStore, gormDB := setupAdminAPI(t)

	require.NoError(t, gormDB.Create(&model.ReservationItem{
		Name: "Meera", Phone: "111", Date: "2026-09-10", Time: "19:00",
		Guests: 2, Status: model.ReservationConfirmed,
	}).Error)
	contentStore.RefreshAll(context.Background())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/reservations/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reservations-")
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"),
	)
	assert.NotZero(t, w.Body.Len())
}
