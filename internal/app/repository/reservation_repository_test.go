package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/internal/db"
)

func TestReservationFindAllNewestFirst(t *testing.T) {
	gormDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	repo := NewReservationRepository(gormDB)

	older := &model.ReservationItem{
		Name: "Meera", Phone: "111", Date: "2026-09-10", Time: "19:00", Guests: 2,
	}
	require.NoError(t, repo.Create(older))

	newer := &model.ReservationItem{
		Name: "Devi", Phone: "222", Date: "2026-09-12", Time: "20:00", Guests: 4,
	}
	require.NoError(t, repo.Create(newer))

	// Push the second reservation clearly ahead in time
	require.NoError(t, gormDB.Model(newer).
		Update("created_at", time.Now().Add(time.Hour)).Error)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Devi", all[0].Name)
	assert.Equal(t, "Meera", all[1].Name)
}

func TestReservationDefaultsToPending(t *testing.T) {
	gormDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	repo := NewReservationRepository(gormDB)

	r := &model.ReservationItem{
		Name: "Kiran", Phone: "333", Date: "2026-09-20", Time: "18:30", Guests: 3,
	}
	require.NoError(t, repo.Create(r))

	var stored model.ReservationItem
	require.NoError(t, gormDB.First(&stored, r.ID).Error)
	assert.Equal(t, model.ReservationPending, stored.Status)
}

func TestReviewFindAllByReviewDateDesc(t *testing.T) {
	gormDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	repo := NewReviewRepository(gormDB)

	older := &model.ReviewItem{
		Name: "Asha", Rating: 5, Comment: "Wonderful",
		ReviewDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(older))

	newer := &model.ReviewItem{
		Name: "Ravi", Rating: 4, Comment: "Very good",
		ReviewDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(newer))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ravi", all[0].Name)
	assert.Equal(t, "Asha", all[1].Name)
}
