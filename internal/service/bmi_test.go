package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhojanbuddy/backend/internal/models"
	"github.com/bhojanbuddy/backend/internal/service"
	"github.com/bhojanbuddy/backend/internal/testhelpers"
	"github.com/bhojanbuddy/backend/internal/types"
)

func TestBMICreate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	bmiSvc := service.NewBMIService(db)

	user := createUser(t, db, "bmi@example.com")

	record, err := bmiSvc.Create(context.Background(), user.ID, &types.NewBMIRecord{
		UserID:      user.ID,
		Height:      170,
		Weight:      65,
		BMI:         22.49,
		BMICategory: "Normal weight",
		Mode:        models.ModeBeast,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	// The submitted value and category are persisted verbatim.
	assert.Equal(t, 22.49, record.BMI)
	assert.Equal(t, "Normal weight", record.BMICategory)
	assert.Equal(t, models.ModeBeast, record.Mode)
}

func TestBMICreateForOtherUserForbidden(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	bmiSvc := service.NewBMIService(db)

	caller := createUser(t, db, "caller@example.com")
	other := createUser(t, db, "other@example.com")

	_, err := bmiSvc.Create(context.Background(), caller.ID, &types.NewBMIRecord{
		UserID:      other.ID,
		Height:      170,
		Weight:      65,
		BMI:         22.49,
		BMICategory: "Normal weight",
	})
	assert.ErrorIs(t, err, service.ErrForbidden)

	// Nothing was persisted before the check fired.
	var count int64
	require.NoError(t, db.Model(&models.BMIRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBMIHistoryForbidden(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	bmiSvc := service.NewBMIService(db)

	caller := createUser(t, db, "caller2@example.com")

	_, err := bmiSvc.History(context.Background(), caller.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestBMIHistoryNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	bmiSvc := service.NewBMIService(db)

	user := createUser(t, db, "history@example.com")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, bmi := range []float64{20.1, 21.2, 22.3} {
		record := models.BMIRecord{
			UserID:      user.ID,
			Height:      170,
			Weight:      60 + float64(i)*3,
			BMI:         bmi,
			BMICategory: "Normal weight",
			Mode:        models.ModeSwasthya,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&record).Error)
	}

	records, err := bmiSvc.History(context.Background(), user.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, 22.3, records[0].BMI)
	assert.Equal(t, 21.2, records[1].BMI)
	assert.Equal(t, 20.1, records[2].BMI)
	for i := 1; i < len(records); i++ {
		assert.True(t, !records[i-1].CreatedAt.Before(records[i].CreatedAt))
	}
}
