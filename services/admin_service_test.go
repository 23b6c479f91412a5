package services

import (
	"testing"
	"time"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetWipesDataKeepsTargets(t *testing.T) {
	db := setupTestDB(t)
	pantry := NewPantryService(db)
	logs := NewLogService(db)
	targets := NewTargetService(db)
	admin := NewAdminService(db)

	_, err := pantry.Create(PantryItemRequest{Name: "Oats", Quantity: 500, Unit: "g"})
	require.NoError(t, err)
	day := time.Now()
	_, err = logs.AddEntry(day, LogEntryRequest{ItemName: "Eggs", Calories: 200})
	require.NoError(t, err)
	_, err = targets.Upsert(utils.Macros{Calories: 2000})
	require.NoError(t, err)

	require.NoError(t, admin.ResetAll())

	items, err := pantry.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	entries, err := logs.ListByDay(day)
	require.NoError(t, err)
	assert.Empty(t, entries)

	target, err := targets.Get()
	require.NoError(t, err)
	assert.Equal(t, 2000.0, target.Calories)
}
