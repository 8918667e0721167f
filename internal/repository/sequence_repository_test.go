package repository

import (
	"HomeBoxed/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRepository_GetUnknownIsZero(t *testing.T) {
	next, err := NewSequenceRepository(setupTestDB(t)).Get(models.SequenceBox)
	require.NoError(t, err)
	assert.Zero(t, next)
}

func TestSetSequence_Upserts(t *testing.T) {
	db := setupTestDB(t)
	seqRepo := NewSequenceRepository(db)

	require.NoError(t, setSequence(db, models.SequenceBox, 5))
	require.NoError(t, setSequence(db, models.SequenceBox, 9))
	require.NoError(t, setSequence(db, models.SequenceItem, 2))

	next, err := seqRepo.Get(models.SequenceBox)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), next)
	next, err = seqRepo.Get(models.SequenceItem)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next)
}

func TestCreateWithSequence_StoresRowAndSequenceTogether(t *testing.T) {
	db := setupTestDB(t)
	boxRepo := NewBoxRepository(db)
	seqRepo := NewSequenceRepository(db)

	require.NoError(t, boxRepo.CreateWithSequence(boxWithID(1, "A"), models.SequenceBox, 2))
	next, err := seqRepo.Get(models.SequenceBox)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next)

	err = boxRepo.CreateWithSequence(boxWithID(1, "duplicate"), models.SequenceBox, 3)
	assert.Error(t, err)
	next, err = seqRepo.Get(models.SequenceBox)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next, "a failed create does not move the sequence")
}

func TestCreateWithSequence_FailedSequenceRollsBackRow(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	require.NoError(t, db.Migrator().DropTable(&models.Sequence{}))

	err := itemRepo.CreateWithSequence(itemWithID(1, "x"), models.SequenceItem, 2)

	assert.Error(t, err)
	maxID, err := itemRepo.MaxID()
	require.NoError(t, err)
	assert.Zero(t, maxID, "the item row is not kept without its sequence")
}
