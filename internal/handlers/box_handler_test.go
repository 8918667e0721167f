package handlers

import (
	"HomeBoxed/internal/inventory"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boxFlags(c *cobra.Command) {
	c.Flags().String("name", "", "")
	c.Flags().String("location", "", "")
}

func TestBoxHandler_CreateBox(t *testing.T) {
	service := new(MockInventoryService)
	handler := NewBoxHandler(service, new(MockMoverService))
	service.On("CreateBox", "Garage Shelf 1", "Garage").
		Return(inventory.Box{ID: 1, Name: "Garage Shelf 1", Location: "Garage"}, nil)

	out, err := execute(t, handler.CreateBox, boxFlags, "Garage Shelf 1", "--location", "Garage")

	require.NoError(t, err)
	assert.Contains(t, out, "Created box 1")
	service.AssertExpectations(t)
}

func TestBoxHandler_CreateBoxRejectsEmptyName(t *testing.T) {
	service := new(MockInventoryService)
	handler := NewBoxHandler(service, new(MockMoverService))

	_, err := execute(t, handler.CreateBox, boxFlags, "")

	assert.EqualError(t, err, "name is required")
	service.AssertNotCalled(t, "CreateBox", mock.Anything, mock.Anything)
}

func TestBoxHandler_GetBoxByIDAsJSON(t *testing.T) {
	service := new(MockInventoryService)
	handler := NewBoxHandler(service, new(MockMoverService))
	service.On("GetBox", inventory.BoxID(3)).Return(inventory.Box{ID: 3, Name: "Fruit"}, nil)
	service.On("ListItemsInBox", inventory.BoxID(3)).
		Return([]inventory.Item{{ID: 1, Name: "Apples"}, {ID: 2, Name: "Raspberries"}}, nil)

	out, err := execute(t, handler.GetBoxByID, nil, "3", "--json")
	require.NoError(t, err)

	var body struct {
		ID    uint
		Name  string
		Items []struct {
			ID   uint
			Name string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, uint(3), body.ID)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Apples", body.Items[0].Name)
	assert.Equal(t, "Raspberries", body.Items[1].Name)
}

func TestBoxHandler_GetBoxByIDNotFound(t *testing.T) {
	service := new(MockInventoryService)
	handler := NewBoxHandler(service, new(MockMoverService))
	service.On("GetBox", inventory.BoxID(9)).
		Return(inventory.Box{}, &inventory.NotFoundError{Kind: "box", ID: 9})

	_, err := execute(t, handler.GetBoxByID, nil, "9")

	assert.ErrorIs(t, err, inventory.ErrNotFound)
	service.AssertNotCalled(t, "ListItemsInBox", mock.Anything)
}

func TestBoxHandler_InvalidID(t *testing.T) {
	handler := NewBoxHandler(new(MockInventoryService), new(MockMoverService))

	for _, arg := range []string{"abc", "0", "-1"} {
		_, err := execute(t, handler.DeleteBox, nil, "--", arg)
		assert.EqualError(t, err, `invalid box ID "`+arg+`"`)
	}
}

func TestBoxHandler_UpdateBoxKeepsUnchangedFields(t *testing.T) {
	service := new(MockInventoryService)
	handler := NewBoxHandler(service, new(MockMoverService))
	service.On("GetBox", inventory.BoxID(2)).
		Return(inventory.Box{ID: 2, Name: "Tools", Location: "Garage"}, nil)
	service.On("UpdateBox", inventory.BoxID(2), "Tools", "Basement").
		Return(inventory.Box{ID: 2, Name: "Tools", Location: "Basement"}, nil)

	out, err := execute(t, handler.UpdateBox, boxFlags, "2", "--location", "Basement")

	require.NoError(t, err)
	assert.Contains(t, out, "Basement")
	service.AssertExpectations(t)
}

func TestBoxHandler_ListBoxes(t *testing.T) {
	service := new(MockInventoryService)
	handler := NewBoxHandler(service, new(MockMoverService))
	service.On("GetBoxes").Return([]inventory.Box{
		{ID: 1, Name: "Fruit", Location: "Pantry"},
		{ID: 2, Name: "Nuts"},
	}, nil)

	out, err := execute(t, handler.ListBoxes, nil)

	require.NoError(t, err)
	assert.Contains(t, out, "Fruit")
	assert.Contains(t, out, "Pantry")
	assert.Contains(t, out, "Nuts")
}

func TestBoxHandler_MoveAll(t *testing.T) {
	mover := new(MockMoverService)
	handler := NewBoxHandler(new(MockInventoryService), mover)
	mover.On("MoveAll", inventory.BoxID(1), inventory.BoxID(2)).Return(4, nil)

	out, err := execute(t, handler.MoveAll, nil, "1", "2")

	require.NoError(t, err)
	assert.Equal(t, "Moved 4 items from box 1 to box 2\n", out)
	mover.AssertExpectations(t)
}
