package handlers

import (
	"HomeBoxed/internal/inventory"
	"HomeBoxed/internal/services"
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
)

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateBox(name, location string) (inventory.Box, error) {
	args := m.Called(name, location)
	return args.Get(0).(inventory.Box), args.Error(1)
}

func (m *MockInventoryService) CreateItem(name, description, unit string) (inventory.Item, error) {
	args := m.Called(name, description, unit)
	return args.Get(0).(inventory.Item), args.Error(1)
}

func (m *MockInventoryService) PlaceItem(itemID inventory.ItemID, boxID inventory.BoxID) error {
	args := m.Called(itemID, boxID)
	return args.Error(0)
}

func (m *MockInventoryService) PlaceItems(itemIDs []inventory.ItemID, boxID inventory.BoxID) (int, error) {
	args := m.Called(itemIDs, boxID)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) RemoveItemFromBox(itemID inventory.ItemID) error {
	args := m.Called(itemID)
	return args.Error(0)
}

func (m *MockInventoryService) DeleteBox(boxID inventory.BoxID) error {
	args := m.Called(boxID)
	return args.Error(0)
}

func (m *MockInventoryService) DeleteItem(itemID inventory.ItemID) error {
	args := m.Called(itemID)
	return args.Error(0)
}

func (m *MockInventoryService) FindBoxOfItem(itemID inventory.ItemID) (*inventory.Box, error) {
	args := m.Called(itemID)
	if box, ok := args.Get(0).(*inventory.Box); ok {
		return box, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryService) ListItemsInBox(boxID inventory.BoxID) ([]inventory.Item, error) {
	args := m.Called(boxID)
	items, _ := args.Get(0).([]inventory.Item)
	return items, args.Error(1)
}

func (m *MockInventoryService) GetBox(boxID inventory.BoxID) (inventory.Box, error) {
	args := m.Called(boxID)
	return args.Get(0).(inventory.Box), args.Error(1)
}

func (m *MockInventoryService) GetItem(itemID inventory.ItemID) (inventory.Item, error) {
	args := m.Called(itemID)
	return args.Get(0).(inventory.Item), args.Error(1)
}

func (m *MockInventoryService) GetBoxes() ([]inventory.Box, error) {
	args := m.Called()
	return args.Get(0).([]inventory.Box), args.Error(1)
}

func (m *MockInventoryService) GetItems() ([]inventory.Item, error) {
	args := m.Called()
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockInventoryService) GetUnplacedItems() ([]inventory.Item, error) {
	args := m.Called()
	return args.Get(0).([]inventory.Item), args.Error(1)
}

func (m *MockInventoryService) UpdateBox(boxID inventory.BoxID, name, location string) (inventory.Box, error) {
	args := m.Called(boxID, name, location)
	return args.Get(0).(inventory.Box), args.Error(1)
}

func (m *MockInventoryService) UpdateItem(itemID inventory.ItemID, name, description, unit string) (inventory.Item, error) {
	args := m.Called(itemID, name, description, unit)
	return args.Get(0).(inventory.Item), args.Error(1)
}

func (m *MockInventoryService) Search(query string) ([]inventory.SearchResult, error) {
	args := m.Called(query)
	return args.Get(0).([]inventory.SearchResult), args.Error(1)
}

func (m *MockInventoryService) GetUnits() ([]inventory.Unit, error) {
	args := m.Called()
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

type MockMoverService struct {
	mock.Mock
}

func (m *MockMoverService) MoveAll(fromBoxID, toBoxID inventory.BoxID) (int, error) {
	args := m.Called(fromBoxID, toBoxID)
	return args.Int(0), args.Error(1)
}

func (m *MockMoverService) CopyItem(itemID inventory.ItemID, toBoxID inventory.BoxID) (inventory.Item, error) {
	args := m.Called(itemID, toBoxID)
	return args.Get(0).(inventory.Item), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) ExportCSV(w io.Writer) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockFileService) ImportCSV(r io.Reader) (services.ImportResult, error) {
	args := m.Called(r)
	return args.Get(0).(services.ImportResult), args.Error(1)
}

func (m *MockFileService) ExportFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileService) ImportFile(path string) (services.ImportResult, error) {
	args := m.Called(path)
	return args.Get(0).(services.ImportResult), args.Error(1)
}

func newTestCommand(handler func(*cobra.Command, []string) error) *cobra.Command {
	c := &cobra.Command{Use: "test", RunE: handler, SilenceUsage: true, SilenceErrors: true}
	c.Flags().Bool("json", false, "")
	return c
}

func captureOutput(c *cobra.Command) *bytes.Buffer {
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	return &out
}

// execute runs handler as a standalone command and returns what it printed.
func execute(t *testing.T, handler func(*cobra.Command, []string) error, flags func(*cobra.Command), args ...string) (string, error) {
	t.Helper()
	c := newTestCommand(handler)
	if flags != nil {
		flags(c)
	}
	out := captureOutput(c)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}
