package routers

import (
	"HomeBoxed/cmd"
	"HomeBoxed/database"
	"HomeBoxed/internal/config"
	"HomeBoxed/internal/handlers"
	"HomeBoxed/internal/inventory"
	"HomeBoxed/internal/repository"
	"HomeBoxed/internal/services"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// newTestApp wires an App against the sqlite database at path, the same way
// InitializeApp does.
func newTestApp(t *testing.T, path string) *cmd.App {
	t.Helper()
	db, err := database.Open(sqlite.Open(path))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDatabase(db) })

	logger, _ := test.NewNullLogger()
	logService := services.LogService{Log: logger}
	cfg := config.DefaultConfiguration()
	boxRepository := repository.NewBoxRepository(db)
	itemRepository := repository.NewItemRepository(db)
	inventoryService, err := services.NewInventoryService(
		boxRepository,
		itemRepository,
		repository.NewSequenceRepository(db),
		repository.NewUnitRepository(db),
		logService,
	)
	require.NoError(t, err)
	moverService := services.NewMoverService(inventoryService, logService)
	janitor := services.NewJanitorService(boxRepository, itemRepository, logService, cfg)

	return cmd.NewApp(
		inventoryService,
		handlers.NewBoxHandler(inventoryService, moverService),
		handlers.NewItemHandler(inventoryService, moverService),
		handlers.NewFileHandler(services.NewFileService(inventoryService, logService)),
		handlers.NewJanitorHandler(janitor),
		janitor,
		logService,
		db,
	)
}

func run(t *testing.T, app *cmd.App, args ...string) (string, error) {
	t.Helper()
	root := SetupRoutes(app)
	root.SilenceErrors = true
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, app *cmd.App, args ...string) string {
	t.Helper()
	out, err := run(t, app, args...)
	require.NoError(t, err, out)
	return out
}

func TestRoutes_GarageShelfScenario(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))

	mustRun(t, app, "box", "create", "Garage Shelf 1", "--location", "Garage")
	mustRun(t, app, "item", "create", "Hammer", "--box", "1")

	out := mustRun(t, app, "item", "where", "1")
	assert.Equal(t, "1 Garage Shelf 1 @ Garage\n", out)

	mustRun(t, app, "box", "delete", "1")

	out = mustRun(t, app, "item", "where", "1")
	assert.Equal(t, "(unplaced)\n", out)
	out = mustRun(t, app, "item", "show", "1")
	assert.Contains(t, out, "Hammer")
}

func TestRoutes_JSONOutput(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))
	mustRun(t, app, "box", "create", "Fruit")
	for _, name := range []string{"Apples", "Apricots", "Raspberries"} {
		mustRun(t, app, "item", "create", name, "--box", "1")
	}

	out := mustRun(t, app, "box", "show", "1", "--json")

	var box struct {
		Name  string `json:"name"`
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &box))
	assert.Equal(t, "Fruit", box.Name)
	require.Len(t, box.Items, 3)
	assert.Equal(t, "Apples", box.Items[0].Name)
	assert.Equal(t, "Raspberries", box.Items[2].Name)
}

func TestRoutes_NotFoundAndBadArguments(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))

	_, err := run(t, app, "box", "show", "42")
	assert.ErrorIs(t, err, inventory.ErrNotFound)

	_, err = run(t, app, "item", "place", "1", "abc")
	assert.EqualError(t, err, `invalid box ID "abc"`)

	_, err = run(t, app, "item", "place", "1")
	assert.Error(t, err)

	out, err := run(t, app, "item", "create", "Hammer", "--box", "5")
	assert.ErrorIs(t, err, inventory.ErrNotFound, out)
	items, err := app.InventoryService.GetItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRoutes_StatePersistsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxed.db")
	first := newTestApp(t, path)
	mustRun(t, first, "box", "create", "A")
	mustRun(t, first, "box", "create", "B")
	mustRun(t, first, "item", "create", "second")
	mustRun(t, first, "item", "create", "first")
	mustRun(t, first, "item", "place", "2", "1")
	mustRun(t, first, "item", "place", "1", "1")
	mustRun(t, first, "box", "delete", "2")

	second := newTestApp(t, path)
	items, err := second.InventoryService.ListItemsInBox(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)

	out := mustRun(t, second, "box", "create", "C", "--json")
	assert.Contains(t, out, `"id": 3`, "deleted box ids are not handed out again")
}

func TestRoutes_SearchMoveAndCopy(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))
	mustRun(t, app, "box", "create", "Fruit")
	mustRun(t, app, "box", "create", "Nuts")
	mustRun(t, app, "item", "create", "Raspberries", "--box", "1")
	mustRun(t, app, "item", "create", "Hazelnuts", "--box", "2")

	out := mustRun(t, app, "search", "berries")
	assert.Contains(t, out, "Raspberries")
	assert.NotContains(t, out, "Hazelnuts")

	mustRun(t, app, "item", "copy", "2", "1")
	mustRun(t, app, "box", "move-all", "1", "2")

	fruit, err := app.InventoryService.ListItemsInBox(1)
	require.NoError(t, err)
	assert.Empty(t, fruit)
	nuts, err := app.InventoryService.ListItemsInBox(2)
	require.NoError(t, err)
	assert.Len(t, nuts, 3)
}

func TestRoutes_ExportImport(t *testing.T) {
	dir := t.TempDir()
	source := newTestApp(t, filepath.Join(dir, "source.db"))
	mustRun(t, source, "box", "create", "Fruit", "--location", "Pantry")
	mustRun(t, source, "item", "create", "Apples", "--description", "red", "--box", "1")
	mustRun(t, source, "item", "create", "Loose screws")

	csvPath := filepath.Join(dir, "inventory.csv")
	mustRun(t, source, "export", csvPath)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BoxID,Box,Location,Item,Description,Unit\n"))

	target := newTestApp(t, filepath.Join(dir, "target.db"))
	out := mustRun(t, target, "import", csvPath)
	assert.Contains(t, out, "Imported 2 items into 1 new and 0 existing boxes")

	results, err := target.InventoryService.Search("apples")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Pantry", results[0].Box.Location)
}

func TestRoutes_JanitorRun(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))
	mustRun(t, app, "box", "create", "A")
	mustRun(t, app, "box", "delete", "1")

	out := mustRun(t, app, "janitor", "run")
	assert.Equal(t, "Purged 0 deleted records\n", out, "records inside the retention window are kept")
}

func TestRoutes_Units(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))
	mustRun(t, app, "item", "create", "Rope", "--unit", "feet")

	out := mustRun(t, app, "item", "show", "1", "--json")
	var body struct {
		Unit string `json:"unit"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "ft", body.Unit)

	mustRun(t, app, "item", "update", "1", "--unit", "CM")
	item, err := app.InventoryService.GetItem(1)
	require.NoError(t, err)
	assert.Equal(t, "cm", item.Unit)

	_, err = run(t, app, "item", "create", "Wire", "--unit", "yards")
	assert.ErrorIs(t, err, inventory.ErrUnknownUnit)

	out = mustRun(t, app, "units", "--json")
	var units []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &units))
	assert.Len(t, units, 5)
}

func TestRoutes_ExportImportBoxesWithTheSameName(t *testing.T) {
	dir := t.TempDir()
	source := newTestApp(t, filepath.Join(dir, "source.db"))
	mustRun(t, source, "box", "create", "Kitchen", "--location", "Upstairs")
	mustRun(t, source, "box", "create", "Kitchen", "--location", "Basement")
	mustRun(t, source, "item", "create", "Pan", "--box", "1")
	mustRun(t, source, "item", "create", "Jar", "--box", "2")

	csvPath := filepath.Join(dir, "inventory.csv")
	mustRun(t, source, "export", csvPath)

	target := newTestApp(t, filepath.Join(dir, "target.db"))
	out := mustRun(t, target, "import", csvPath)
	assert.Contains(t, out, "Imported 2 items into 2 new and 0 existing boxes")

	pan, err := target.InventoryService.Search("pan")
	require.NoError(t, err)
	require.Len(t, pan, 1)
	assert.Equal(t, "Upstairs", pan[0].Box.Location)
	jar, err := target.InventoryService.Search("jar")
	require.NoError(t, err)
	require.Len(t, jar, 1)
	assert.Equal(t, "Basement", jar[0].Box.Location)
}

func TestRoutes_JanitorWatchStopsWithContext(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "boxed.db"))
	root := SetupRoutes(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"janitor", "watch"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, root.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "janitor running")
	assert.False(t, app.JanitorService.IsCleaning())
}
