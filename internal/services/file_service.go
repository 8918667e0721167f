package services

import (
	"HomeBoxed/internal/helpers"
	"HomeBoxed/internal/inventory"
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"BoxID", "Box", "Location", "Item", "Description", "Unit"}

// ImportResult counts what an import added.
type ImportResult struct {
	BoxesCreated int `json:"boxes_created"`
	BoxesReused  int `json:"boxes_reused"`
	ItemsCreated int `json:"items_created"`
}

type FileService interface {
	ExportCSV(w io.Writer) error
	ImportCSV(r io.Reader) (ImportResult, error)
	ExportFile(path string) error
	ImportFile(path string) (ImportResult, error)
}

type FileServiceImpl struct {
	inventoryService InventoryService
	logService       LogService
}

func NewFileService(inventoryService InventoryService, logService LogService) FileService {
	return &FileServiceImpl{
		inventoryService: inventoryService,
		logService:       logService,
	}
}

// ExportCSV writes one row per item, grouped by box. BoxID tells apart boxes
// that share a name. Empty boxes get a row with no item and unplaced items
// come last with no box.
func (s *FileServiceImpl) ExportCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	boxes, err := s.inventoryService.GetBoxes()
	if err != nil {
		return err
	}
	for _, box := range boxes {
		items, err := s.inventoryService.ListItemsInBox(box.ID)
		if err != nil {
			return err
		}
		boxID := strconv.FormatUint(uint64(box.ID), 10)
		if len(items) == 0 {
			if err := writer.Write([]string{boxID, box.Name, box.Location, "", "", ""}); err != nil {
				return err
			}
			continue
		}
		for _, item := range items {
			if err := writer.Write([]string{boxID, box.Name, box.Location, item.Name, item.Description, item.Unit}); err != nil {
				return err
			}
		}
	}
	unplaced, err := s.inventoryService.GetUnplacedItems()
	if err != nil {
		return err
	}
	for _, item := range unplaced {
		if err := writer.Write([]string{"", "", "", item.Name, item.Description, item.Unit}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

type importRow struct {
	line        int
	boxKey      string
	box         string
	location    string
	item        string
	description string
	unit        string
}

// group names the box a row belongs to within one file: its BoxID when the
// file has one, otherwise its name and location.
func (row importRow) group() string {
	if row.boxKey != "" {
		return "id\x00" + row.boxKey
	}
	return "name\x00" + row.box + "\x00" + row.location
}

// ImportCSV reads and checks the whole file before changing anything, so a
// malformed row leaves the inventory untouched. Each box in the file reuses
// the lowest-id existing box with the same name (and location, when the row
// gives one) that no other box in the file has taken.
func (s *FileServiceImpl) ImportCSV(r io.Reader) (ImportResult, error) {
	rows, err := readImportRows(r)
	if err != nil {
		return ImportResult{}, err
	}
	units, err := s.inventoryService.GetUnits()
	if err != nil {
		return ImportResult{}, err
	}
	for i, row := range rows {
		if row.item == "" {
			continue
		}
		unit, err := inventory.ResolveUnit(units, row.unit)
		if err != nil {
			return ImportResult{}, fmt.Errorf("error while reading CSV file line %d: %w", row.line, err)
		}
		rows[i].unit = unit
	}

	var result ImportResult
	existing, err := s.inventoryService.GetBoxes()
	if err != nil {
		return result, err
	}
	claimed := make(map[inventory.BoxID]bool)
	reuse := func(row importRow) (inventory.BoxID, bool) {
		for _, box := range existing {
			if claimed[box.ID] || box.Name != row.box {
				continue
			}
			if row.location != "" && box.Location != row.location {
				continue
			}
			claimed[box.ID] = true
			return box.ID, true
		}
		return 0, false
	}

	groups := make(map[string]inventory.BoxID)
	for _, row := range rows {
		var boxID inventory.BoxID
		if row.box != "" {
			id, ok := groups[row.group()]
			if !ok {
				if id, ok = reuse(row); ok {
					result.BoxesReused++
				} else {
					box, err := s.inventoryService.CreateBox(row.box, row.location)
					if err != nil {
						return result, err
					}
					id = box.ID
					result.BoxesCreated++
				}
				groups[row.group()] = id
			}
			boxID = id
		}
		if row.item == "" {
			continue
		}
		item, err := s.inventoryService.CreateItem(row.item, row.description, row.unit)
		if err != nil {
			return result, err
		}
		result.ItemsCreated++
		if boxID != 0 {
			if err := s.inventoryService.PlaceItem(item.ID, boxID); err != nil {
				return result, err
			}
		}
	}

	s.logService.Log.WithFields(logrus.Fields{
		"op":      "import",
		"boxes":   result.BoxesCreated,
		"reused":  result.BoxesReused,
		"items":   result.ItemsCreated,
		"csvRows": len(rows),
	}).Info("inventory imported")
	return result, nil
}

func readImportRows(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("error while reading CSV file: missing header row")
		}
		return nil, fmt.Errorf("error while reading CSV file: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	_, hasBox := columns["box"]
	_, hasItem := columns["item"]
	if !hasBox || !hasItem {
		return nil, errors.New("error while reading CSV file: header must name Box and Item columns")
	}
	field := func(record []string, name string) string {
		if i, ok := columns[name]; ok {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var rows []importRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError already names the line.
			return nil, fmt.Errorf("error while reading CSV file: %w", err)
		}
		line, _ := reader.FieldPos(0)
		row := importRow{
			line:        line,
			box:         field(record, "box"),
			location:    field(record, "location"),
			item:        field(record, "item"),
			description: field(record, "description"),
			unit:        field(record, "unit"),
		}
		if row.box != "" {
			row.boxKey = field(record, "boxid")
		}
		if row.box == "" && row.item == "" {
			return nil, fmt.Errorf("error while reading CSV file line %d: row names neither a box nor an item", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *FileServiceImpl) ExportFile(path string) error {
	out, err := helpers.OpenOutput(path)
	if err != nil {
		return err
	}
	if err := s.ExportCSV(out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (s *FileServiceImpl) ImportFile(path string) (ImportResult, error) {
	in, err := helpers.OpenInput(path)
	if err != nil {
		return ImportResult{}, err
	}
	defer in.Close()
	return s.ImportCSV(in)
}
