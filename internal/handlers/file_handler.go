package handlers

import (
	"HomeBoxed/internal/services"
	"fmt"
	"github.com/spf13/cobra"
	"io"
)

type FileHandler struct {
	service services.FileService
}

func NewFileHandler(service services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) Export(c *cobra.Command, args []string) error {
	path := args[0]
	if path == "-" {
		return h.service.ExportCSV(c.OutOrStdout())
	}
	if err := h.service.ExportFile(path); err != nil {
		return err
	}
	return respond(c, map[string]interface{}{"exported": path}, func(w io.Writer) {
		fmt.Fprintf(w, "Exported inventory to %s\n", path)
	})
}

func (h *FileHandler) Import(c *cobra.Command, args []string) error {
	var result services.ImportResult
	var err error
	if args[0] == "-" {
		result, err = h.service.ImportCSV(c.InOrStdin())
	} else {
		result, err = h.service.ImportFile(args[0])
	}
	if err != nil {
		return err
	}
	return respond(c, result, func(w io.Writer) {
		fmt.Fprintf(w, "Imported %d items into %d new and %d existing boxes\n",
			result.ItemsCreated, result.BoxesCreated, result.BoxesReused)
	})
}
