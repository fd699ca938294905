package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/shelfwatch/inventory-screen/internal/models"
	"github.com/shelfwatch/inventory-screen/internal/session"
)

// parsedCSV separates rows worth importing from rows rejected up front.
type parsedCSV struct {
	rows    []session.ImportRow
	skipped int
	errors  []session.RowError
}

func parseCSV(file multipart.File) (parsedCSV, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return parsedCSV{}, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["name"]; !ok {
		return parsedCSV{}, fmt.Errorf("CSV header must include a name column")
	}
	if _, ok := index["quantity"]; !ok {
		return parsedCSV{}, fmt.Errorf("CSV header must include a quantity column")
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var parsed parsedCSV
	line := 1 // header is line 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return parsedCSV{}, fmt.Errorf("CSV read error: %v", err)
		}
		line++

		name := cell(record, "name")
		quantityRaw := cell(record, "quantity")
		if name == "" || quantityRaw == "" {
			// Rows without both fields are silently skipped, only counted.
			parsed.skipped++
			continue
		}

		quantity, err := strconv.Atoi(quantityRaw)
		if err != nil || quantity < 0 {
			parsed.errors = append(parsed.errors,
				session.RowError{Line: line, Error: fmt.Sprintf("invalid quantity %q", quantityRaw)})
			continue
		}

		draft := models.ProductDraft{
			Name:        name,
			Description: cell(record, "description"),
			Quantity:    quantity,
		}
		// Columns the screen does not know pass through to the backend
		// verbatim.
		for i, h := range headers {
			key := strings.ToLower(strings.TrimSpace(h))
			if key == "name" || key == "description" || key == "quantity" || i >= len(record) {
				continue
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			if draft.Extra == nil {
				draft.Extra = map[string]string{}
			}
			draft.Extra[key] = value
		}

		parsed.rows = append(parsed.rows, session.ImportRow{Line: line, Draft: draft})
	}
	return parsed, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Rows are created one at a time, in file order; the list is
// @Description reloaded once after the last row.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with name and quantity columns"
// @Success 200 {object} session.ImportOutcome
// @Failure 400 {string} string "Invalid file"
// @Router /screen/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	parsed, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome := screen.Import(r.Context(), parsed.rows, parsed.skipped)
	outcome.Errors = append(parsed.errors, outcome.Errors...)

	if err := writeJSON(w, http.StatusOK, outcome); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
