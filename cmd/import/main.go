package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/navjivan/navjivan-backend/config"
	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/internal/app/repository"
	"github.com/navjivan/navjivan-backend/internal/db"
)

// Imports a menu from an XLSX workbook. Expected columns:
// Name | Description | Price | Category | Image URL | Highlighted (yes/no)
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/import/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	menuRepo := repository.NewMenuRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	items, err := readMenuFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total menu items to import: %d\n", len(items))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	if err := menuRepo.BulkCreateItems(items, batchSize); err != nil {
		log.Fatal("Failed to bulk create menu items:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total menu items imported: %d\n", len(items))
}

func readMenuFromXLSX(filePath string) ([]model.MenuItem, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found")
	}

	var items []model.MenuItem
	// Skip the header row
	for i, row := range rows[1:] {
		if len(row) < 4 {
			fmt.Printf("Skipping row %d: not enough columns\n", i+2)
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || price <= 0 {
			fmt.Printf("Skipping row %d: invalid price %q\n", i+2, row[2])
			continue
		}

		item := model.MenuItem{
			Name:        name,
			Description: strings.TrimSpace(row[1]),
			Price:       price,
			Category:    strings.TrimSpace(row[3]),
		}
		if len(row) > 4 {
			item.ImageURL = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			flag := strings.ToLower(strings.TrimSpace(row[5]))
			item.IsHighlighted = flag == "yes" || flag == "y" || flag == "true"
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid menu items found")
	}
	return items, nil
}
