package gacha

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gacha-backend/models"
)

// ParseCharactersCSV reads masternumber,rarity,name[,type] rows. A missing or
// blank type cell means the standard pool.
func ParseCharactersCSV(reader io.Reader) ([]models.Character, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv must include a header row and at least one data row")
	}

	headers := make(map[string]int, len(records[0]))
	for idx, col := range records[0] {
		headers[strings.ToLower(strings.TrimSpace(col))] = idx
	}

	for _, col := range []string{"masternumber", "rarity", "name"} {
		if _, ok := headers[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	seen := make(map[int]int, len(records)-1)
	characters := make([]models.Character, 0, len(records)-1)
	for i, record := range records[1:] {
		lineNo := i + 2

		masterNumber, err := readInt(record, headers["masternumber"])
		if err != nil {
			return nil, fmt.Errorf("line %d masternumber: %w", lineNo, err)
		}
		if prev, dup := seen[masterNumber]; dup {
			return nil, fmt.Errorf("line %d masternumber: %d already defined on line %d", lineNo, masterNumber, prev)
		}
		seen[masterNumber] = lineNo

		rarity, err := readInt(record, headers["rarity"])
		if err != nil {
			return nil, fmt.Errorf("line %d rarity: %w", lineNo, err)
		}
		if rarity < 0 {
			return nil, fmt.Errorf("line %d rarity: must not be negative", lineNo)
		}

		name := strings.TrimSpace(readValue(record, headers["name"]))
		if name == "" {
			return nil, fmt.Errorf("line %d name: value is required", lineNo)
		}

		poolType := models.StandardPoolType
		if idx, ok := headers["type"]; ok && strings.TrimSpace(readValue(record, idx)) != "" {
			poolType, err = readInt(record, idx)
			if err != nil {
				return nil, fmt.Errorf("line %d type: %w", lineNo, err)
			}
		}

		characters = append(characters, models.Character{
			MasterNumber: masterNumber,
			Rarity:       rarity,
			Name:         name,
			Type:         poolType,
		})
	}

	return characters, nil
}

func readInt(record []string, idx int) (int, error) {
	value := strings.TrimSpace(readValue(record, idx))
	if value == "" {
		return 0, fmt.Errorf("value is required")
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", value)
	}
	return parsed, nil
}

func readValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
