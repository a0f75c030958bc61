package knapsack

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse parses an instance in the text format: the capacity on the first line,
// then one "id profit weight" line per item. Blank lines are ignored.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	var (
		inst        Instance
		hasCapacity bool
		lineNb      int
	)
	for scanner.Scan() {
		lineNb++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if !hasCapacity {
			if len(fields) != 1 {
				return nil, errors.Errorf("line %d: invalid capacity %q", lineNb, line)
			}
			capacity, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, errors.Errorf("line %d: capacity not an int: %q", lineNb, fields[0])
			}
			inst.Capacity = capacity
			hasCapacity = true
			continue
		}
		item, err := parseItem(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid item %q", lineNb, line)
		}
		inst.Items = append(inst.Items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read instance")
	}
	if !hasCapacity {
		return nil, errors.New("missing capacity")
	}
	return &inst, nil
}

// parseItem parses the "id profit weight" fields of an item.
func parseItem(fields []string) (Item, error) {
	if len(fields) != 3 {
		return Item{}, errors.Errorf("expected 3 fields, got %d", len(fields))
	}
	var vals [3]int
	for i, field := range fields {
		val, err := strconv.Atoi(field)
		if err != nil {
			return Item{}, errors.Errorf("not an int: %q", field)
		}
		vals[i] = val
	}
	return Item{ID: vals[0], Profit: vals[1], Weight: vals[2]}, nil
}

// ParseFile opens and parses the instance stored at path.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	inst, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q", path)
	}
	return inst, nil
}

// ParseCSV parses a dataset made of a pallets and a truck CSV files.
//
// Both files start with a header line. Each pallet row is "id,weight,profit".
// The first column of each truck row is the capacity; if there are several rows, the last one is used.
func ParseCSV(pallets, truck io.Reader) (*Instance, error) {
	var inst Instance
	rows, err := readCSV(truck)
	if err != nil {
		return nil, errors.Wrap(err, "could not read truck")
	}
	if len(rows) == 0 {
		return nil, errors.New("missing capacity in truck")
	}
	for i, row := range rows {
		capacity, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errors.Errorf("truck row %d: capacity not an int: %q", i+1, row[0])
		}
		inst.Capacity = capacity
	}
	rows, err = readCSV(pallets)
	if err != nil {
		return nil, errors.Wrap(err, "could not read pallets")
	}
	for i, row := range rows {
		if len(row) < 3 {
			return nil, errors.Errorf("pallet row %d: expected 3 fields, got %d", i+1, len(row))
		}
		var vals [3]int
		for j := range vals {
			val, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, errors.Errorf("pallet row %d: not an int: %q", i+1, row[j])
			}
			vals[j] = val
		}
		inst.Items = append(inst.Items, Item{ID: vals[0], Weight: vals[1], Profit: vals[2]})
	}
	return &inst, nil
}

// readCSV returns all non-header records of a CSV stream.
func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// ParseCSVFiles opens and parses the dataset stored in the pallets and truck files.
func ParseCSVFiles(palletsPath, truckPath string) (*Instance, error) {
	pallets, err := os.Open(palletsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", palletsPath)
	}
	defer pallets.Close()
	truck, err := os.Open(truckPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", truckPath)
	}
	defer truck.Close()
	return ParseCSV(pallets, truck)
}
