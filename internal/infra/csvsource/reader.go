package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adetunji/coldreach/internal/entity"
)

// Column headers the reader requires. Any other columns in the file are
// ignored.
const (
	colCompany = "Company"
	colWebsite = "Website"
	colStatus  = "Status"
)

// ReadCompanies parses a companies CSV with header-mapped columns, in file
// order. Rows shorter than the furthest required column are skipped.
func ReadCompanies(r io.Reader) ([]entity.Company, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := map[string]int{colCompany: -1, colWebsite: -1, colStatus: -1}
	for i, col := range header {
		name := strings.TrimSpace(col)
		for want := range idx {
			if strings.EqualFold(name, want) {
				idx[want] = i
			}
		}
	}
	for want, i := range idx {
		if i < 0 {
			return nil, fmt.Errorf("missing required column %q", want)
		}
	}

	var companies []entity.Company
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if len(rec) <= idx[colCompany] || len(rec) <= idx[colWebsite] {
			continue
		}
		c := entity.Company{
			Name:    strings.TrimSpace(rec[idx[colCompany]]),
			Website: strings.TrimSpace(rec[idx[colWebsite]]),
		}
		if idx[colStatus] < len(rec) {
			c.Status = strings.TrimSpace(rec[idx[colStatus]])
		}
		if c.Name == "" && c.Website == "" {
			continue
		}
		companies = append(companies, c)
	}
	return companies, nil
}

// ReadCompaniesFile reads and parses the CSV at path.
func ReadCompaniesFile(path string) ([]entity.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open companies csv: %w", err)
	}
	defer f.Close()
	return ReadCompanies(f)
}
