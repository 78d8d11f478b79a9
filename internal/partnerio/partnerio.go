// Package partnerio reads partner lists and writes commission results as JSON
// files.
package partnerio

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"commission-engine/internal/model"
)

// ReadPartners decodes a JSON array of partners.
func ReadPartners(r io.Reader) ([]model.Partner, error) {
	var partners []model.Partner
	if err := json.NewDecoder(r).Decode(&partners); err != nil {
		return nil, fmt.Errorf("decode partners: %w", err)
	}
	return partners, nil
}

func LoadPartners(path string) ([]model.Partner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open partners file: %w", err)
	}
	defer f.Close()

	return ReadPartners(f)
}

// WriteCommissions encodes the result as a two-space indented object with
// keys in sorted order.
func WriteCommissions(w io.Writer, commissions map[string]float64) error {
	b, err := json.MarshalIndent(commissions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode commissions: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func SaveCommissions(path string, commissions map[string]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := WriteCommissions(f, commissions); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
