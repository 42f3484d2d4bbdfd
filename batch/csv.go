package batch

import (
	"encoding/csv"
	"io"
)

// WriteCSV serializes headers and rows as RFC 4180 CSV. Values with
// embedded commas or quotes are quoted by the encoder; the in-memory
// data stays untouched.
func (d ProcessedData) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(d.Headers); err != nil {
		return err
	}
	for _, r := range d.Rows {
		if err := cw.Write([]string{r.Original, r.Normalized, r.SHA256, r.Base64}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
