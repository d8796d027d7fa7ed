// Package export writes product data in the download formats the admin
// panel offers.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kizzez/cafeadmin/internal/domain"
)

// csvHeader is the fixed export column order
const csvHeader = "ID,Name,Description,Category,Price,Stock,Status"

// Products writes the catalog as CSV. Every field is double-quoted with
// internal quotes doubled, matching what spreadsheet imports expect.
func Products(w io.Writer, products []domain.Product) error {
	if _, err := io.WriteString(w, csvHeader+"\n"); err != nil {
		return err
	}
	for _, p := range products {
		fields := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Desc,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Stock),
			p.Status,
		}
		for i, f := range fields {
			fields[i] = quote(f)
		}
		if _, err := io.WriteString(w, strings.Join(fields, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Filename builds the download name: <prefix>_<ISO-date>.csv
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("2006-01-02"))
}
