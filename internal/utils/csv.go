package utils

import "strings"

// WriteCSV renders rows as CSV with every field quoted and embedded
// quotes doubled, matching what the admin panel's spreadsheet import
// expects. encoding/csv is not used because it only quotes fields that
// need it, and the export format quotes unconditionally.
func WriteCSV(header []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString(strings.Join(header, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
