// Package sheets cleans the member roster (sheet1) and pivots committee
// memberships (sheet2) into wide per-member rows. The career-event sheet
// (sheet3) is handled by the profile package.
package sheets

import (
	"strings"
	"time"

	"github.com/zigmaq/congreso-etl/internal/registry"
	"github.com/zigmaq/congreso-etl/internal/table"
	"github.com/zigmaq/congreso-etl/internal/textnorm"
)

// Birthdate formats tried in order; the first that parses wins.
var birthdateLayouts = []string{"02-01-2006", "2006-01-02", "02/01/2006"}

const birthdateOut = "02-01-2006"

// CleanMembers maps coded labels to canonical values, normalizes names and
// reformats birthdates, in place. Columns absent from the roster are skipped;
// unparseable dates become null rather than failing the run.
func CleanMembers(t *table.Table, reg *registry.Registry) {
	mapCol(t, "partido_diputado", reg.Party)
	mapCol(t, "tipo_eleccion", reg.ElectionType)
	mapCol(t, "entidad", reg.State)
	mapCol(t, "legislatura_activo", reg.Legislature)
	mapCol(t, "nombre_completo", textnorm.Clean)
	mapCol(t, "cabecera", textnorm.Clean)
	mapCol(t, "suplente", func(s string) string {
		return strings.TrimPrefix(textnorm.Clean(s), "de ")
	})

	if t.HasColumn("fecha_nacimiento") {
		for _, row := range t.Rows() {
			raw, ok := row["fecha_nacimiento"]
			if !ok {
				continue
			}
			if formatted, ok := parseBirthdate(raw); ok {
				row["fecha_nacimiento"] = formatted
			} else {
				delete(row, "fecha_nacimiento")
			}
		}
	}
}

func mapCol(t *table.Table, col string, fn func(string) string) {
	if !t.HasColumn(col) {
		return
	}
	for _, row := range t.Rows() {
		if v, ok := row[col]; ok {
			row[col] = fn(v)
		}
	}
}

func parseBirthdate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range birthdateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.Format(birthdateOut), true
		}
	}
	return "", false
}
