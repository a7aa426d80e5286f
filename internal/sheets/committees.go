package sheets

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/zigmaq/congreso-etl/internal/registry"
	"github.com/zigmaq/congreso-etl/internal/table"
	"github.com/zigmaq/congreso-etl/internal/textnorm"
)

// committeeTypes is the fixed output order of the committee groups.
var committeeTypes = []string{"ordinaria", "comite", "especial", "bicamaral"}

// PivotCommittees turns the narrow committee-membership rows into one wide
// row per member: num_<tipo> counts (0 when the member sits on none),
// <tipo>_<i> normalized committee names numbered in source row order, and
// total_comites. Rows are emitted in ascending dip_id order. Rows without a
// parseable dip_id are dropped with a warning.
func PivotCommittees(t *table.Table, reg *registry.Registry) *table.Table {
	type membership struct {
		tipo string
		name string
	}
	byMember := make(map[int][]membership)
	var ids []int
	dropped := 0
	for _, row := range t.Rows() {
		id, ok := parseIntField(row, "dip_id")
		if !ok {
			dropped++
			continue
		}
		if _, seen := byMember[id]; !seen {
			ids = append(ids, id)
		}
		byMember[id] = append(byMember[id], membership{
			tipo: reg.CommitteeType(row["tipo_comite"]),
			name: textnorm.Clean(row["nombre_comite"]),
		})
	}
	if dropped > 0 {
		slog.Warn("committee rows without member id dropped", "rows", dropped)
	}
	sort.Ints(ids)

	out := table.New("dip_id")
	for _, id := range ids {
		keys := []string{"dip_id"}
		row := table.Row{"dip_id": strconv.Itoa(id)}
		total := 0
		for _, tipo := range committeeTypes {
			n := 0
			for _, m := range byMember[id] {
				if m.tipo != tipo {
					continue
				}
				n++
				if m.name != "" {
					col := tipo + "_" + strconv.Itoa(n)
					keys = append(keys, col)
					row[col] = m.name
				}
			}
			countCol := "num_" + tipo
			keys = append(keys, countCol)
			row[countCol] = strconv.Itoa(n)
			total += n
		}
		keys = append(keys, "total_comites")
		row["total_comites"] = strconv.Itoa(total)
		out.Append(keys, row)
	}
	return out
}

func parseIntField(row table.Row, col string) (int, bool) {
	v, ok := row[col]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
