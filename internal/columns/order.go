// Package columns produces the definitive column sequence of the final wide
// table: a fixed base-info block, then the committee and category groups in a
// fixed sequence, each natural-sorted, and a trailing catch-all for anything
// unrecognized.
package columns

import (
	"sort"
	"strings"
)

// Group owns a set of output columns: Exact names in a fixed literal order
// (base info and presence flags) plus Prefixes owning the numbered detail
// columns "<prefix>_<n>". Ownership is resolved by longest matching prefix
// across all groups, so overlapping names like exp_leg_previa and
// exp_leg_previa_yr never misfile a column.
type Group struct {
	Name     string
	Exact    []string
	Prefixes []string
}

// DefaultGroups is the static presentation order of the output table. The
// full possible column set is enumerable from this table without running any
// data; it must list every column the sheet processors and the profile
// templates can emit.
func DefaultGroups() []Group {
	return []Group{
		{Name: "base_info", Exact: []string{
			"dip_id",
			"nombre_completo",
			"partido_diputado",
			"tipo_eleccion",
			"entidad",
			"distrito",
			"cabecera",
			"circunscripcion",
			"fecha_nacimiento",
			"suplente",
			"legislatura_activo",
			"total_comites",
		}},
		{Name: "comite_ordinaria", Exact: []string{"num_ordinaria"}, Prefixes: []string{"ordinaria"}},
		{Name: "comite_comite", Exact: []string{"num_comite"}, Prefixes: []string{"comite"}},
		{Name: "comite_especial", Exact: []string{"num_especial"}, Prefixes: []string{"especial"}},
		{Name: "comite_bicamaral", Exact: []string{"num_bicamaral"}, Prefixes: []string{"bicamaral"}},
		{Name: "escolaridad", Prefixes: []string{"escolaridad", "escolaridad_detalle", "escolaridad_periodo"}},
		{Name: "exp_politica", Exact: []string{"experiencia_pol"}, Prefixes: []string{"exp_pol", "exp_pol_org"}},
		{Name: "empleo_privado", Exact: []string{"empleo_privado"}, Prefixes: []string{"empleo_privado", "empleo_privado_empresa", "empleo_privado_yr"}},
		{Name: "exp_leg_previa", Exact: []string{"exp_leg_previa"}, Prefixes: []string{"exp_leg_previa", "exp_leg_previa_legislatura", "exp_leg_previa_yr"}},
		{Name: "exp_apf", Exact: []string{"experiencia_apf"}, Prefixes: []string{"detalle_exp_apf"}},
		{Name: "exp_aplocal", Exact: []string{"experiencia_aplocal"}, Prefixes: []string{"detalle_exp_aplocal"}},
		{Name: "experiencia_legislativa", Exact: []string{"experiencia_legislativa"}, Prefixes: []string{"experiencia_legislativa_detalle", "experiencia_legislativa_legislatura"}},
		{Name: "cargo_eleccion_popular", Exact: []string{"cargo_eleccion_popular"}, Prefixes: []string{"cargo_eleccion_popular", "cargo_eleccion_popular_partido", "cargo_eleccion_popular_periodo"}},
		{Name: "asociaciones", Exact: []string{"asociaciones"}, Prefixes: []string{"asociaciones_rol", "asociaciones_detalle"}},
		{Name: "actividad_docente", Exact: []string{"actividad_docente"}},
		{Name: "publicaciones", Exact: []string{"publicaciones"}, Prefixes: []string{"publicacion"}},
		{Name: "actividad_empresarial", Exact: []string{"actividad_empresarial"}, Prefixes: []string{"actividad_empresarial"}},
		{Name: "deportista_altorend", Exact: []string{"deportista_altorend"}},
	}
}

// Order groups the given column set and returns the final output sequence:
// each group's Exact columns in their literal order (those actually present),
// then the group's numbered columns natural-sorted. Columns owned by no group
// land in a trailing catch-all, natural-sorted rather than dropped.
func Order(cols []string, groups []Group) []string {
	exactOwner := make(map[string]int)
	type prefixRef struct {
		group  int
		prefix string
	}
	var prefixes []prefixRef
	for gi, g := range groups {
		for _, e := range g.Exact {
			exactOwner[e] = gi
		}
		for _, p := range g.Prefixes {
			prefixes = append(prefixes, prefixRef{group: gi, prefix: p})
		}
	}
	// Longest prefix wins when several could claim the same column.
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i].prefix) > len(prefixes[j].prefix)
	})

	present := make(map[string]bool, len(cols))
	numbered := make([][]string, len(groups))
	var rest []string
	for _, c := range cols {
		present[c] = true
		if _, ok := exactOwner[c]; ok {
			continue
		}
		owner := -1
		for _, pr := range prefixes {
			if isNumberedOf(c, pr.prefix) {
				owner = pr.group
				break
			}
		}
		if owner >= 0 {
			numbered[owner] = append(numbered[owner], c)
		} else {
			rest = append(rest, c)
		}
	}

	out := make([]string, 0, len(cols))
	for gi, g := range groups {
		for _, e := range g.Exact {
			if present[e] {
				out = append(out, e)
			}
		}
		sort.SliceStable(numbered[gi], func(i, j int) bool {
			return NaturalLess(numbered[gi][i], numbered[gi][j])
		})
		out = append(out, numbered[gi]...)
	}
	sort.SliceStable(rest, func(i, j int) bool { return NaturalLess(rest[i], rest[j]) })
	return append(out, rest...)
}

// isNumberedOf reports whether col is prefix + "_" + digits.
func isNumberedOf(col, prefix string) bool {
	if !strings.HasPrefix(col, prefix) || len(col) < len(prefix)+2 {
		return false
	}
	tail := col[len(prefix):]
	if tail[0] != '_' {
		return false
	}
	for i := 1; i < len(tail); i++ {
		if tail[i] < '0' || tail[i] > '9' {
			return false
		}
	}
	return true
}

// NaturalLess compares two strings splitting them into alternating digit and
// non-digit runs: non-digit runs compare lexically, digit runs numerically,
// so "x_2" sorts before "x_10".
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		aRun, aNum, aRest := nextRun(a)
		bRun, bNum, bRest := nextRun(b)
		if aNum && bNum {
			if x, y := runValue(aRun), runValue(bRun); x != y {
				return x < y
			}
		} else if aRun != bRun {
			return aRun < bRun
		}
		a, b = aRest, bRest
	}
	return a == "" && b != ""
}

func nextRun(s string) (run string, numeric bool, rest string) {
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }
	numeric = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], numeric, s[i:]
}

func runValue(run string) int {
	n := 0
	for i := 0; i < len(run); i++ {
		n = n*10 + int(run[i]-'0')
	}
	return n
}
