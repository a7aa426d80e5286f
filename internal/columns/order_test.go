package columns_test

import (
	"reflect"
	"testing"

	"github.com/zigmaq/congreso-etl/internal/columns"
	"github.com/zigmaq/congreso-etl/internal/profile"
)

func TestNaturalSortProperty(t *testing.T) {
	got := columns.Order(
		[]string{"x_2", "x_10", "x_1"},
		[]columns.Group{{Name: "x", Prefixes: []string{"x"}}},
	)
	want := []string{"x_1", "x_2", "x_10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Order = %v, want %v", got, want)
	}
}

func TestOrder_GroupSequenceAndOverlap(t *testing.T) {
	cols := []string{
		"exp_leg_previa_yr_2",
		"escolaridad_detalle_1",
		"exp_leg_previa_1",
		"dip_id",
		"exp_leg_previa",
		"escolaridad_1",
		"exp_leg_previa_yr_1",
		"nombre_completo",
		"exp_leg_previa_legislatura_1",
	}
	got := columns.Order(cols, columns.DefaultGroups())
	want := []string{
		"dip_id",
		"nombre_completo",
		"escolaridad_1",
		"escolaridad_detalle_1",
		"exp_leg_previa", // flag leads its group
		"exp_leg_previa_1",
		"exp_leg_previa_legislatura_1",
		"exp_leg_previa_yr_1",
		"exp_leg_previa_yr_2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Order =\n%v\nwant\n%v", got, want)
	}
}

func TestOrder_UnrecognizedColumnsKept(t *testing.T) {
	cols := []string{"zz_custom_10", "dip_id", "zz_custom_2"}
	got := columns.Order(cols, columns.DefaultGroups())
	want := []string{"dip_id", "zz_custom_2", "zz_custom_10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Order = %v, want %v", got, want)
	}
}

func TestOrder_Idempotent(t *testing.T) {
	cols := []string{"escolaridad_2", "dip_id", "escolaridad_1", "experiencia_apf", "detalle_exp_apf_1"}
	first := columns.Order(cols, columns.DefaultGroups())
	second := columns.Order(first, columns.DefaultGroups())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ordering not idempotent:\n%v\n%v", first, second)
	}
}

// Every column the profile templates can emit must be owned by a group, so
// the catch-all stays empty for well-formed data.
func TestDefaultGroups_CoverTemplateColumns(t *testing.T) {
	var emitted []string
	for _, tpl := range profile.Templates() {
		if tpl.Flag != "" {
			emitted = append(emitted, tpl.Flag)
		}
		for _, p := range tpl.Projections {
			emitted = append(emitted, p.Column+"_1", p.Column+"_12")
		}
		if tpl.Concat != nil {
			emitted = append(emitted, tpl.Concat.Column+"_1", tpl.Concat.Column+"_12")
		}
	}
	emitted = append(emitted, "dip_id")

	groups := columns.DefaultGroups()
	ordered := columns.Order(emitted, groups)
	if len(ordered) != len(emitted) {
		t.Fatalf("ordering changed column count: %d vs %d", len(ordered), len(emitted))
	}

	// Probe each column against a marker that is never owned and sorts
	// before any template column: if the column is owned by a group it
	// precedes the marker (groups come before the catch-all); if not, both
	// land in the catch-all and the marker sorts first.
	for _, c := range emitted {
		got := columns.Order([]string{c, "aaa_unknown_1"}, groups)
		if got[len(got)-1] != "aaa_unknown_1" {
			t.Errorf("column %q is not owned by any group", c)
		}
	}
}
