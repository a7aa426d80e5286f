package profile

import (
	"fmt"
	"strings"
)

// Source column names in the events sheet.
const (
	colDescripcion = "descripcion"
	colDetalle     = "detalle"
	colPeriodo     = "periodo"
	colActividad   = "actividad"
)

// Projection emits one numbered detail column per event: "{Column}_{i}" from
// the event's Source attribute.
type Projection struct {
	Column string
	Source string
}

// ConcatRule emits a single numbered column "{Column}_{i}" whose value is the
// event's Sources joined with commas. Empty parts are joined as-is, so a null
// middle field yields a doubled delimiter; downstream consumers rely on that
// literal layout.
type ConcatRule struct {
	Column  string
	Sources []string
}

// Predicate restricts a presence flag: the flag is 1 only if at least one
// partitioned event has Column equal to Equals. The predicate column is
// optional in the input schema; when absent the flag is 0.
type Predicate struct {
	Column string
	Equals string
}

// Template fixes the wide-column layout for one canonical category: its
// presence-flag column (empty Flag means the category emits no flag), an
// optional flag predicate, and either independent projections or one
// concatenated projection.
type Template struct {
	Key         string
	Flag        string
	Predicate   *Predicate
	Projections []Projection
	Concat      *ConcatRule
}

// templates lists every defined category in output order. The order is part
// of the contract: it drives both profile assembly and the column-group
// sequence of the final table.
var templates = []Template{
	{
		// Historical exception: schooling never carried a presence flag.
		Key: "escolaridad",
		Projections: []Projection{
			{Column: "escolaridad", Source: colDescripcion},
			{Column: "escolaridad_detalle", Source: colDetalle},
			{Column: "escolaridad_periodo", Source: colPeriodo},
		},
	},
	{
		Key:  "exp_politica",
		Flag: "experiencia_pol",
		Projections: []Projection{
			{Column: "exp_pol", Source: colDescripcion},
			{Column: "exp_pol_org", Source: colDetalle},
		},
	},
	{
		Key:  "exp_laboral_privada",
		Flag: "empleo_privado",
		Projections: []Projection{
			{Column: "empleo_privado", Source: colDescripcion},
			{Column: "empleo_privado_empresa", Source: colDetalle},
			{Column: "empleo_privado_yr", Source: colPeriodo},
		},
	},
	{
		Key:  "exp_leg_previa",
		Flag: "exp_leg_previa",
		Projections: []Projection{
			{Column: "exp_leg_previa", Source: colDescripcion},
			{Column: "exp_leg_previa_legislatura", Source: colDetalle},
			{Column: "exp_leg_previa_yr", Source: colPeriodo},
		},
	},
	{
		Key:    "exp_apf",
		Flag:   "experiencia_apf",
		Concat: &ConcatRule{Column: "detalle_exp_apf", Sources: []string{colDescripcion, colDetalle}},
	},
	{
		Key:    "exp_aplocal",
		Flag:   "experiencia_aplocal",
		Concat: &ConcatRule{Column: "detalle_exp_aplocal", Sources: []string{colDescripcion, colDetalle}},
	},
	{
		Key:  "cargos_legislativos_previa",
		Flag: "experiencia_legislativa",
		Projections: []Projection{
			{Column: "experiencia_legislativa_detalle", Source: colDescripcion},
			{Column: "experiencia_legislativa_legislatura", Source: colDetalle},
		},
	},
	{
		Key:  "cargos_electos_previos",
		Flag: "cargo_eleccion_popular",
		Projections: []Projection{
			{Column: "cargo_eleccion_popular", Source: colDescripcion},
			{Column: "cargo_eleccion_popular_partido", Source: colDetalle},
			{Column: "cargo_eleccion_popular_periodo", Source: colPeriodo},
		},
	},
	{
		Key:  "exp_asociaciones",
		Flag: "asociaciones",
		Projections: []Projection{
			{Column: "asociaciones_rol", Source: colDescripcion},
			{Column: "asociaciones_detalle", Source: colDetalle},
		},
	},
	{
		// Flag-only, and the flag needs a matching actividad value rather
		// than mere partition membership.
		Key:       "exp_docente",
		Flag:      "actividad_docente",
		Predicate: &Predicate{Column: colActividad, Equals: "Docente"},
	},
	{
		Key:  "publicaciones",
		Flag: "publicaciones",
		Projections: []Projection{
			{Column: "publicacion", Source: colDescripcion},
		},
	},
	{
		Key:    "exp_empresarial",
		Flag:   "actividad_empresarial",
		Concat: &ConcatRule{Column: "actividad_empresarial", Sources: []string{colDetalle, colDescripcion, colPeriodo}},
	},
	{
		// Flag-only.
		Key:  "logros_deportivos",
		Flag: "deportista_altorend",
	},
}

// Templates returns the category templates in their fixed output order.
// The returned slice must not be mutated.
func Templates() []Template {
	return templates
}

// TemplateError reports a category template that projects a column missing
// from the events sheet entirely. This is a configuration/shape mismatch and
// is fatal before any row is processed, unlike a per-row null which merely
// defaults to "".
type TemplateError struct {
	Category string
	Column   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("category %s: template projects column %q which is absent from the events sheet", e.Category, e.Column)
}

// ValidateTemplates checks every template's projected source columns against
// the events sheet header. Predicate columns are exempt: an absent predicate
// column just leaves the flag at 0.
func ValidateTemplates(header []string) error {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = true
	}
	for _, tpl := range templates {
		for _, p := range tpl.Projections {
			if !have[p.Source] {
				return &TemplateError{Category: tpl.Key, Column: p.Source}
			}
		}
		if tpl.Concat != nil {
			for _, s := range tpl.Concat.Sources {
				if !have[s] {
					return &TemplateError{Category: tpl.Key, Column: s}
				}
			}
		}
	}
	return nil
}
