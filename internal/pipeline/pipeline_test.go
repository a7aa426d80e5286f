package pipeline_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zigmaq/congreso-etl/internal/pipeline"
	"github.com/zigmaq/congreso-etl/internal/profile"
	"github.com/zigmaq/congreso-etl/internal/registry"
)

func writeSheet(t *testing.T, dir, name string, rows [][]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeDataset(t *testing.T, dir string) {
	t.Helper()
	writeSheet(t, dir, pipeline.MembersFile, [][]string{
		{"dip_id", "nombre_completo", "partido_diputado", "entidad", "fecha_nacimiento"},
		{"2", "Luis MORA", "PRI01", "Querétaro", "1965-11-02"},
		{"1", "Ana PÉREZ", "PAN", "Jalisco", "03/04/1971"},
	})
	writeSheet(t, dir, pipeline.CommitteesFile, [][]string{
		{"dip_id", "nombre_comite", "tipo_comite"},
		{"1", "Gobernación", "ORDINARIA"},
		{"1", "Salud", "ORDINARIA"},
	})
	writeSheet(t, dir, pipeline.CareerFile, [][]string{
		{"dip_id", "tipo", "descripcion", "detalle", "periodo", "actividad"},
		{"1", "ESCOLARIDAD", "Licenciatura", "UNAM", "1990-1994", ""},
		{"1", "TRAYECTORIA POLÍTICA", "Regidora", "Ayuntamiento", "", ""},
		{"2", "ESCOLARIDAD", "Maestría", "ITAM", "2001-2003", ""},
		{"2", "ACTIVIDADES DOCENTES", "Profesor titular", "", "", "Docente"},
	})
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

func cell(t *testing.T, rows [][]string, rowIdx int, col string) string {
	t.Helper()
	for i, name := range rows[0] {
		if name == col {
			return rows[rowIdx][i]
		}
	}
	t.Fatalf("column %q not in output header", col)
	return ""
}

func TestPipelineEndToEnd(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeDataset(t, in)

	p := pipeline.New(registry.Default(), 2, out, []string{"csv"})
	res, err := p.Run(context.Background(), pipeline.Dataset{Name: "lxi", Dir: in})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Members != 2 {
		t.Fatalf("members = %d, want 2", res.Members)
	}

	rows := readCSVFile(t, filepath.Join(out, "lxi_processed.csv"))
	if len(rows) != 3 {
		t.Fatalf("output rows = %d, want header + 2", len(rows))
	}

	// Rows ascending by dip_id despite shuffled input.
	if cell(t, rows, 1, "dip_id") != "1" || cell(t, rows, 2, "dip_id") != "2" {
		t.Errorf("row order: %q, %q", cell(t, rows, 1, "dip_id"), cell(t, rows, 2, "dip_id"))
	}

	// Sheet1 cleaning applied.
	if got := cell(t, rows, 2, "partido_diputado"); got != "PRI" {
		t.Errorf("partido_diputado = %q", got)
	}
	if got := cell(t, rows, 2, "fecha_nacimiento"); got != "02-11-1965" {
		t.Errorf("fecha_nacimiento = %q", got)
	}

	// Committee pivot joined; member 2 has no committee rows.
	if got := cell(t, rows, 1, "num_ordinaria"); got != "2" {
		t.Errorf("num_ordinaria = %q", got)
	}
	if got := cell(t, rows, 2, "num_ordinaria"); got != "" {
		t.Errorf("unmatched join should be null, got %q", got)
	}

	// Career unpivot joined, flags included.
	if got := cell(t, rows, 1, "escolaridad_1"); got != "Licenciatura" {
		t.Errorf("escolaridad_1 = %q", got)
	}
	if got := cell(t, rows, 1, "experiencia_pol"); got != "1" {
		t.Errorf("experiencia_pol = %q", got)
	}
	if got := cell(t, rows, 2, "actividad_docente"); got != "1" {
		t.Errorf("actividad_docente = %q", got)
	}
	if got := cell(t, rows, 1, "actividad_docente"); got != "0" {
		t.Errorf("member 1 actividad_docente = %q", got)
	}
}

func TestPipelineDeterministic(t *testing.T) {
	in := t.TempDir()
	writeDataset(t, in)

	outA := t.TempDir()
	outB := t.TempDir()
	for _, workers := range []int{1, 4} {
		out := outA
		if workers == 4 {
			out = outB
		}
		p := pipeline.New(registry.Default(), workers, out, []string{"csv"})
		if _, err := p.Run(context.Background(), pipeline.Dataset{Name: "lxi", Dir: in}); err != nil {
			t.Fatalf("Run (workers=%d): %v", workers, err)
		}
	}
	a, err := os.ReadFile(filepath.Join(outA, "lxi_processed.csv"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(outB, "lxi_processed.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("output differs across worker counts")
	}
}

func TestPipelineRejectsBrokenTemplateColumns(t *testing.T) {
	in := t.TempDir()
	writeDataset(t, in)
	// Drop the periodo column from the career sheet.
	writeSheet(t, in, pipeline.CareerFile, [][]string{
		{"dip_id", "tipo", "descripcion", "detalle"},
		{"1", "ESCOLARIDAD", "Licenciatura", "UNAM"},
	})

	p := pipeline.New(registry.Default(), 2, t.TempDir(), []string{"csv"})
	_, err := p.Run(context.Background(), pipeline.Dataset{Name: "lxi", Dir: in})
	var terr *profile.TemplateError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *profile.TemplateError", err)
	}
	if terr.Column != "periodo" {
		t.Errorf("Column = %q, want periodo", terr.Column)
	}
}

func TestPipelineMissingSheet(t *testing.T) {
	in := t.TempDir()
	writeDataset(t, in)
	if err := os.Remove(filepath.Join(in, pipeline.CommitteesFile)); err != nil {
		t.Fatal(err)
	}
	p := pipeline.New(registry.Default(), 2, t.TempDir(), []string{"csv"})
	_, err := p.Run(context.Background(), pipeline.Dataset{Name: "lxi", Dir: in})
	if err == nil || !strings.Contains(err.Error(), pipeline.CommitteesFile) {
		t.Fatalf("err = %v, want missing sheet2 error", err)
	}
}
