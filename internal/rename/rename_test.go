package rename

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildName(t *testing.T) {
	if got := BuildName("045/2024", "926348"); got != "ATA_045-2024_UG-926348.pdf" {
		t.Fatalf("got %q", got)
	}
}

func TestFindAtaIdentity(t *testing.T) {
	pages := []string{
		"",
		"página de rosto sem os campos",
		"Ata de Registro de Preços nº 045/2024",
		"Unidade Gerenciadora 926348 - Comando Regional de Obras",
		"Ata de Registro de Preços nº 999/2099",
	}

	number, unit := FindAtaIdentity(pages)
	if number != "045/2024" {
		t.Fatalf("number=%q", number)
	}
	if unit != "926348" {
		t.Fatalf("unit=%q", unit)
	}
}

func TestFindAtaIdentityFirstMatchWins(t *testing.T) {
	pages := []string{
		"nº 001/2023 Unidade Gerenciadora 111111 - Primeira",
		"nº 002/2024 Unidade Gerenciadora 222222 - Segunda",
	}

	number, unit := FindAtaIdentity(pages)
	if number != "001/2023" || unit != "111111" {
		t.Fatalf("number=%q unit=%q", number, unit)
	}
}

func TestFindAtaIdentityMissingFields(t *testing.T) {
	number, unit := FindAtaIdentity([]string{"texto qualquer sem os padrões"})
	if number != "" || unit != "" {
		t.Fatalf("number=%q unit=%q", number, unit)
	}
}

func TestNextAvailable(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "ATA_045-2024_UG-926348.pdf")

	if got := NextAvailable(target); got != target {
		t.Fatalf("got %q want %q", got, target)
	}

	mustTouch(t, target)
	want := filepath.Join(tmp, "ATA_045-2024_UG-926348_1.pdf")
	if got := NextAvailable(target); got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	mustTouch(t, want)
	want = filepath.Join(tmp, "ATA_045-2024_UG-926348_2.pdf")
	if got := NextAvailable(target); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestDeriveTargetRejectsNonPDF(t *testing.T) {
	if _, err := DeriveTarget("/tmp/relatorio.txt"); !errors.Is(err, ErrNotPDF) {
		t.Fatalf("err=%v", err)
	}
}

func TestDeriveTargetRejectsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nao-existe.pdf")
	_, err := DeriveTarget(missing)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotPDF) || errors.Is(err, ErrNumberNotFound) || errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("wrong error class: %v", err)
	}
}

func mustTouch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}
