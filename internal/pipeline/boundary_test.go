package pipeline

import "testing"

const headerPageA = `Relatório Ata de Registro de Preços

Informações da Ata
Ata de Registro de Preços nº 045/2024
Unidade Gerenciadora 926348 - Comando Regional de Obras
Vigência: período de 01/01/2024
a 31/12/2024`

func TestIsBoundaryPage(t *testing.T) {
	if !IsBoundaryPage(headerPageA) {
		t.Fatal("header page not detected")
	}
	if !IsBoundaryPage("INFORMAÇÕES DA ATA ... RELATÓRIO ATA DE REGISTRO DE PREÇOS") {
		t.Fatal("marker order should not matter")
	}
	if IsBoundaryPage("Relatório Ata de Registro de Preços sem a outra seção") {
		t.Fatal("single marker must not open a record")
	}
	if IsBoundaryPage("") {
		t.Fatal("empty page is not a boundary")
	}
}

func TestExtractAtaMeta(t *testing.T) {
	meta := ExtractAtaMeta(headerPageA)

	if meta.Number != "045/2024" {
		t.Fatalf("number=%q", meta.Number)
	}
	if meta.ManagingUnit != "926348 - Comando Regional de Obras" {
		t.Fatalf("managingUnit=%q", meta.ManagingUnit)
	}
	if meta.Validity != "01/01/2024 a 31/12/2024" {
		t.Fatalf("validity=%q", meta.Validity)
	}
}

func TestExtractAtaMetaQuietOnNoMatch(t *testing.T) {
	meta := ExtractAtaMeta("RELATÓRIO ATA DE REGISTRO DE PREÇOS\nINFORMAÇÕES DA ATA\nsem campos")
	if meta.Number != "" || meta.Validity != "" || meta.ManagingUnit != "" {
		t.Fatalf("expected all-empty meta, got %+v", meta)
	}
}
