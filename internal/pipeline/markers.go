package pipeline

import "regexp"

// Fixed textual markers and patterns of the Compras.gov.br ata report
// layout. The extraction cascade depends on these literals, so they are
// declared in one place: layout drift is a change here, not in the logic.

const (
	// Both markers must appear on a page for it to open a new ata.
	markerReportTitle = "RELATÓRIO ATA DE REGISTRO DE PREÇOS"
	markerAtaInfo     = "INFORMAÇÕES DA ATA"

	// Participation line code that gates item inclusion.
	participantCode = "160491"
)

var (
	reAtaNumber    = regexp.MustCompile(`(?i)\bn[ºo]\s*([0-9]{1,6}/[0-9]{4})\b`)
	reManagingUnit = regexp.MustCompile(`(?i)Unidade\s+Gerenciadora\s+([0-9]{6}\s*-\s*[^\n]+)`)
	reManagingCode = regexp.MustCompile(`(?i)Unidade\s+Gerenciadora\s+([0-9]{6})\b`)
	reValidity     = regexp.MustCompile(`(?is)Vig[êe]ncia.*?de\s*([0-3]?[0-9]/[01]?[0-9]/[0-9]{4})\s*a\s*([0-3]?[0-9]/[01]?[0-9]/[0-9]{4})`)

	reItemStart = regexp.MustCompile(`(?i)DETALHAMENTO\s+DO\s+ITEM\s+([0-9]{1,5})`)
	// Split marker uses literal single spaces, mirroring the line as the
	// report prints it; reItemStart tolerates extra whitespace when
	// re-locating the code inside a block.
	reItemSplit      = regexp.MustCompile(`(?i)DETALHAMENTO DO ITEM\s+[0-9]+`)
	reItemHeaderLine = regexp.MustCompile(`(?i)DETALHAMENTO DO ITEM\s+[0-9]+\s*\n`)

	// Section labels that terminate a description, for both the short
	// title and the detailed-description fallback.
	reDescriptionStop = regexp.MustCompile(`(?im)^\s*(Descri[cç][aã]o|C[oó]digo do|Tipo do item|Quantidade homologada|Vig[êe]ncia inicial|FORNECEDOR\(ES\)|UNIDADE\(S\))`)
	reDetailStop      = regexp.MustCompile(`(?im)^\s*(C[oó]digo\s+do\s*[\n ]*item\s*:?|Tipo\s+do\s+item\s*:?|Quantidade\s+homologada\s*:?|Vig[êe]ncia\s+inicial\s*:?|FORNECEDOR\(ES\)|UNIDADE\(S\))`)
	reDescLabel       = regexp.MustCompile(`(?im)^\s*Descri[cç][aã]o\b`)
	reDetailedLabel   = regexp.MustCompile(`(?i)\bdetalhada\s*:\s*`)

	// Supplier line: sequence number, CNPJ, free text, and the unit price
	// as the last numeric token on the line.
	reSupplierLine = regexp.MustCompile(`(?im)^\s*[0-9]{3}\s+[0-9]{2}\.[0-9]{3}\.[0-9]{3}/[0-9]{4}-[0-9]{2}\s+.*?\s+([0-9][0-9.,]*)\s*$`)

	// CRO/2 participation line: registered quantity, then quantity
	// available for reallocation.
	reParticipation = regexp.MustCompile(`(?i)\b` + participantCode + `\s+CRO/2\s+Participante\s+([0-9][0-9.,]*)\s+([0-9][0-9.,]*)`)
)
