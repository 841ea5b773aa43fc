package pedidos

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/creativus9/Railway-Repositorio/catalog"
)

// SentinelCode replaces any SKU that does not have at least 7 hyphen-delimited
// segments with a numeric quantity segment. Decoding a sentinel still yields a
// complete (all-unknown) record instead of an error.
const SentinelCode = "XXXX-XXXX-XXX-XX-XXX-XXX-XXXXF"

const cutPlanExtension = ".dxf"
const cutPlanUnavailable = "N/A"

const StatusMakeFile = "Fazer arquivo"
const StatusStandardFile = "Arquivo Padronizado"

// Decoded is the normalized attribute set extracted from one order SKU.
type Decoded struct {
	FinalSku      string
	TotalUnits    int
	Situacao      string
	Material      string
	QntPlacas     int
	Formato       string
	Tamanho       string
	Furo          string
	SkuPlanoCorte string
	TipoArte      string
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// formatSize renders the size segment (WWHH, decimeters) as "W.WxH.H Cm".
// Any non-numeric half degrades the whole size to the unknown label.
func formatSize(sizeCode string) string {
	if len(sizeCode) < 4 {
		return catalog.UnknownLabel
	}
	width, errW := strconv.Atoi(sizeCode[0:2])
	height, errH := strconv.Atoi(sizeCode[2:])
	if errW != nil || errH != nil {
		return catalog.UnknownLabel
	}
	return fmt.Sprintf("%.1fx%.1f Cm", float64(width)/10, float64(height)/10)
}

// DecodeSku turns a raw order SKU plus the order line's quantity into the
// normalized attribute set. It is total: malformed input degrades to the
// sentinel code, table misses degrade to unknown labels, and no input ever
// produces an error.
func DecodeSku(rawSku string, quantity int, tables *catalog.Tables) Decoded {
	// Upstream sometimes appends a parenthetical note after the code.
	sku, _, _ := strings.Cut(rawSku, " ")

	parts := strings.Split(sku, "-")
	if len(parts) < 7 || !isDigits(parts[5]) {
		log.Printf("Invalid SKU %q, substituting the placeholder code", rawSku)
		sku = SentinelCode
		parts = strings.Split(sku, "-")
	}

	baseUnits := 1
	if isDigits(parts[5]) {
		baseUnits, _ = strconv.Atoi(parts[5])
	}
	totalUnits := baseUnits * quantity
	parts[5] = fmt.Sprintf("%03d", totalUnits)
	finalSku := strings.Join(parts, "-")

	placas := 0
	if yield := tables.PanelYield(parts[1]); yield != 0 {
		placas = (totalUnits + yield - 1) / yield
	}

	situacao := StatusStandardFile
	if strings.HasSuffix(finalSku, "F") {
		situacao = StatusMakeFile
	}

	skuPlanoCorte := cutPlanUnavailable
	if !strings.Contains(finalSku, "XXXX") {
		skuPlanoCorte = strings.Join(parts[0:5], "-") + cutPlanExtension
	}

	return Decoded{
		FinalSku:      finalSku,
		TotalUnits:    totalUnits,
		Situacao:      situacao,
		Material:      tables.Material(parts[4]),
		QntPlacas:     placas,
		Formato:       tables.Shape(parts[0]),
		Tamanho:       formatSize(parts[1]),
		Furo:          tables.Hole(parts[2]),
		SkuPlanoCorte: skuPlanoCorte,
		TipoArte:      tables.Variation(parts[6]),
	}
}
