package pedidos

import (
	"testing"

	"github.com/creativus9/Railway-Repositorio/catalog"
)

func TestDecodeSku(t *testing.T) {
	tests := []struct {
		Title    string
		Sku      string
		Quantity int
		Expected Decoded
	}{
		{
			Title:    "Valid SKU with quantity multiplier",
			Sku:      "PLAC-2020-1FS-XX-DOU-001-0001F",
			Quantity: 3,
			Expected: Decoded{
				FinalSku:      "PLAC-2020-1FS-XX-DOU-003-0001F",
				TotalUnits:    3,
				Situacao:      "Fazer arquivo",
				Material:      "Dourado",
				QntPlacas:     1,
				Formato:       "Plaquinha",
				Tamanho:       "2.0x2.0 Cm",
				Furo:          "1 furo Superior",
				SkuPlanoCorte: "PLAC-2020-1FS-XX-DOU.dxf",
				TipoArte:      "Escrita/Logo",
			},
		},
		{
			Title:    "Trailing annotation is stripped",
			Sku:      "PLAC-2020-1FS-XX-DOU-001-0001F (brinde)",
			Quantity: 1,
			Expected: Decoded{
				FinalSku:      "PLAC-2020-1FS-XX-DOU-001-0001F",
				TotalUnits:    1,
				Situacao:      "Fazer arquivo",
				Material:      "Dourado",
				QntPlacas:     1,
				Formato:       "Plaquinha",
				Tamanho:       "2.0x2.0 Cm",
				Furo:          "1 furo Superior",
				SkuPlanoCorte: "PLAC-2020-1FS-XX-DOU.dxf",
				TipoArte:      "Escrita/Logo",
			},
		},
		{
			Title:    "Standardized artwork variant",
			Sku:      "REDO-2508-0SF-XX-PRA-002-0000P",
			Quantity: 2,
			Expected: Decoded{
				FinalSku:      "REDO-2508-0SF-XX-PRA-004-0000P",
				TotalUnits:    4,
				Situacao:      "Arquivo Padronizado",
				Material:      "Prata",
				QntPlacas:     1,
				Formato:       "Redondo",
				Tamanho:       "2.5x0.8 Cm",
				Furo:          "SEM FURO",
				SkuPlanoCorte: "REDO-2508-0SF-XX-PRA.dxf",
				TipoArte:      "Sem gravação",
			},
		},
		{
			Title:    "Unknown codes degrade to unknown labels",
			Sku:      "ZZZZ-9999-9ZZ-XX-ZZZ-010-9999F",
			Quantity: 1,
			Expected: Decoded{
				FinalSku:      "ZZZZ-9999-9ZZ-XX-ZZZ-010-9999F",
				TotalUnits:    10,
				Situacao:      "Fazer arquivo",
				Material:      "Desconhecido",
				QntPlacas:     0,
				Formato:       "Desconhecido",
				Tamanho:       "9.9x9.9 Cm",
				Furo:          "Desconhecido",
				SkuPlanoCorte: "ZZZZ-9999-9ZZ-XX-ZZZ.dxf",
				TipoArte:      "Desconhecido",
			},
		},
		{
			Title:    "Too few segments falls back to the sentinel",
			Sku:      "BAD-CODE",
			Quantity: 1,
			Expected: Decoded{
				FinalSku:      "XXXX-XXXX-XXX-XX-XXX-001-XXXXF",
				TotalUnits:    1,
				Situacao:      "Fazer arquivo",
				Material:      "Desconhecido",
				QntPlacas:     0,
				Formato:       "Desconhecido",
				Tamanho:       "Desconhecido",
				Furo:          "Desconhecido",
				SkuPlanoCorte: "N/A",
				TipoArte:      "Desconhecido",
			},
		},
		{
			Title:    "Non-numeric quantity segment falls back to the sentinel",
			Sku:      "PLAC-2020-1FS-XX-DOU-ABC-0001F",
			Quantity: 2,
			Expected: Decoded{
				FinalSku:      "XXXX-XXXX-XXX-XX-XXX-002-XXXXF",
				TotalUnits:    2,
				Situacao:      "Fazer arquivo",
				Material:      "Desconhecido",
				QntPlacas:     0,
				Formato:       "Desconhecido",
				Tamanho:       "Desconhecido",
				Furo:          "Desconhecido",
				SkuPlanoCorte: "N/A",
				TipoArte:      "Desconhecido",
			},
		},
		{
			Title:    "Quantity overflowing the 3-digit field",
			Sku:      "PLAC-2020-1FS-XX-DOU-500-0001F",
			Quantity: 3,
			Expected: Decoded{
				FinalSku:      "PLAC-2020-1FS-XX-DOU-1500-0001F",
				TotalUnits:    1500,
				Situacao:      "Fazer arquivo",
				Material:      "Dourado",
				QntPlacas:     30,
				Formato:       "Plaquinha",
				Tamanho:       "2.0x2.0 Cm",
				Furo:          "1 furo Superior",
				SkuPlanoCorte: "PLAC-2020-1FS-XX-DOU.dxf",
				TipoArte:      "Escrita/Logo",
			},
		},
	}
	tables := catalog.DefaultTables()
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res := DecodeSku(tt.Sku, tt.Quantity, tables)
			if res != tt.Expected {
				t.Fatalf("decoded attributes do not match.\nExpected=%+v\nGot=%+v", tt.Expected, res)
			}
		})
	}
}

func TestDecodeSku_Idempotence(t *testing.T) {
	tables := catalog.DefaultTables()
	first := DecodeSku("PLAC-2020-1FS-XX-DOU-001-0001F", 3, tables)
	second := DecodeSku(first.FinalSku, 1, tables)
	if second.FinalSku != first.FinalSku {
		t.Fatalf("re-decoding the final SKU changed it: %s != %s", second.FinalSku, first.FinalSku)
	}
	if second != first {
		t.Fatalf("re-decoding the final SKU changed the attributes.\nFirst=%+v\nSecond=%+v", first, second)
	}
}
