package catalog

// Tables holds every code-to-label mapping used while decoding an order SKU,
// plus the shop-account registry. The zero value is unusable; start from
// DefaultTables and override via CATALOG_DATA_JSON / CATALOG_DATA_URL.
type Tables struct {
	PanelYields map[string]int    `json:"panel_yields"`
	Materials   map[string]string `json:"materials"`
	Shapes      map[string]string `json:"shapes"`
	Holes       map[string]string `json:"holes"`
	Variations  map[string]string `json:"variations"`
	Shops       map[string]string `json:"shops"`
}

const UnknownLabel = "Desconhecido"
const UnknownShopLabel = "Conta Desconhecida"

// PanelYield returns how many finished units one physical sheet produces for
// a size code, 0 when the yield is unknown.
func (t *Tables) PanelYield(sizeCode string) int {
	return t.PanelYields[sizeCode]
}

func lookup(table map[string]string, code string) string {
	if label, found := table[code]; found {
		return label
	}
	return UnknownLabel
}

func (t *Tables) Material(code string) string  { return lookup(t.Materials, code) }
func (t *Tables) Shape(code string) string     { return lookup(t.Shapes, code) }
func (t *Tables) Hole(code string) string      { return lookup(t.Holes, code) }
func (t *Tables) Variation(code string) string { return lookup(t.Variations, code) }

// Shop resolves a marketplace shop ID to its internal account label. The
// second return reports whether the shop is registered; callers are expected
// to log a warning and use UnknownShopLabel when it is not.
func (t *Tables) Shop(shopId string) (string, bool) {
	label, found := t.Shops[shopId]
	if !found {
		return UnknownShopLabel, false
	}
	return label, true
}

// DefaultTables returns the built-in catalog, matching the production mappings
// the service shipped with. A fresh copy is returned on every call so loaded
// overrides never leak into the defaults.
func DefaultTables() *Tables {
	return &Tables{
		PanelYields: map[string]int{
			"2020": 50, "3015": 50, "4020": 25, "1515": 55, "3030": 24,
			"3010": 70, "5151": 10, "3013": 50, "4010": 50, "4015": 35,
			"2508": 105, "3510": 60, "1414": 90, "3918": 30,
		},
		Materials: map[string]string{
			"DOU": "Dourado", "PRA": "Prata", "ROS": "Rose", "CRU": "Cru",
			"BRA": "Branco", "TRA": "Transparente",
		},
		Shapes: map[string]string{
			"REDO": "Redondo", "AVIA": "Aviãozinho", "CORA": "Coração",
			"PLAC": "Plaquinha", "MOLD": "Moldurinha", "NUVM": "Nuvenzinha",
			"NUVE": "Nuvem", "PLAO": "Plaquinha Oval", "PLAR": "Plaquinha com bolinha redonda no começo",
			"URSI": "Ursinho", "PING": "Pingente", "BORB": "Borboleta",
			"BO3D": "Borboleta 3D", "PROT": "Passante retangular oval no topo",
			"FLOP": "Flor Passante", "APCA": "Aplique Casamento", "MIPA": "Mini Palito",
			"MASC": "Máscara Carnaval", "ARVC": "Arvórezinha",
		},
		Holes: map[string]string{
			"1FS": "1 furo Superior", "1FH": "1 Furo Lateral", "2FH": "2 Furos Lateral",
			"2FV": "2 Furos Vertical", "4FL": "4 Furos, 2 na horizontal e 2 na vertical",
			"4FC": "4 Furos nos cantos", "0SF": "SEM FURO", "2PV": "DOIS FUROS PASSANTES VERTICAL",
			"1PC": "UM PASSANTE NO CENTRO",
		},
		Variations: map[string]string{
			"0001F": "Escrita/Logo", "0002F": "Ramo coração data", "0003F": "Três Corações data",
			"0004F": "Coração Barra data", "0005F": "Coração Barra", "0006F": "Três corações",
			"0007F": "&", "0008F": "& e data", "0009F": "Cheguei", "0010F": "Escrita+Estrelas",
			"0011F": "Chá do", "0012F": "Escrita+Corações", "1001P": "Gratidão",
			"1002P": "Você é especial", "1003P": "Feito a mão + novelo",
			"1004P": "Feito a mão com coração vazado no meio", "1005P": "Feito com amor + novelo",
			"1006P": "Caderneta de Saúde", "1007P": "Feliz dia das Mães", "1008P": "Ramo de flor 1",
			"1009P": "Feito com amor", "1010P": "Feliz Páscoa", "1011P": "Gratidão modelo 2",
			"1012P": "Fé", "1013P": "Coração", "1014P": "Fé + Cruz", "1015P": "Ele Vive + Cruz",
			"1016P": "Mãe + Coração", "1017P": "Seja Luz", "1018P": "Bíblia Sagrada",
			"1019P": "Feliz Natal", "0000P": "Sem gravação", "0000F": "Sem gravação",
		},
		Shops: map[string]string{
			"334593801": "Creativus Fabrica",
		},
	}
}
