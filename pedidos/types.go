package pedidos

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString decodes a JSON string or number into a string. Payloads relayed
// by n8n are inconsistent about quoting identifiers (`pedido` and `shop_id`
// arrive both ways depending on the workflow branch).
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var val any
	if err := decoder.Decode(&val); err != nil {
		return err
	}
	switch v := val.(type) {
	case nil:
		*s = ""
	case string:
		*s = FlexString(v)
	case json.Number:
		*s = FlexString(v.String())
	default:
		return fmt.Errorf("cannot decode %T into a string", v)
	}
	return nil
}

// OrderPayload is one element of an inbound webhook batch. It is the superset
// of the four payload kinds; Classify decides which one a given element is.
// Pointer fields distinguish "absent" from "present but empty".
type OrderPayload struct {
	Pedido      FlexString  `json:"pedido"`
	OrderSn     FlexString  `json:"order_sn"`
	Status      string      `json:"status"`
	ShopId      *FlexString `json:"shop_id"`
	UserCliente *string     `json:"user_cliente"`
	ItemSku     *string     `json:"item_sku"`
	Quantidade  any         `json:"quantidade"`
	ShipByAt    string      `json:"ship_by_at"`
	CreatedAt   any         `json:"created_at"`
	Cliente     string      `json:"cliente"`
	ValorTotal  any         `json:"valor_total_pedido"`
	Comissao    any         `json:"comissao_total_pedido"`
	TaxaServico any         `json:"taxa_servico_total_pedido"`
	FretePago   any         `json:"frete_pago_total"`
}

// Id returns the order identifier, preferring `pedido` over `order_sn`.
func (p *OrderPayload) Id() string {
	if p.Pedido != "" {
		return string(p.Pedido)
	}
	return string(p.OrderSn)
}

// ParseBatch decodes a request body that is either a JSON array of payloads
// or a single payload object (n8n sends both shapes).
func ParseBatch(data []byte) ([]OrderPayload, error) {
	var batch []OrderPayload
	if err := json.Unmarshal(data, &batch); err == nil {
		return batch, nil
	}
	var single OrderPayload
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("invalid JSON payload:\n>>> %w", err)
	}
	return []OrderPayload{single}, nil
}
