// Package pedidos implements the order-notification pipeline: classifying
// inbound webhook payloads, decoding order SKUs into production attributes,
// resolving the shipping due date, and building the documents persisted into
// the active-orders collection.
package pedidos

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/creativus9/Railway-Repositorio/catalog"
	"github.com/creativus9/Railway-Repositorio/helpers"
)

// Collection is the document collection holding one document per active order.
const Collection = "pedidos_ativos"

// Marketplace is recorded on every fully decoded order.
const Marketplace = "Shopee"

// DocumentStore is the persistence collaborator. PutMerge upserts a document,
// merging only the given fields into whatever exists; DeleteDocument removes
// a document and succeeds when it is already gone.
type DocumentStore interface {
	PutMerge(ctx context.Context, collection, id string, fields map[string]any) error
	DeleteDocument(ctx context.Context, collection, id string) error
}

type Kind int

const (
	KindUnrecognized Kind = iota
	KindCancellation
	KindShopUpdate
	KindUserUpdate
	KindItemDecode
)

// The marketplace and the n8n workflows are not consistent about the spelling
// of a cancelled order's status.
var cancelledStatuses = []string{"CANCELLED", "Cancelado", "IN_CANCEL"}

// Classify decides which of the four update kinds a payload represents.
// First match wins; payloads carrying several groups of fields are handled by
// the highest-priority kind only.
func Classify(p *OrderPayload) Kind {
	if p.Status != "" {
		if cancelled, _ := helpers.StringInSlice(p.Status, cancelledStatuses); cancelled {
			return KindCancellation
		}
	}
	if p.Id() != "" {
		if p.ShopId != nil {
			return KindShopUpdate
		}
		if p.UserCliente != nil {
			return KindUserUpdate
		}
		if p.ItemSku != nil {
			return KindItemDecode
		}
	}
	return KindUnrecognized
}

// BuildOrderRecord assembles the full document written for an ItemDecode
// payload. The account label (`contaEcommerce`) is deliberately absent: it
// arrives through the separate shop-update payload and must not be clobbered
// by the merge write.
func BuildOrderRecord(p *OrderPayload, tables *catalog.Tables) map[string]any {
	sku := ""
	if p.ItemSku != nil {
		sku = *p.ItemSku
	}
	decoded := DecodeSku(sku, helpers.SafeInt(p.Quantidade, 1), tables)

	return map[string]any{
		"id":                p.Id(),
		"situacao":          decoded.Situacao,
		"material":          decoded.Material,
		"qntPlacas":         decoded.QntPlacas,
		"formato":           decoded.Formato,
		"tamanho":           decoded.Tamanho,
		"furo":              decoded.Furo,
		"planoCorte":        "",
		"skuPlanoCorte":     decoded.SkuPlanoCorte,
		"tipoArte":          decoded.TipoArte,
		"sku":               decoded.FinalSku,
		"motivoRetrabalho":  "",
		"dataEntrega":       ResolveDeliveryDate(p.ShipByAt, p.CreatedAt),
		"ecommerce":         Marketplace,
		"dataPedidoFeito":   p.CreatedAt,
		"cliente":           p.Cliente,
		"valorTotal":        helpers.SafeFloat(p.ValorTotal, 0),
		"comissaoEcommerce": helpers.SafeFloat(p.Comissao, 0),
		"taxaEcommerce":     helpers.SafeFloat(p.TaxaServico, 0),
		"frete":             helpers.SafeFloat(p.FretePago, 0),
	}
}

// Summary aggregates one batch: per-kind success counts plus one diagnostic
// entry per failed element. Nothing is ever dropped without a trace in one of
// the two.
type Summary struct {
	Decoded     int
	ShopUpdates int
	UserUpdates int
	Deleted     int
	Errors      []string
}

func (s *Summary) Message() string {
	message := fmt.Sprintf(
		"%d pedido(s) decodificado(s), %d conta(s) atualizada(s), %d cliente(s) atualizado(s), %d pedido(s) cancelado(s)",
		s.Decoded, s.ShopUpdates, s.UserUpdates, s.Deleted,
	)
	if len(s.Errors) == 0 {
		return message + " com sucesso!"
	}
	return message + ", mas ocorreram erros."
}

// Processor runs batches against an explicit store and catalog; there is no
// package-level state.
type Processor struct {
	Store  DocumentStore
	Tables *catalog.Tables
}

// ProcessBatch handles each element independently and in order. A failing
// element contributes an error entry and never affects its siblings.
func (p *Processor) ProcessBatch(ctx context.Context, payloads []OrderPayload) Summary {
	tables := p.Tables
	if tables == nil {
		tables = catalog.DefaultTables()
	}

	summary := Summary{}
	for i := range payloads {
		p.processOne(ctx, &payloads[i], tables, &summary)
	}
	return summary
}

func payloadLabel(payload *OrderPayload) string {
	if id := payload.Id(); id != "" {
		return id
	}
	return "N/A"
}

func (p *Processor) processOne(ctx context.Context, payload *OrderPayload, tables *catalog.Tables, summary *Summary) {
	switch Classify(payload) {
	case KindCancellation:
		id := payload.Id()
		if id == "" {
			log.Printf("Cancellation payload without an order identifier")
			summary.Errors = append(summary.Errors, "Pedido de cancelamento sem identificador")
			return
		}
		if err := p.Store.DeleteDocument(ctx, Collection, id); err != nil {
			log.Printf("Error deleting order %v: %v", id, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Falha ao cancelar o pedido: %s", id))
			return
		}
		summary.Deleted++

	case KindShopUpdate:
		id := payload.Id()
		label, registered := tables.Shop(strings.TrimSpace(string(*payload.ShopId)))
		if !registered {
			log.Printf("Unregistered shop %v for order %v, tagging as %q", *payload.ShopId, id, label)
		}
		fields := map[string]any{"id": id, "contaEcommerce": label}
		if err := p.Store.PutMerge(ctx, Collection, id, fields); err != nil {
			log.Printf("Error saving shop update for order %v: %v", id, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Falha ao salvar no banco de dados o pedido: %s", id))
			return
		}
		summary.ShopUpdates++

	case KindUserUpdate:
		id := payload.Id()
		// An empty username is a valid value and is stored as such.
		fields := map[string]any{"id": id, "usuarioCliente": *payload.UserCliente}
		if err := p.Store.PutMerge(ctx, Collection, id, fields); err != nil {
			log.Printf("Error saving user update for order %v: %v", id, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Falha ao salvar no banco de dados o pedido: %s", id))
			return
		}
		summary.UserUpdates++

	case KindItemDecode:
		id := payload.Id()
		record := BuildOrderRecord(payload, tables)
		if err := p.Store.PutMerge(ctx, Collection, id, record); err != nil {
			log.Printf("Error saving order %v: %v", id, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Falha ao salvar no banco de dados o pedido: %s", id))
			return
		}
		summary.Decoded++

	default:
		log.Printf("Unrecognized payload for order %v", payloadLabel(payload))
		summary.Errors = append(summary.Errors, fmt.Sprintf("Falha ao processar o item de pedido: %s", payloadLabel(payload)))
	}
}
