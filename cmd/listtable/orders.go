// ABOUTME: Declarative configuration of the demo orders table.
// ABOUTME: Binds the table library to the SQLite order store.

package main

import (
	"context"

	"github.com/plumline/listtable/internal/store"
	"github.com/plumline/listtable/table"
)

// registerOrdersTable wires the orders list table to the store. Column types
// are inferred from the column names except where noted.
func registerOrdersTable(s *store.Store) {
	table.Register(table.Config{
		ID: "orders",
		Labels: table.Labels{
			Singular: "Order",
			Plural:   "Orders",
			Search:   "Search orders",
			NotFound: "No orders found. Run 'listtable seed' to generate demo data.",
		},
		PerPage:    20,
		Capability: "manage_orders",
		Help:       "Demo orders backed by SQLite. Double-click customer or items to edit inline.",
		Columns: map[string]table.Column{
			"order_number":  {Title: "Order", Type: "code"},
			"customer":      {Editable: true},
			"status":        {},
			"total_spent":   {Title: "Total", Align: "right"},
			"discount_rate": {Title: "Discount", Align: "right"},
			"items_count":   {Title: "Items", Align: "right", Editable: true},
			"country":       {},
			"website":       {},
			"is_test":       {Title: "Mode"},
			"file_size":     {Title: "Invoice"},
			"created_at":    {Title: "Placed"},
		},
		ColumnOrder: []string{
			"order_number", "customer", "status", "total_spent", "discount_rate",
			"items_count", "country", "website", "is_test", "file_size", "created_at",
		},
		Sortable: []string{"order_number", "customer", "status", "total_spent", "items_count", "country", "created_at"},
		RowActions: table.RowActions{
			Delete: true,
			Custom: []table.Action{
				{
					ID:    "complete",
					Title: "Complete",
					Handler: func(ctx context.Context, id string) error {
						return s.UpdateOrderStatus(ctx, id, "completed")
					},
				},
				{
					ID:      "refund",
					Title:   "Refund",
					Confirm: "Refund this order?",
					Handler: func(ctx context.Context, id string) error {
						return s.UpdateOrderStatus(ctx, id, "refunded")
					},
					Destructive: true,
				},
			},
		},
		BulkActions: []table.BulkAction{
			{
				ID:    "complete",
				Title: "Mark completed",
				PerItem: func(ctx context.Context, id string) error {
					return s.UpdateOrderStatus(ctx, id, "completed")
				},
			},
			{
				ID:      "delete",
				Title:   "Delete",
				Confirm: "Delete the selected orders?",
				PerItem: func(ctx context.Context, id string) error {
					return s.DeleteOrder(ctx, id)
				},
			},
		},
		Filters: []table.Filter{
			{
				ID:    "country",
				Title: "All countries",
				Options: []table.Option{
					{Value: "US", Label: "United States"},
					{Value: "GB", Label: "United Kingdom"},
					{Value: "DE", Label: "Germany"},
					{Value: "FR", Label: "France"},
					{Value: "JP", Label: "Japan"},
					{Value: "CA", Label: "Canada"},
					{Value: "AU", Label: "Australia"},
					{Value: "IN", Label: "India"},
				},
			},
		},
		Views: []string{"completed", "processing", "pending", "refunded", "cancelled", "failed"},
		Callbacks: table.Callbacks{
			GetItems: func(ctx context.Context, q table.Query) ([]table.Row, int, error) {
				orders, total, err := s.ListOrders(ctx, q)
				if err != nil {
					return nil, 0, err
				}
				rows := make([]table.Row, len(orders))
				for i, o := range orders {
					rows[i] = o
				}
				return rows, total, nil
			},
			GetCounts: s.CountOrdersByStatus,
			Delete:    s.DeleteOrder,
			Update:    s.UpdateOrderColumn,
		},
	})
}
