// Package resolve maps customer and shipper display names to persistent
// identifiers, creating records on first sight. It implements the
// ports.PartyResolver and ports.PartyDirectory contracts over the raw Store
// port.
package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"shipping/internal/core/domain/model/customer"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipper"
	"shipping/internal/core/ports"
)

const (
	selectCustomerIDSQL = `SELECT customer_id FROM customers WHERE name = ?`
	insertCustomerSQL   = `INSERT INTO customers (name, email, phone) VALUES (?, '', '') RETURNING customer_id`
	listCustomersSQL    = `SELECT customer_id, name, email, phone FROM customers ORDER BY name`

	selectShipperIDSQL = `SELECT shipper_id FROM shippers WHERE name = ?`
	insertShipperSQL   = `INSERT INTO shippers (name, phone) VALUES (?, '') RETURNING shipper_id`
	listShippersSQL    = `SELECT shipper_id, name, phone FROM shippers ORDER BY name`
)

// SQLPartyResolver resolves names against the customers and shippers tables.
// Resolution is lookup-then-insert by exact name match, so repeated
// resolution of the same name never creates a second row in single-writer
// use.
type SQLPartyResolver struct {
	store  ports.Store
	logger *slog.Logger
}

// NewSQLPartyResolver creates a resolver over the given store.
func NewSQLPartyResolver(store ports.Store, logger *slog.Logger) *SQLPartyResolver {
	return &SQLPartyResolver{
		store:  store,
		logger: logger.With("component", "party_resolver"),
	}
}

// CustomerID returns the identifier of the customer with the given name,
// inserting a new customer with empty contact fields when absent.
func (r *SQLPartyResolver) CustomerID(ctx context.Context, name kernel.PartyName) (int64, error) {
	if err := name.Validate(); err != nil {
		return 0, err
	}

	id, found, err := r.lookup(ctx, selectCustomerIDSQL, name.String())
	if err != nil {
		return 0, fmt.Errorf("look up customer %q: %w", name, err)
	}
	if found {
		return id, nil
	}

	// Entity construction re-checks the naming invariant before the insert.
	if _, err = customer.NewCustomer(name); err != nil {
		return 0, err
	}

	id, err = r.store.ExecuteReturningID(ctx, insertCustomerSQL, name.String())
	if err != nil {
		return 0, fmt.Errorf("insert customer %q: %w", name, err)
	}

	r.logger.InfoContext(ctx, "created customer", "customer_id", id, "name", name.String())
	return id, nil
}

// ShipperID returns the identifier of the shipper with the given name,
// inserting a new shipper with an empty phone when absent.
func (r *SQLPartyResolver) ShipperID(ctx context.Context, name kernel.PartyName) (int64, error) {
	if err := name.Validate(); err != nil {
		return 0, err
	}

	id, found, err := r.lookup(ctx, selectShipperIDSQL, name.String())
	if err != nil {
		return 0, fmt.Errorf("look up shipper %q: %w", name, err)
	}
	if found {
		return id, nil
	}

	if _, err = shipper.NewShipper(name); err != nil {
		return 0, err
	}

	id, err = r.store.ExecuteReturningID(ctx, insertShipperSQL, name.String())
	if err != nil {
		return 0, fmt.Errorf("insert shipper %q: %w", name, err)
	}

	r.logger.InfoContext(ctx, "created shipper", "shipper_id", id, "name", name.String())
	return id, nil
}

// Customers lists all customers ordered by name.
func (r *SQLPartyResolver) Customers(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.store.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var (
			id           int64
			name         string
			email, phone string
		)
		if err = rows.Scan(&id, &name, &email, &phone); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}

		partyName, nameErr := kernel.NewPartyName(name)
		if nameErr != nil {
			return nil, fmt.Errorf("customer %d has invalid stored name: %w", id, nameErr)
		}

		c, restoreErr := customer.RestoreCustomer(id, partyName, email, phone)
		if restoreErr != nil {
			return nil, restoreErr
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// Shippers lists all shippers ordered by name.
func (r *SQLPartyResolver) Shippers(ctx context.Context) ([]*shipper.Shipper, error) {
	rows, err := r.store.Query(ctx, listShippersSQL)
	if err != nil {
		return nil, fmt.Errorf("list shippers: %w", err)
	}
	defer rows.Close()

	shippers := make([]*shipper.Shipper, 0)
	for rows.Next() {
		var (
			id    int64
			name  string
			phone string
		)
		if err = rows.Scan(&id, &name, &phone); err != nil {
			return nil, fmt.Errorf("scan shipper row: %w", err)
		}

		partyName, nameErr := kernel.NewPartyName(name)
		if nameErr != nil {
			return nil, fmt.Errorf("shipper %d has invalid stored name: %w", id, nameErr)
		}

		s, restoreErr := shipper.RestoreShipper(id, partyName, phone)
		if restoreErr != nil {
			return nil, restoreErr
		}
		shippers = append(shippers, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shippers, nil
}

// lookup runs a single-column id SELECT and reports whether a row matched.
func (r *SQLPartyResolver) lookup(ctx context.Context, query string, name string) (int64, bool, error) {
	rows, err := r.store.Query(ctx, query, name)
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, false, rows.Err()
	}

	var id int64
	if err = rows.Scan(&id); err != nil {
		return 0, false, err
	}

	return id, true, rows.Err()
}
