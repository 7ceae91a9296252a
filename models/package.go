// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Package status identifiers as seeded in the statuses table.
const (
	StatusRegistered     = 1
	StatusInWarehouse    = 2
	StatusInTransit      = 3
	StatusOutForDelivery = 4
	StatusDelivered      = 5
)

// TerminalStatus is the status after which a package no longer blocks
// deletion of its owner's account.
const TerminalStatus = StatusDelivered

// Status is a row of the statuses lookup table.
type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Package is a shipment owned by a customer. Packages are maintained by
// the delivery back office; the portal only reads them.
type Package struct {
	// ID is the internal ledger identifier and is never exposed.
	ID int64 `json:"-"`

	Tracking    string `json:"tracking"`
	Weight      string `json:"weight"`
	Description string `json:"description"`

	StatusID   int    `json:"status_id"`
	CustomerID string `json:"customer_id"`

	Status Status `json:"status"`
}

// IsPending reports whether the package still blocks account deletion.
func (p Package) IsPending() bool {
	return p.StatusID != TerminalStatus
}
