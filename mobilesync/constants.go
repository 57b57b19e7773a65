// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

// Change type codes used by the authoritative feed
const (
	ChangeCodeCreate = "I"
	ChangeCodeUpdate = "U"
	ChangeCodeDelete = "D"
)

// ChangeType says what a sync record asks the replica to do.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// RecordStatus is the lifecycle state of a transaction, requisition or
// stocktake. The feed sends two-letter codes; unrecognized codes map to
// StatusUnknown rather than failing the record.
type RecordStatus string

const (
	StatusUnknown   RecordStatus = ""
	StatusNew       RecordStatus = "new"
	StatusSuggested RecordStatus = "suggested"
	StatusConfirmed RecordStatus = "confirmed"
	StatusFinalised RecordStatus = "finalised"
)

// NameType classifies a name record (customers, suppliers, stores and
// bookkeeping pseudo-names all live in the same table upstream).
type NameType string

const (
	NameTypeUnknown             NameType = ""
	NameTypeFacility            NameType = "facility"
	NameTypePatient             NameType = "patient"
	NameTypeBuild               NameType = "build"
	NameTypeInventoryAdjustment NameType = "inventory_adjustment"
	NameTypeRepack              NameType = "repack"
	NameTypeStore               NameType = "store"
)

// TransactionType classifies a stock-moving transaction.
type TransactionType string

const (
	TransactionTypeUnknown         TransactionType = ""
	TransactionTypeSupplierInvoice TransactionType = "supplier_invoice"
	TransactionTypeCustomerInvoice TransactionType = "customer_invoice"
	TransactionTypeSupplierCredit  TransactionType = "supplier_credit"
	TransactionTypeCustomerCredit  TransactionType = "customer_credit"
	TransactionTypeRepack          TransactionType = "repack"
)

// RequisitionType classifies a requisition.
type RequisitionType string

const (
	RequisitionTypeUnknown  RequisitionType = ""
	RequisitionTypeImprest  RequisitionType = "imprest"
	RequisitionTypeForecast RequisitionType = "forecast"
	RequisitionTypeRequest  RequisitionType = "request"
	RequisitionTypeResponse RequisitionType = "response"
)

// Internal keys for store-scoped number sequences
const (
	SequenceCustomerInvoiceSerialNumber     = "customer_invoice_serial_number"
	SequenceInventoryAdjustmentSerialNumber = "inventory_adjustment_serial_number"
	SequenceRequisitionSerialNumber         = "requisition_serial_number"
	SequenceRequisitionRequesterReference   = "requisition_requester_reference"
	SequenceStocktakeSerialNumber           = "stocktake_serial_number"
	SequenceSupplierInvoiceSerialNumber     = "supplier_invoice_serial_number"
)

// Settings keys read by the integration engine
const (
	SettingThisStoreID = "this_store_id"
)
