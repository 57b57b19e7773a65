// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "strings"

// Translation tables between the feed's codes and internal values. Every
// table is bidirectional; the inverse direction is what an outgoing change
// producer would use and is exercised by the demo feed server.

var recordTypeByCode = map[string]EntityType{
	"item":                  EntityTypeItem,
	"item_category":         EntityTypeItemCategory,
	"item_department":       EntityTypeItemDepartment,
	"item_line":             EntityTypeItemBatch,
	"item_store_join":       EntityTypeItemStoreJoin,
	"list_master":           EntityTypeMasterList,
	"list_master_line":      EntityTypeMasterListItem,
	"list_master_name_join": EntityTypeMasterListNameJoin,
	"name":                  EntityTypeName,
	"name_store_join":       EntityTypeNameStoreJoin,
	"number":                EntityTypeNumberSequence,
	"number_reuse":          EntityTypeNumberToReuse,
	"requisition":           EntityTypeRequisition,
	"requisition_line":      EntityTypeRequisitionItem,
	"stock_take":            EntityTypeStocktake,
	"stock_take_lines":      EntityTypeStocktakeBatch,
	"transact":              EntityTypeTransaction,
	"trans_line":            EntityTypeTransactionBatch,
	"transaction_category":  EntityTypeTransactionCategory,
	"user":                  EntityTypeUser,
}

var changeTypeByCode = map[string]ChangeType{
	ChangeCodeCreate: ChangeCreate,
	ChangeCodeUpdate: ChangeUpdate,
	ChangeCodeDelete: ChangeDelete,
}

var statusByCode = map[string]RecordStatus{
	"nw": StatusNew,
	"sg": StatusSuggested,
	"cn": StatusConfirmed,
	"fn": StatusFinalised,
}

var nameTypeByCode = map[string]NameType{
	"facility": NameTypeFacility,
	"patient":  NameTypePatient,
	"build":    NameTypeBuild,
	"invad":    NameTypeInventoryAdjustment,
	"repack":   NameTypeRepack,
	"store":    NameTypeStore,
}

var transactionTypeByCode = map[string]TransactionType{
	"si": TransactionTypeSupplierInvoice,
	"ci": TransactionTypeCustomerInvoice,
	"sc": TransactionTypeSupplierCredit,
	"cc": TransactionTypeCustomerCredit,
	"sr": TransactionTypeRepack,
}

var requisitionTypeByCode = map[string]RequisitionType{
	"im":       RequisitionTypeImprest,
	"sh":       RequisitionTypeForecast,
	"request":  RequisitionTypeRequest,
	"response": RequisitionTypeResponse,
}

// Sequence names on the wire are the base code plus "_for_store_<storeID>".
var sequenceKeyByCode = map[string]string{
	"customer_invoice_number":            SequenceCustomerInvoiceSerialNumber,
	"inventory_adjustment_serial_number": SequenceInventoryAdjustmentSerialNumber,
	"requisition_serial_number":          SequenceRequisitionSerialNumber,
	"requisition_requester_reference":    SequenceRequisitionRequesterReference,
	"stocktake_number":                   SequenceStocktakeSerialNumber,
	"supplier_invoice_number":            SequenceSupplierInvoiceSerialNumber,
}

const sequenceKeyStoreSuffix = "_for_store_"

var (
	codeByRecordType      = invert(recordTypeByCode)
	codeByChangeType      = invert(changeTypeByCode)
	codeByStatus          = invert(statusByCode)
	codeByNameType        = invert(nameTypeByCode)
	codeByTransactionType = invert(transactionTypeByCode)
	codeByRequisitionType = invert(requisitionTypeByCode)
	codeBySequenceKey     = invert(sequenceKeyByCode)
)

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// TranslateRecordType maps a feed record type to its entity type.
// Unrecognized codes map to EntityTypeUnknown; the caller skips those
// records so older replicas tolerate newer feeds.
func TranslateRecordType(code string) EntityType {
	return recordTypeByCode[code]
}

// RecordTypeToExternal returns the feed code for an entity type.
func RecordTypeToExternal(t EntityType) (string, bool) {
	code, ok := codeByRecordType[t]
	return code, ok
}

// TranslateChangeType maps a feed change code. Unlike record types, an
// unrecognized change code is not skippable and ok is false.
func TranslateChangeType(code string) (ChangeType, bool) {
	c, ok := changeTypeByCode[code]
	return c, ok
}

// ChangeTypeToExternal returns the feed code for a change type.
func ChangeTypeToExternal(c ChangeType) (string, bool) {
	code, ok := codeByChangeType[c]
	return code, ok
}

// TranslateStatus maps a feed status code; unrecognized codes map to
// StatusUnknown.
func TranslateStatus(code string) RecordStatus {
	return statusByCode[code]
}

// StatusToExternal returns the feed code for a status.
func StatusToExternal(s RecordStatus) (string, bool) {
	code, ok := codeByStatus[s]
	return code, ok
}

// TranslateNameType maps a feed name type code; unrecognized codes map to
// NameTypeUnknown.
func TranslateNameType(code string) NameType {
	return nameTypeByCode[code]
}

// NameTypeToExternal returns the feed code for a name type.
func NameTypeToExternal(t NameType) (string, bool) {
	code, ok := codeByNameType[t]
	return code, ok
}

// TranslateTransactionType maps a feed transaction type code; unrecognized
// codes map to TransactionTypeUnknown.
func TranslateTransactionType(code string) TransactionType {
	return transactionTypeByCode[code]
}

// TransactionTypeToExternal returns the feed code for a transaction type.
func TransactionTypeToExternal(t TransactionType) (string, bool) {
	code, ok := codeByTransactionType[t]
	return code, ok
}

// TranslateRequisitionType maps a feed requisition type code; unrecognized
// codes map to RequisitionTypeUnknown.
func TranslateRequisitionType(code string) RequisitionType {
	return requisitionTypeByCode[code]
}

// RequisitionTypeToExternal returns the feed code for a requisition type.
func RequisitionTypeToExternal(t RequisitionType) (string, bool) {
	code, ok := codeByRequisitionType[t]
	return code, ok
}

// TranslateSequenceKey maps a feed sequence name to an internal sequence
// key. Sequence names are scoped to the store that owns them; a name owned
// by a different store (or an unrecognized base name) reports ok == false
// and the record must be skipped.
func TranslateSequenceKey(code, thisStoreID string) (string, bool) {
	if thisStoreID == "" {
		return "", false
	}
	base, found := strings.CutSuffix(code, sequenceKeyStoreSuffix+thisStoreID)
	if !found {
		return "", false
	}
	key, ok := sequenceKeyByCode[base]
	return key, ok
}

// SequenceKeyToExternal is the inverse of TranslateSequenceKey.
func SequenceKeyToExternal(key, storeID string) (string, bool) {
	code, ok := codeBySequenceKey[key]
	if !ok {
		return "", false
	}
	return code + sequenceKeyStoreSuffix + storeID, true
}
