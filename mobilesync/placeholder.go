// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"fmt"
	"time"
)

// placeholderValue fills the identifying string fields of a synthesized
// stand-in so it renders recognizably until the real record arrives.
const placeholderValue = "placeholder"

// NewPlaceholder builds a minimally valid stand-in for a referenced record
// that has not arrived yet: identifying strings are "placeholder", numbers
// zero (pack sizes one, per the normalization invariant), booleans false,
// required dates now. The caller persists it. Templates exist only for the
// types records reference by id; any other type returns
// ErrNoPlaceholderTemplate, which is a configuration defect rather than a
// bad record.
func NewPlaceholder(t EntityType, id string, now time.Time) (Entity, error) {
	meta := EntityMeta{ID: id, Placeholder: true}
	switch t {
	case EntityTypeItem:
		return &Item{EntityMeta: meta, Code: placeholderValue, Name: placeholderValue, DefaultPackSize: 1}, nil
	case EntityTypeItemBatch:
		return &ItemBatch{EntityMeta: meta, PackSize: 1, Batch: placeholderValue, ExpiryDate: now}, nil
	case EntityTypeItemCategory:
		return &ItemCategory{EntityMeta: meta, Name: placeholderValue}, nil
	case EntityTypeItemDepartment:
		return &ItemDepartment{EntityMeta: meta, Name: placeholderValue}, nil
	case EntityTypeMasterList:
		return &MasterList{EntityMeta: meta, Name: placeholderValue}, nil
	case EntityTypeName:
		return &Name{EntityMeta: meta, Name: placeholderValue, Code: placeholderValue}, nil
	case EntityTypeNumberSequence:
		return &NumberSequence{EntityMeta: meta, SequenceKey: placeholderValue}, nil
	case EntityTypeRequisition:
		return &Requisition{EntityMeta: meta, EntryDate: now}, nil
	case EntityTypeStocktake:
		return &Stocktake{EntityMeta: meta, Description: placeholderValue, SerialNumber: 0, CreatedDate: now}, nil
	case EntityTypeTransaction:
		return &Transaction{EntityMeta: meta, EntryDate: now}, nil
	case EntityTypeTransactionCategory:
		return &TransactionCategory{EntityMeta: meta, Name: placeholderValue, Code: placeholderValue}, nil
	case EntityTypeUser:
		return &User{EntityMeta: meta, Username: placeholderValue}, nil
	default:
		return nil, fmt.Errorf("entity type %s: %w", t, ErrNoPlaceholderTemplate)
	}
}
