// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import (
	"encoding/json"
	"fmt"
)

// EntityType discriminates the record kinds held in a replica store. The
// set is closed: integrating a new kind means adding a variant here, a
// struct in entities.go and an arm in the dispatcher.
type EntityType string

const (
	EntityTypeUnknown             EntityType = ""
	EntityTypeAddress             EntityType = "Address"
	EntityTypeItem                EntityType = "Item"
	EntityTypeItemBatch           EntityType = "ItemBatch"
	EntityTypeItemCategory        EntityType = "ItemCategory"
	EntityTypeItemDepartment      EntityType = "ItemDepartment"
	EntityTypeItemStoreJoin       EntityType = "ItemStoreJoin"
	EntityTypeMasterList          EntityType = "MasterList"
	EntityTypeMasterListItem      EntityType = "MasterListItem"
	EntityTypeMasterListNameJoin  EntityType = "MasterListNameJoin"
	EntityTypeName                EntityType = "Name"
	EntityTypeNameStoreJoin       EntityType = "NameStoreJoin"
	EntityTypeNumberSequence      EntityType = "NumberSequence"
	EntityTypeNumberToReuse       EntityType = "NumberToReuse"
	EntityTypeRequisition         EntityType = "Requisition"
	EntityTypeRequisitionItem     EntityType = "RequisitionItem"
	EntityTypeStocktake           EntityType = "Stocktake"
	EntityTypeStocktakeBatch      EntityType = "StocktakeBatch"
	EntityTypeTransaction         EntityType = "Transaction"
	EntityTypeTransactionBatch    EntityType = "TransactionBatch"
	EntityTypeTransactionCategory EntityType = "TransactionCategory"
	EntityTypeUser                EntityType = "User"
)

// Entity is implemented by every record kind a replica store holds.
type Entity interface {
	EntityID() string
	EntityType() EntityType
	IsPlaceholder() bool
}

// EntityMeta carries the identity fields shared by every entity. A
// placeholder is a synthesized stand-in for a record that has been
// referenced but has not arrived yet; it keeps its identity when the real
// record later overwrites it.
type EntityMeta struct {
	ID          string `json:"id"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// EntityID returns the identifier, unique within the entity's type.
func (m EntityMeta) EntityID() string { return m.ID }

// IsPlaceholder reports whether the entity is a synthesized stand-in.
func (m EntityMeta) IsPlaceholder() bool { return m.Placeholder }

// NewEntityOfType returns a pointer to a zero entity of the given type,
// ready for JSON decoding.
func NewEntityOfType(t EntityType) (Entity, error) {
	switch t {
	case EntityTypeAddress:
		return &Address{}, nil
	case EntityTypeItem:
		return &Item{}, nil
	case EntityTypeItemBatch:
		return &ItemBatch{}, nil
	case EntityTypeItemCategory:
		return &ItemCategory{}, nil
	case EntityTypeItemDepartment:
		return &ItemDepartment{}, nil
	case EntityTypeItemStoreJoin:
		return &ItemStoreJoin{}, nil
	case EntityTypeMasterList:
		return &MasterList{}, nil
	case EntityTypeMasterListItem:
		return &MasterListItem{}, nil
	case EntityTypeMasterListNameJoin:
		return &MasterListNameJoin{}, nil
	case EntityTypeName:
		return &Name{}, nil
	case EntityTypeNameStoreJoin:
		return &NameStoreJoin{}, nil
	case EntityTypeNumberSequence:
		return &NumberSequence{}, nil
	case EntityTypeNumberToReuse:
		return &NumberToReuse{}, nil
	case EntityTypeRequisition:
		return &Requisition{}, nil
	case EntityTypeRequisitionItem:
		return &RequisitionItem{}, nil
	case EntityTypeStocktake:
		return &Stocktake{}, nil
	case EntityTypeStocktakeBatch:
		return &StocktakeBatch{}, nil
	case EntityTypeTransaction:
		return &Transaction{}, nil
	case EntityTypeTransactionBatch:
		return &TransactionBatch{}, nil
	case EntityTypeTransactionCategory:
		return &TransactionCategory{}, nil
	case EntityTypeUser:
		return &User{}, nil
	default:
		return nil, fmt.Errorf("new entity: unknown entity type %q", t)
	}
}

// MarshalEntity encodes an entity payload for storage.
func MarshalEntity(e Entity) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s %s: %w", e.EntityType(), e.EntityID(), err)
	}
	return payload, nil
}

// UnmarshalEntity decodes a stored payload back into its typed entity.
func UnmarshalEntity(t EntityType, payload []byte) (Entity, error) {
	e, err := NewEntityOfType(t)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, e); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", t, err)
	}
	return e, nil
}
