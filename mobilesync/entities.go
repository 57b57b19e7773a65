// Copyright 2025 Toly Pochkin
// SPDX-License-Identifier: Apache-2.0

package mobilesync

import "time"

// Typed entity structs for the replica store. Relations are identity
// references (XxxID fields), never embedded copies; dependent collections
// (an item's batches, a transaction's lines) are derived from the dependent
// side's foreign keys, see collections.go. A zero time.Time field means the
// feed sent no value.

// Item is a stockable product. Pack size is normalized to 1 on the way in,
// so DefaultPrice is always a per-unit price. IsVisible is owned by this
// store's ItemStoreJoin and survives item re-integration.
type Item struct {
	EntityMeta
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	DefaultPackSize float64 `json:"default_pack_size"`
	DefaultPrice    float64 `json:"default_price"`
	Description     string  `json:"description,omitempty"`
	CategoryID      string  `json:"category_id,omitempty"`
	DepartmentID    string  `json:"department_id,omitempty"`
	IsVisible       bool    `json:"is_visible,omitempty"`
}

func (Item) EntityType() EntityType { return EntityTypeItem }

// ItemCategory groups items for reporting.
type ItemCategory struct {
	EntityMeta
	Name string `json:"name"`
}

func (ItemCategory) EntityType() EntityType { return EntityTypeItemCategory }

// ItemDepartment groups items by organizational department.
type ItemDepartment struct {
	EntityMeta
	Name string `json:"name"`
}

func (ItemDepartment) EntityType() EntityType { return EntityTypeItemDepartment }

// ItemBatch is stock of one item with a shared batch code and expiry.
// Quantities arrive as packs-of-N and are stored pre-multiplied with
// PackSize forced to 1; prices are per-unit after the same normalization.
type ItemBatch struct {
	EntityMeta
	ItemID        string    `json:"item_id,omitempty"`
	PackSize      float64   `json:"pack_size"`
	NumberOfPacks float64   `json:"number_of_packs"`
	Batch         string    `json:"batch"`
	ExpiryDate    time.Time `json:"expiry_date"`
	CostPrice     float64   `json:"cost_price"`
	SellPrice     float64   `json:"sell_price"`
	SupplierID    string    `json:"supplier_id,omitempty"`
	DonorID       string    `json:"donor_id,omitempty"`
}

func (ItemBatch) EntityType() EntityType { return EntityTypeItemBatch }

// ItemStoreJoin records that an item is known to a store. Joins for other
// stores are kept but only this store's joins drive item visibility.
type ItemStoreJoin struct {
	EntityMeta
	ItemID         string `json:"item_id"`
	StoreID        string `json:"store_id"`
	JoinsThisStore bool   `json:"joins_this_store"`
}

func (ItemStoreJoin) EntityType() EntityType { return EntityTypeItemStoreJoin }

// MasterList is a curated list of items kept by the central system.
type MasterList struct {
	EntityMeta
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

func (MasterList) EntityType() EntityType { return EntityTypeMasterList }

// MasterListItem is one item's membership in a master list.
type MasterListItem struct {
	EntityMeta
	MasterListID    string  `json:"master_list_id"`
	ItemID          string  `json:"item_id,omitempty"`
	ImprestQuantity float64 `json:"imprest_quantity"`
}

func (MasterListItem) EntityType() EntityType { return EntityTypeMasterListItem }

// MasterListNameJoin assigns a master list to a name; the assignment is
// mirrored onto Name.MasterListID.
type MasterListNameJoin struct {
	EntityMeta
	MasterListID string `json:"master_list_id"`
	NameID       string `json:"name_id,omitempty"`
}

func (MasterListNameJoin) EntityType() EntityType { return EntityTypeMasterListNameJoin }

// Name is a customer, supplier, patient, store or bookkeeping pseudo-name.
// IsVisible and MasterListID are owned by join records and survive name
// re-integration.
type Name struct {
	EntityMeta
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	Type             NameType `json:"type"`
	IsCustomer       bool     `json:"is_customer"`
	IsSupplier       bool     `json:"is_supplier"`
	IsManufacturer   bool     `json:"is_manufacturer"`
	PhoneNumber      string   `json:"phone_number,omitempty"`
	EmailAddress     string   `json:"email_address,omitempty"`
	BillingAddressID string   `json:"billing_address_id,omitempty"`
	SupplyingStoreID string   `json:"supplying_store_id,omitempty"`
	MasterListID     string   `json:"master_list_id,omitempty"`
	IsVisible        bool     `json:"is_visible,omitempty"`
}

func (Name) EntityType() EntityType { return EntityTypeName }

// NameStoreJoin records that a name is known to a store, analogous to
// ItemStoreJoin.
type NameStoreJoin struct {
	EntityMeta
	NameID         string `json:"name_id"`
	StoreID        string `json:"store_id"`
	JoinsThisStore bool   `json:"joins_this_store"`
}

func (NameStoreJoin) EntityType() EntityType { return EntityTypeNameStoreJoin }

// NumberSequence tracks the highest serial number handed out for one
// store-scoped counter, identified by SequenceKey rather than id.
type NumberSequence struct {
	EntityMeta
	SequenceKey       string  `json:"sequence_key"`
	HighestNumberUsed float64 `json:"highest_number_used"`
}

func (NumberSequence) EntityType() EntityType { return EntityTypeNumberSequence }

// NumberToReuse is a serial number returned to its sequence for reissue.
type NumberToReuse struct {
	EntityMeta
	NumberSequenceID string  `json:"number_sequence_id"`
	Number           float64 `json:"number"`
}

func (NumberToReuse) EntityType() EntityType { return EntityTypeNumberToReuse }

// Requisition is a request for stock between stores.
type Requisition struct {
	EntityMeta
	SerialNumber       float64         `json:"serial_number"`
	Status             RecordStatus    `json:"status"`
	Type               RequisitionType `json:"type"`
	EntryDate          time.Time       `json:"entry_date"`
	DaysToSupply       float64         `json:"days_to_supply"`
	NameID             string          `json:"name_id,omitempty"`
	UserID             string          `json:"user_id,omitempty"`
	RequesterReference string          `json:"requester_reference,omitempty"`
	Comment            string          `json:"comment,omitempty"`
}

func (Requisition) EntityType() EntityType { return EntityTypeRequisition }

// RequisitionItem is one item line on a requisition. DailyUsage is derived
// from the ordered quantity and the parent's days-to-supply at integration
// time.
type RequisitionItem struct {
	EntityMeta
	RequisitionID    string  `json:"requisition_id"`
	ItemID           string  `json:"item_id,omitempty"`
	StockOnHand      float64 `json:"stock_on_hand"`
	DailyUsage       float64 `json:"daily_usage"`
	SuppliedQuantity float64 `json:"supplied_quantity"`
	Comment          string  `json:"comment,omitempty"`
	SortIndex        float64 `json:"sort_index"`
}

func (RequisitionItem) EntityType() EntityType { return EntityTypeRequisitionItem }

// Stocktake is a physical stock count.
type Stocktake struct {
	EntityMeta
	Description   string       `json:"description"`
	Status        RecordStatus `json:"status"`
	SerialNumber  float64      `json:"serial_number"`
	CreatedDate   time.Time    `json:"created_date"`
	StocktakeDate time.Time    `json:"stocktake_date"`
	CreatedByID   string       `json:"created_by_id,omitempty"`
	Comment       string       `json:"comment,omitempty"`
	AdditionsID   string       `json:"additions_id,omitempty"`
	ReductionsID  string       `json:"reductions_id,omitempty"`
}

func (Stocktake) EntityType() EntityType { return EntityTypeStocktake }

// StocktakeBatch is one batch line on a stocktake. Snapshot quantities are
// normalized to packs of one; the counted quantity starts equal to the
// snapshot until someone counts.
type StocktakeBatch struct {
	EntityMeta
	StocktakeID           string    `json:"stocktake_id"`
	ItemBatchID           string    `json:"item_batch_id"`
	PackSize              float64   `json:"pack_size"`
	SnapshotNumberOfPacks float64   `json:"snapshot_number_of_packs"`
	CountedNumberOfPacks  float64   `json:"counted_number_of_packs"`
	Batch                 string    `json:"batch"`
	ExpiryDate            time.Time `json:"expiry_date"`
	CostPrice             float64   `json:"cost_price"`
	SellPrice             float64   `json:"sell_price"`
	SortIndex             float64   `json:"sort_index"`
}

func (StocktakeBatch) EntityType() EntityType { return EntityTypeStocktakeBatch }

// Transaction is a stock-moving document (invoice, credit or repack).
type Transaction struct {
	EntityMeta
	NameID       string          `json:"name_id,omitempty"`
	SerialNumber float64         `json:"serial_number"`
	Type         TransactionType `json:"type"`
	Status       RecordStatus    `json:"status"`
	EntryDate    time.Time       `json:"entry_date"`
	ConfirmDate  time.Time       `json:"confirm_date"`
	EnteredByID  string          `json:"entered_by_id,omitempty"`
	TheirRef     string          `json:"their_ref,omitempty"`
	Comment      string          `json:"comment,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
}

func (Transaction) EntityType() EntityType { return EntityTypeTransaction }

// TransactionBatch is one batch line on a transaction, normalized to packs
// of one like ItemBatch.
type TransactionBatch struct {
	EntityMeta
	TransactionID     string    `json:"transaction_id"`
	ItemID            string    `json:"item_id,omitempty"`
	ItemBatchID       string    `json:"item_batch_id"`
	ItemName          string    `json:"item_name,omitempty"`
	Batch             string    `json:"batch"`
	ExpiryDate        time.Time `json:"expiry_date"`
	PackSize          float64   `json:"pack_size"`
	NumberOfPacks     float64   `json:"number_of_packs"`
	NumberOfPacksSent float64   `json:"number_of_packs_sent"`
	CostPrice         float64   `json:"cost_price"`
	SellPrice         float64   `json:"sell_price"`
	DonorID           string    `json:"donor_id,omitempty"`
	Note              string    `json:"note,omitempty"`
	SortIndex         float64   `json:"sort_index"`
}

func (TransactionBatch) EntityType() EntityType { return EntityTypeTransactionBatch }

// TransactionCategory labels transactions for reporting.
type TransactionCategory struct {
	EntityMeta
	Name string          `json:"name"`
	Code string          `json:"code"`
	Type TransactionType `json:"type"`
}

func (TransactionCategory) EntityType() EntityType { return EntityTypeTransactionCategory }

// Address is a deduplicated postal address; see ResolveAddress. Nil fields
// were never supplied, which matters for the dedup match.
type Address struct {
	EntityMeta
	Line1 *string `json:"line1,omitempty"`
	Line2 *string `json:"line2,omitempty"`
	Line3 *string `json:"line3,omitempty"`
	Line4 *string `json:"line4,omitempty"`
	Zip   *string `json:"zip,omitempty"`
}

func (Address) EntityType() EntityType { return EntityTypeAddress }

// User is referenced by transactions, requisitions and stocktakes. Users
// are provisioned out of band, so the engine only ever holds placeholders
// or ids for them.
type User struct {
	EntityMeta
	Username string `json:"username,omitempty"`
}

func (User) EntityType() EntityType { return EntityTypeUser }
