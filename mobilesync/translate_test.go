package mobilesync

import "testing"

func TestTranslateRecordType(t *testing.T) {
	if got := TranslateRecordType("item_line"); got != EntityTypeItemBatch {
		t.Errorf("item_line = %v", got)
	}
	if got := TranslateRecordType("some_future_table"); got != EntityTypeUnknown {
		t.Errorf("unknown record type = %v, want EntityTypeUnknown", got)
	}

	// Every record type round-trips.
	for code, entityType := range recordTypeByCode {
		back, ok := RecordTypeToExternal(entityType)
		if !ok || back != code {
			t.Errorf("round trip %q -> %v -> (%q, %v)", code, entityType, back, ok)
		}
	}
}

func TestTranslateChangeType(t *testing.T) {
	for code, want := range map[string]ChangeType{
		"I": ChangeCreate,
		"U": ChangeUpdate,
		"D": ChangeDelete,
	} {
		got, ok := TranslateChangeType(code)
		if !ok || got != want {
			t.Errorf("TranslateChangeType(%q) = (%v, %v)", code, got, ok)
		}
	}
	if _, ok := TranslateChangeType("M"); ok {
		t.Error("unknown change code must not translate")
	}
}

func TestTranslateEnums(t *testing.T) {
	if got := TranslateStatus("fn"); got != StatusFinalised {
		t.Errorf("status fn = %v", got)
	}
	if got := TranslateStatus("??"); got != StatusUnknown {
		t.Errorf("unknown status = %v", got)
	}
	if got := TranslateNameType("invad"); got != NameTypeInventoryAdjustment {
		t.Errorf("name type invad = %v", got)
	}
	if got := TranslateTransactionType("ci"); got != TransactionTypeCustomerInvoice {
		t.Errorf("transaction type ci = %v", got)
	}
	if got := TranslateRequisitionType("sh"); got != RequisitionTypeForecast {
		t.Errorf("requisition type sh = %v", got)
	}

	code, ok := StatusToExternal(StatusConfirmed)
	if !ok || code != "cn" {
		t.Errorf("StatusToExternal = (%q, %v)", code, ok)
	}
}

func TestTranslateSequenceKey(t *testing.T) {
	key, ok := TranslateSequenceKey("stocktake_number_for_store_ABC", "ABC")
	if !ok || key != SequenceStocktakeSerialNumber {
		t.Errorf("own store sequence = (%q, %v)", key, ok)
	}

	// Another store's counter must not translate.
	if _, ok := TranslateSequenceKey("stocktake_number_for_store_XYZ", "ABC"); ok {
		t.Error("foreign store sequence must not translate")
	}
	if _, ok := TranslateSequenceKey("mystery_counter_for_store_ABC", "ABC"); ok {
		t.Error("unknown base name must not translate")
	}
	if _, ok := TranslateSequenceKey("stocktake_number_for_store_ABC", ""); ok {
		t.Error("unset store id must not translate")
	}

	external, ok := SequenceKeyToExternal(SequenceStocktakeSerialNumber, "ABC")
	if !ok || external != "stocktake_number_for_store_ABC" {
		t.Errorf("SequenceKeyToExternal = (%q, %v)", external, ok)
	}
}
