package metadata

import "testing"

func TestMap_ValueScanRoundTrip(t *testing.T) {
	in := Map{"required_documents": []any{"id", "payslip"}, "minimum_age": float64(18)}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var out Map
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if out["minimum_age"] != float64(18) {
		t.Fatalf("minimum_age = %v", out["minimum_age"])
	}
	if docs, ok := out["required_documents"].([]any); !ok || len(docs) != 2 {
		t.Fatalf("required_documents = %#v", out["required_documents"])
	}
}

func TestMap_NilAndUnsupported(t *testing.T) {
	var m Map
	if v, err := m.Value(); err != nil || v != nil {
		t.Fatalf("nil map Value = %v, %v", v, err)
	}
	if err := m.Scan(nil); err != nil || m != nil {
		t.Fatalf("Scan(nil) = %v, %v", m, err)
	}
	if err := m.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
}
