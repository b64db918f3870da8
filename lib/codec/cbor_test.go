// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{
		"zeta":  1,
		"alpha": "x",
		"mid":   []int{3, 2, 1},
	}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal failed: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("second Marshal failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("identical value marshaled to different bytes")
	}
}

func TestUnmarshalDefaultMapType(t *testing.T) {
	data, err := Marshal(map[string]any{"inner": map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded type %T, want map[string]any", decoded)
	}
	if _, ok := outer["inner"].(map[string]any); !ok {
		t.Fatalf("inner decoded type %T, want map[string]any", outer["inner"])
	}
}

func TestStreamRoundtrip(t *testing.T) {
	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for i := 0; i < 3; i++ {
		if err := encoder.Encode(record{Name: "probe", Count: i}); err != nil {
			t.Fatalf("Encode %d failed: %v", i, err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i := 0; i < 3; i++ {
		var decoded record
		if err := decoder.Decode(&decoded); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if decoded.Count != i || decoded.Name != "probe" {
			t.Errorf("record %d = %+v", i, decoded)
		}
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"ok": true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose failed: %v", err)
	}
	if diagnostic == "" {
		t.Error("Diagnose returned empty notation")
	}
}
