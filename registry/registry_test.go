/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"testing"
)

type locomotive struct {
	ID string
}

type carriage struct {
	ID string
}

func TestIndexMapRegistry(t *testing.T) {
	idx := map[string]string{"PK": "LOCO#{ID}", "SK": "LOCO#{ID}"}
	RegisterIndexMap[locomotive](idx)

	got, ok := GetIndexMap[locomotive]()
	if !ok {
		t.Fatalf("expected index map for locomotive")
	}
	if got["PK"] != "LOCO#{ID}" {
		t.Fatalf("unexpected PK template %q", got["PK"])
	}

	got["PK"] = "mutated"
	idx["SK"] = "mutated"
	again, _ := GetIndexMap[locomotive]()
	if again["PK"] != "LOCO#{ID}" || again["SK"] != "LOCO#{ID}" {
		t.Fatalf("registry must hold its own copy, got %v", again)
	}

	if _, ok := GetIndexMap[carriage](); ok {
		t.Fatalf("expected no index map for carriage")
	}
}

func TestTypeRegistry(t *testing.T) {
	RegisterEntityType[locomotive]("Locomotive")

	name, ok := EntityTypeName[locomotive]()
	if !ok || name != "Locomotive" {
		t.Fatalf("expected Locomotive, got %q (%v)", name, ok)
	}

	typ, err := LookupEntityType("Locomotive")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if typ != reflect.TypeOf(locomotive{}) {
		t.Fatalf("unexpected type %v", typ)
	}

	if _, err := LookupEntityType("Unknown"); err == nil {
		t.Fatalf("expected error for unknown entity type")
	}

	t.Run("ReRegisterSameType", func(t *testing.T) {
		RegisterEntityType[locomotive]("Locomotive")
	})

	t.Run("DuplicateNamePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic for duplicate entity type name")
			}
		}()
		RegisterEntityType[carriage]("Locomotive")
	})
}
