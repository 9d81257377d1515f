package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

// testSpec is a simple ValidatingSpec for testing
type testSpec struct {
	valid bool
}

func (s *testSpec) Validate() error {
	if !s.valid {
		return fmt.Errorf("spec is invalid")
	}
	return nil
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset   Asset[*testSpec]
		expErrs []string
	}{
		"valid asset": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test-id",
				Spec:       &testSpec{valid: true},
			},
		},
		"version not set": {
			asset: Asset[*testSpec]{
				Identifier: "test-id",
				Spec:       &testSpec{valid: true},
			},
			expErrs: []string{"version must be set"},
		},
		"empty identifier": {
			asset: Asset[*testSpec]{
				Version: 1,
				Spec:    &testSpec{valid: true},
			},
			expErrs: []string{"id must be set"},
		},
		"identifier with spaces": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test id",
				Spec:       &testSpec{valid: true},
			},
			expErrs: []string{"id must be alphanumeric"},
		},
		"identifier with underscore": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test_id",
				Spec:       &testSpec{valid: true},
			},
			expErrs: []string{"id must be alphanumeric"},
		},
		"identifier with hyphen is valid": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test-id-123",
				Spec:       &testSpec{valid: true},
			},
		},
		"invalid spec": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "test-id",
				Spec:       &testSpec{valid: false},
			},
			expErrs: []string{"spec is invalid"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()
			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %v", tt.expErrs)
			}
			for _, exp := range tt.expErrs {
				if !strings.Contains(err.Error(), exp) {
					t.Errorf("error %q does not contain %q", err.Error(), exp)
				}
			}
		})
	}
}

func TestSmartIdentifier_JSON(t *testing.T) {
	id := NewSmartIdentifier[*testSpec]("spec-1")

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "marshalled", string(data), `"spec-1"`)

	var back SmartIdentifier[*testSpec]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "key", back.Id(), "spec-1")
}

type fakeStorer struct {
	records map[string]*testSpec
}

func (f *fakeStorer) Save(string, *testSpec) error { return nil }
func (f *fakeStorer) Get(id string) *testSpec      { return f.records[id] }
func (f *fakeStorer) GetAll() map[string]*testSpec { return f.records }

func TestSmartIdentifier_Resolve(t *testing.T) {
	st := &fakeStorer{records: map[string]*testSpec{
		"known": {valid: true},
	}}

	id := NewSmartIdentifier[*testSpec]("known")
	if err := id.Resolve(st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Get() == nil {
		t.Error("expected resolved value")
	}

	missing := NewSmartIdentifier[*testSpec]("missing")
	if err := missing.Resolve(st); err == nil {
		t.Error("expected error resolving missing reference")
	}
}
