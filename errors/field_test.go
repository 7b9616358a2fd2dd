package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		unauthorizedOwnerErr = Field("Owner", ErrUnauthorized, "a")
		humanOwnerErr        = Field("Owner", ErrHuman, "b")
		emptyMetadataErr     = Field("Metadata", ErrEmpty, "metadata is required")
		coreMultiErr         = Field("Core", Append(
			humanOwnerErr,
			Append(emptyMetadataErr, ErrImmutable),
		), "core data invalid")

		emptyMetadataWrapErr = Field("Metadata", emptyMetadataErr, "outer")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   unauthorizedOwnerErr,
			Field: "Owner",
			Want:  []error{unauthorizedOwnerErr},
		},
		"two error found by the name": {
			Err: Append(
				unauthorizedOwnerErr,
				humanOwnerErr,
			),
			Field: "Owner",
			Want: []error{
				unauthorizedOwnerErr,
				humanOwnerErr,
			},
		},
		"field can contain a multierror": {
			Err:   coreMultiErr,
			Field: "Core",
			Want:  []error{coreMultiErr},
		},
		"field can inspect errors tree to find match (owner)": {
			Err:   coreMultiErr,
			Field: "Owner",
			Want:  []error{humanOwnerErr},
		},
		"field can inspect errors tree to find match (metadata)": {
			Err:   coreMultiErr,
			Field: "Metadata",
			Want:  []error{emptyMetadataErr},
		},
		"nil error returns nothing": {
			Err:   nil,
			Field: "foo",
			Want:  nil,
		},
		"error not found by the field name": {
			Err:   ErrUnauthorized,
			Field: "foo",
			Want:  nil,
		},
		"error not found by the wrong field name": {
			Err:   Field("a-name", ErrUnauthorized, "a description"),
			Field: "foo",
			Want:  nil,
		},
		"field is wrapped": {
			Err:   Wrap(Wrap(humanOwnerErr, "inner"), "outer"),
			Field: "Owner",
			Want:  []error{humanOwnerErr},
		},
		"multi error field is wrapped (metadata)": {
			Err:   Wrap(Wrap(coreMultiErr, "inner"), "outer"),
			Field: "Metadata",
			Want:  []error{emptyMetadataErr},
		},
		"multi error field is wrapped (owner)": {
			Err:   Wrap(Wrap(coreMultiErr, "inner"), "outer"),
			Field: "Owner",
			Want:  []error{humanOwnerErr},
		},
		"multi error field is wrapped, no match": {
			Err:   Wrap(Wrap(coreMultiErr, "inner"), "outer"),
			Field: "unknown-name",
			Want:  nil,
		},
		"multiple field wrap with most inner as the result": {
			Err:   Field("a", Field("b", humanOwnerErr, "b desc"), "a desc"),
			Field: "Owner",
			Want:  []error{humanOwnerErr},
		},
		"multiple field wrap with the same field return the most outside only": {
			Err:   emptyMetadataWrapErr,
			Field: "Metadata",
			Want:  []error{emptyMetadataWrapErr},
		},
		"complex error with multiple results": {
			Err: Wrap(Append(
				Wrap(unauthorizedOwnerErr, "a"),
				Wrap(humanOwnerErr, "b"),
				Wrap(emptyMetadataErr, "c"),
			), "outer"),
			Field: "Owner",
			Want:  []error{unauthorizedOwnerErr, humanOwnerErr},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				t.Logf("want: %#v", tc.Want)
				t.Logf(" got: %#v", got)
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestFieldPath(t *testing.T) {
	if got := FieldPath("SubAssets", 2, "Owner"); got != "SubAssets.2.Owner" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := FieldPath(); got != "" {
		t.Fatalf("unexpected empty path: %q", got)
	}
}
