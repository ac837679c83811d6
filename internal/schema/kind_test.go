// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Kind
		wantErr error
	}{
		{in: "text", want: KindText},
		{in: "file", want: KindFile},
		{in: "files", want: KindFiles},
		{in: "directory", want: KindDirectory},
		{in: "directories", want: KindDirectories},
		{in: "boolean", want: KindBoolean},
		{in: "field", want: KindText},
		{in: "filepicker", want: KindFile},
		{in: "checkbox", want: KindBoolean},
		{in: "", wantErr: ErrMissingKind},
		{in: "Text", wantErr: ErrUnknownKind},
		{in: "slider", wantErr: ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseKind(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKinds_AllValid(t *testing.T) {
	t.Parallel()

	kinds := Kinds()
	if len(kinds) != 6 {
		t.Fatalf("expected 6 kinds, got %d", len(kinds))
	}
	for _, k := range kinds {
		if !k.IsValid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if Kind("field").IsValid() {
		t.Error("legacy spellings are aliases, not kinds")
	}
}

func TestUnknownKindError(t *testing.T) {
	t.Parallel()

	var err error = &UnknownKindError{Value: "slider"}
	if err.Error() != `unknown option type "slider"` {
		t.Errorf("Error() = %q", err.Error())
	}
	var uke *UnknownKindError
	if !errors.As(err, &uke) || uke.Value != "slider" {
		t.Error("errors.As should recover the value")
	}
}
