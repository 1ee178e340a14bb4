package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    *FieldSpec
		wantErr bool
	}{
		{
			name: "single bit",
			line: "@field Parity 4",
			want: &FieldSpec{Name: "Parity", Bool: true, Lsb: 4, Msb: 5},
		},
		{
			name: "exclusive range",
			line: "@field Divisor 0..4",
			want: &FieldSpec{Name: "Divisor", Lsb: 0, Msb: 4},
		},
		{
			name: "inclusive range normalized to exclusive",
			line: "@field b 6..=17 uint16",
			want: &FieldSpec{Name: "b", Lsb: 6, Msb: 18, Storage: "uint16"},
		},
		{
			name: "interface type",
			line: "@field Sub 26..32 uint8 as:SubFields",
			want: &FieldSpec{Name: "Sub", Lsb: 26, Msb: 32, Storage: "uint8", Iface: "SubFields"},
		},
		{
			name: "conversion pair",
			line: "@field Speed 0..3 as:Speed from:speedFromBits into:speedToBits",
			want: &FieldSpec{
				Name: "Speed", Lsb: 0, Msb: 3,
				Iface: "Speed", From: "speedFromBits", Into: "speedToBits",
			},
		},
		{
			name: "doc string",
			line: `@field Mode 4..8 "operating mode, overlaps Parity"`,
			want: &FieldSpec{Name: "Mode", Lsb: 4, Msb: 8, Doc: "operating mode, overlaps Parity"},
		},
		{
			name:    "inverted range",
			line:    "@field X 4..0",
			wantErr: true,
		},
		{
			name:    "empty range",
			line:    "@field X 4..4",
			wantErr: true,
		},
		{
			name:    "missing range",
			line:    "@field X",
			wantErr: true,
		},
		{
			name:    "bad storage type",
			line:    "@field X 0..4 int8",
			wantErr: true,
		},
		{
			name:    "storage on boolean field",
			line:    "@field X 4 uint8",
			wantErr: true,
		},
		{
			name:    "from without into",
			line:    "@field X 0..4 as:Y from:f",
			wantErr: true,
		},
		{
			name:    "conversion pair without interface type",
			line:    "@field X 0..4 from:f into:g",
			wantErr: true,
		},
		{
			name:    "bad field name",
			line:    "@field 4x 0..4",
			wantErr: true,
		},
		{
			name:    "stray token",
			line:    "@field X 0..4 uint8 bogus",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseField(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("field mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldSpecWidth(t *testing.T) {
	f := &FieldSpec{Lsb: 6, Msb: 18}
	if f.Width() != 12 {
		t.Errorf("Width() = %d, want 12", f.Width())
	}
}
