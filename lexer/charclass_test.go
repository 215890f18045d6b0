// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"testing"
)

func TestCharClass_Counts(t *testing.T) {
	tests := []struct {
		name  string
		class CharClass
		want  int
	}{
		{name: "lowercase letters", class: IsLowerLetter, want: 26},
		{name: "uppercase letters", class: IsUpperLetter, want: 26},
		{name: "digits", class: IsDigit, want: 10},
		{name: "hex digits", class: IsHexDigit, want: 16},
		{name: "letters", class: IsLetter, want: 52},
		{name: "identifier characters", class: IsIdentChar, want: 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 0
			for b := 0; b < 256; b++ {
				if tt.class(byte(b)) {
					got++
				}
			}

			if got != tt.want {
				t.Errorf("%s matched %d bytes, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsHexDigit(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want bool
	}{
		{name: "digit", b: '7', want: true},
		{name: "lowercase a", b: 'a', want: true},
		{name: "lowercase f", b: 'f', want: true},
		{name: "lowercase g", b: 'g', want: false},
		{name: "uppercase A", b: 'A', want: false},
		{name: "uppercase F", b: 'F', want: false},
		{name: "hash", b: '#', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHexDigit(tt.b); got != tt.want {
				t.Errorf("IsHexDigit(%q) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestIsIdentChar(t *testing.T) {
	for _, b := range []byte("azAZ09_") {
		if !IsIdentChar(b) {
			t.Errorf("IsIdentChar(%q) = false, want true", b)
		}
	}

	for _, b := range []byte(".#-: \n\x80\xff") {
		if IsIdentChar(b) {
			t.Errorf("IsIdentChar(%q) = true, want false", b)
		}
	}
}

func TestCharRecognizers(t *testing.T) {
	type args struct {
		input string
	}

	tests := []struct {
		name      string
		recognize func(Cursor) (Cursor, byte, error)
		args      args
		want      byte
		wantRest  string
		wantErr   error
	}{
		{name: "lowercase letter", recognize: LowerLetter, args: args{"ab"}, want: 'a', wantRest: "b"},
		{name: "lowercase letter on uppercase", recognize: LowerLetter, args: args{"Ab"}, wantRest: "Ab", wantErr: ErrUnmatched},
		{name: "uppercase letter", recognize: UpperLetter, args: args{"Zz"}, want: 'Z', wantRest: "z"},
		{name: "digit", recognize: Digit, args: args{"90"}, want: '9', wantRest: "0"},
		{name: "digit on empty input", recognize: Digit, args: args{""}, wantRest: "", wantErr: ErrUnmatched},
		{name: "hex digit", recognize: HexDigit, args: args{"f0"}, want: 'f', wantRest: "0"},
		{name: "hex digit on uppercase", recognize: HexDigit, args: args{"F0"}, wantRest: "F0", wantErr: ErrUnmatched},
		{name: "letter", recognize: Letter, args: args{"Q"}, want: 'Q', wantRest: ""},
		{name: "identifier character", recognize: IdentChar, args: args{"_x"}, want: '_', wantRest: "x"},
		{name: "identifier character on dot", recognize: IdentChar, args: args{".x"}, wantRest: ".x", wantErr: ErrUnmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.args.input)

			next, got, err := tt.recognize(c)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("recognize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("recognize() = %q, want %q", got, tt.want)
			}
			if next.Rest() != tt.wantRest {
				t.Errorf("recognize() rest = %q, want %q", next.Rest(), tt.wantRest)
			}
		})
	}
}
