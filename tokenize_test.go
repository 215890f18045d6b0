// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/tl/lexer"
)

func TestTokenize(t *testing.T) {
	type args struct {
		src  string
		opts []lexer.Option
	}

	tests := []struct {
		name    string
		args    args
		wantIDs []lexer.ItemID
		wantErr error
	}{
		{
			name: "valid",
			args: args{src: "int32#d0d0d0d0 = Int;"},
			wantIDs: []lexer.ItemID{
				lexer.ItemLowerIdent, lexer.ItemPunct, lexer.ItemUpperIdent, lexer.ItemPunct,
			},
		},
		{
			name: "valid (comments)",
			args: args{src: "/* x */ true = True;", opts: []lexer.Option{lexer.WithComments(true)}},
			wantIDs: []lexer.ItemID{
				lexer.ItemComment, lexer.ItemLowerIdent, lexer.ItemPunct, lexer.ItemUpperIdent, lexer.ItemPunct,
			},
		},
		{name: "valid (empty)", args: args{src: ""}},
		{
			name: "valid (field access isn't a namespace)",
			args: args{src: "foo.b = X;"},
			wantIDs: []lexer.ItemID{
				lexer.ItemVarIdent, lexer.ItemPunct, lexer.ItemVarIdent,
				lexer.ItemPunct, lexer.ItemVarIdent, lexer.ItemPunct,
			},
		},
		{name: "invalid (malformed tag)", args: args{src: "foo#12 = X;"}, wantErr: lexer.ErrMalformedTag},
		{name: "invalid (unterminated)", args: args{src: "x /* open"}, wantErr: lexer.ErrUnterminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(context.Background(), tt.args.src, tt.args.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrTokenize)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)

			gotIDs := make([]lexer.ItemID, 0, len(got))
			for index := range got {
				gotIDs = append(gotIDs, got[index].ID)
			}
			if tt.wantIDs == nil {
				tt.wantIDs = []lexer.ItemID{}
			}
			require.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestTokenize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Tokenize(ctx, strings.Repeat("boolTrue = Bool;\n", 32), lexer.WithBufferSize(0))
	require.ErrorIs(t, err, ErrTokenize)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)
}

func TestTokenize_OptionsUntouched(t *testing.T) {
	opts := make([]lexer.Option, 1, 4)
	opts[0] = lexer.WithComments(true)

	_, err := Tokenize(context.Background(), "a = B;", opts...)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	require.Nil(t, opts[:2][1])
}

func TestTokenizeAll(t *testing.T) {
	sources := []string{
		"boolFalse#bc799737 = Bool;",
		"user#1f8 = User;",
		"auth.logOut = Bool;",
		"x @",
	}

	cfg := DefConfig()
	cfg.Workers = 2

	got, err := TokenizeAll(context.Background(), cfg, sources)
	require.Error(t, err)
	require.ErrorIs(t, err, lexer.ErrMalformedTag)
	require.ErrorIs(t, err, lexer.ErrUnknownTokens)
	require.ErrorContains(t, err, "source 1:")
	require.ErrorContains(t, err, "source 3:")

	require.Len(t, got, len(sources))
	require.Len(t, got[0], 4)
	require.Nil(t, got[1])
	require.Len(t, got[2], 4)
	require.Equal(t, "auth.logOut", got[2][0].Val)
	require.Nil(t, got[3])

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	require.Len(t, joined.Unwrap(), 2)
}

func TestTokenizeAll_Empty(t *testing.T) {
	got, err := TokenizeAll(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func BenchmarkTokenizeAll(b *testing.B) {
	sources := make([]string, 16)
	for index := range sources {
		sources[index] = "messages.sendMessage#0d9d75a4 flags:# peer:InputPeer message:string = Updates;"
	}

	cfg := DefConfig()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := TokenizeAll(ctx, cfg, sources); err != nil {
			b.Fatal(err)
		}
	}
}
