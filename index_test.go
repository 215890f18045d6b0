// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/tl/lexer"
)

const testSchema = `
boolTrue#997275b5 = Bool;
auth.sendCode#a677244f phone_number:string = auth.SentCode;
auth.signIn#8d52a951 phone_code_hash:string = auth.Authorization;
---functions---
help.getConfig#c4f9186b = Config;
`

func testIndex(t *testing.T, src string, cfg *Config) *Catalog[string] {
	t.Helper()

	ctx := context.Background()

	items, err := Tokenize(ctx, src)
	require.NoError(t, err)

	c, err := Index(ctx, cfg, items)
	require.NoError(t, err)
	require.Equal(t, RootValue, c.Value())

	return c
}

func TestIndex(t *testing.T) {
	type args struct {
		src string
	}

	tests := []struct {
		name        string
		args        args
		wantOutline string
	}{
		{
			name: "valid",
			args: args{src: testSchema},
			wantOutline: ".,Bool),Config),auth.,auth.Authorization),auth.SentCode),auth.sendCode),auth.signIn))," +
				"boolTrue),functions),help.,help.getConfig)),phone_code_hash),phone_number),string))",
		},
		{
			name:        "valid (repeated identifiers)",
			args:        args{src: "vector#1cb5c415 {t:Type} # [ t ] = Vector t;\nvector {t:Type} = Vector t;"},
			wantOutline: ".,Type),Vector),vector))",
		},
		{name: "valid (no identifiers)", args: args{src: "// nothing\n"}, wantOutline: ".)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOutline, err := testIndex(t, tt.args.src, nil).Serialize(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.wantOutline, gotOutline)
		})
	}
}

func TestIndex_Debug(t *testing.T) {
	cfg := DefConfig()
	cfg.Debug = true

	c := testIndex(t, "messages.sendMessage#0d9d75a4 peer:InputPeer = Updates;", cfg)
	require.Same(t, cfg, c.Config())
}

func TestNamespaces(t *testing.T) {
	require.Equal(t, []lexer.Identifier{"auth", "help"}, Namespaces(testIndex(t, testSchema, nil)))
	require.Empty(t, Namespaces(testIndex(t, "boolTrue = Bool;", nil)))
}

func TestMembers(t *testing.T) {
	type args struct {
		ns lexer.Identifier
	}

	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr error
	}{
		{
			name: "valid",
			args: args{"auth"},
			want: []string{"auth.Authorization", "auth.SentCode", "auth.sendCode", "auth.signIn"},
		},
		{
			name: "valid (unqualified)",
			want: []string{"Bool", "Config", "boolTrue", "functions", "phone_code_hash", "phone_number", "string"},
		},
		{name: "invalid (unknown namespace)", args: args{"messages"}, wantErr: ErrNotFound},
	}

	c := testIndex(t, testSchema, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Members(context.Background(), c, tt.args.ns)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	type args struct {
		id lexer.QualifiedIdent
	}

	tests := []struct {
		name       string
		args       args
		wantParent string
		wantErr    error
	}{
		{name: "valid (qualified)", args: args{lexer.QualifiedIdent{Name: "signIn", Namespace: "auth"}}, wantParent: "auth."},
		{name: "valid (unqualified)", args: args{lexer.QualifiedIdent{Name: "Bool"}}, wantParent: RootValue},
		{name: "invalid (absent)", args: args{lexer.QualifiedIdent{Name: "logOut", Namespace: "auth"}}, wantErr: ErrNotFound},
		{name: "invalid (wrong namespace)", args: args{lexer.QualifiedIdent{Name: "getConfig", Namespace: "auth"}}, wantErr: ErrNotFound},
	}

	ctx := context.Background()
	c := testIndex(t, testSchema, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(ctx, c, tt.args.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.args.id.String(), got.Value())
			require.Equal(t, tt.wantParent, got.Parent().Value())
		})
	}
}

func TestLookup_TaggedIdent(t *testing.T) {
	_, id, err := lexer.FullIdentifier(lexer.NewCursor("help.getConfig#c4f9186b"))
	require.NoError(t, err)

	got, err := Lookup(context.Background(), testIndex(t, testSchema, nil), id.QualifiedIdent)
	require.NoError(t, err)
	require.Equal(t, "help.getConfig", got.Value())
}

func TestIdentifiers(t *testing.T) {
	ctx := context.Background()

	got, err := Identifiers(ctx, testIndex(t, "boolTrue = Bool;\nauth.logOut = Bool;", nil))
	require.NoError(t, err)
	require.Equal(t, []string{"Bool", "boolTrue", "auth.logOut"}, got)

	got, err = Identifiers(ctx, testIndex(t, "", nil))
	require.NoError(t, err)
	require.Empty(t, got)
}
