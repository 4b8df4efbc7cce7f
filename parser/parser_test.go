package parser

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sgf/ast"
	"github.com/xiam/sgf/lexer"
)

type props = map[string][]string

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out *ast.Node
	}{
		{
			In:  `(;)`,
			Out: ast.NewNode(nil),
		},
		{
			In:  `(;A[B])`,
			Out: ast.NewNode(props{"A": {"B"}}),
		},
		{
			In:  `(;A[b]C[d])`,
			Out: ast.NewNode(props{"A": {"b"}, "C": {"d"}}),
		},
		{
			In:  `(;A[b][c][d])`,
			Out: ast.NewNode(props{"A": {"b", "c", "d"}}),
		},
		{
			In:  `(;A[])`,
			Out: ast.NewNode(props{"A": {""}}),
		},
		{
			In:  `(;A[B];B[C])`,
			Out: ast.NewNode(props{"A": {"B"}}, ast.NewNode(props{"B": {"C"}})),
		},
		{
			In: `(;A[B](;C[D])(;E[F]))`,
			Out: ast.NewNode(props{"A": {"B"}},
				ast.NewNode(props{"C": {"D"}}),
				ast.NewNode(props{"E": {"F"}}),
			),
		},
		{
			In: `(;A[B];C[D];E[F])`,
			Out: ast.NewNode(props{"A": {"B"}},
				ast.NewNode(props{"C": {"D"}}),
				ast.NewNode(props{"E": {"F"}}),
			),
		},
		{
			In: `(;A[B](;C[D];E[F])(;G[H]))`,
			Out: ast.NewNode(props{"A": {"B"}},
				ast.NewNode(props{"C": {"D"}},
					ast.NewNode(props{"E": {"F"}}),
				),
				ast.NewNode(props{"G": {"H"}}),
			),
		},
		{
			In: `(;A[B];C[D](;E[F]);G[H])`,
			Out: ast.NewNode(props{"A": {"B"}},
				ast.NewNode(props{"C": {"D"}}),
				ast.NewNode(props{"E": {"F"}}),
				ast.NewNode(props{"G": {"H"}}),
			),
		},
		{
			In: `(;(;(;)))`,
			Out: ast.NewNode(nil,
				ast.NewNode(nil,
					ast.NewNode(nil),
				),
			),
		},
		{
			In:  `(;A[b]C[d]A[e])`,
			Out: ast.NewNode(props{"A": {"e"}, "C": {"d"}}),
		},
		{
			In:  `(;A[b][c]A[d])`,
			Out: ast.NewNode(props{"A": {"d"}}),
		},
		{
			In:  `(;FF[4]C[root]SZ[19])`,
			Out: ast.NewNode(props{"FF": {"4"}, "C": {"root"}, "SZ": {"19"}}),
		},
		{
			In:  "(;A[hello\t world])",
			Out: ast.NewNode(props{"A": {"hello  world"}}),
		},
		{
			In:  "(;A[hello\nworld])",
			Out: ast.NewNode(props{"A": {"hello\nworld"}}),
		},
		{
			In:  `(;A[\]b\nc\nd\t\te \n\]])`,
			Out: ast.NewNode(props{"A": {"]bncndtte n]"}}),
		},
		{
			In:  "(;A[\\\nb])",
			Out: ast.NewNode(props{"A": {"\nb"}}),
		},
		{
			In:  `(;A[\\])`,
			Out: ast.NewNode(props{"A": {`\`}}),
		},
		{
			In:  `(;\A[x])`,
			Out: ast.NewNode(props{"A": {"x"}}),
		},
		{
			In:  `(;A[ x_1 ])`,
			Out: ast.NewNode(props{"A": {" x_1 "}}),
		},
	}

	for i := range testCases {
		root, err := ParseString(testCases[i].In)
		require.NoError(t, err, "%q", testCases[i].In)
		require.NotNil(t, root)

		if !assert.True(t, testCases[i].Out.Equal(root), "%q", testCases[i].In) {
			var sb strings.Builder
			ast.Fprint(&sb, root)
			t.Log(sb.String())
		}
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{In: ``, Err: ErrSyntax},
		{In: `()`, Err: ErrSyntax},
		{In: `;`, Err: ErrSyntax},
		{In: `(;A[B]`, Err: ErrSyntax},
		{In: `(;A[B)`, Err: ErrSyntax},
		{In: `(;A)`, Err: ErrSyntax},
		{In: `(A[B])`, Err: ErrSyntax},
		{In: `((;A[B]))`, Err: ErrSyntax},
		{In: `(;A[B])(;C[D])`, Err: ErrSyntax},
		{In: `(;A[B]) `, Err: ErrSyntax},
		{In: "(;A[B]\n;C[D])", Err: ErrSyntax},
		{In: `(;A[B]])`, Err: ErrSyntax},
		{In: `(;A[B:C])`, Err: ErrSyntax},
		{In: `(;A[B])\`, Err: ErrSyntax},
		{In: "\uFEFF(;)", Err: ErrSyntax},
		{In: "\uFEFF(;A[B])", Err: ErrSyntax},
		{In: "(;A[\x00])", Err: ErrSyntax},
		{In: "(;A[\xff])", Err: ErrSyntax},
		{In: `(;a[1])`, Err: ErrPropertyCasing},
		{In: `(;Aa[1])`, Err: ErrPropertyCasing},
		{In: `(;A1[1])`, Err: ErrPropertyCasing},
		{In: `(;A B[1])`, Err: ErrPropertyCasing},
		{In: `(;A[B];c[d])`, Err: ErrPropertyCasing},
		{In: `(;a[1]`, Err: ErrPropertyCasing},
	}

	for i := range testCases {
		root, err := ParseString(testCases[i].In)
		assert.Nil(t, root)
		assert.True(t, errors.Is(err, testCases[i].Err), "%q: %v", testCases[i].In, err)
		t.Log(err)
	}
}

func TestParserErrorPosition(t *testing.T) {
	_, err := ParseString("(;A[B]\n;c[d])")
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrSyntax, perr.Err)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 7, perr.Col)

	_, err = ParseString("(;A[B]\n)(;B[C];Cc[d])")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))

	_, err = ParseString("(;A[B];Cc[d])")
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ErrPropertyCasing, perr.Err)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 8, perr.Col)
	assert.Equal(t, "Cc", perr.Text)
	assert.Equal(t, `1:8: property identifier is not upper case "Cc"`, perr.Error())
}

func TestParserLexerErrors(t *testing.T) {
	for _, in := range []string{`(;A[B#])`, "\uFEFF(;A[B])", "(;A[\x00])", "(;A[\xff])"} {
		root, err := ParseString(in)
		assert.Nil(t, root)
		require.Error(t, err)

		assert.True(t, errors.Is(err, ErrSyntax), "%q", in)
		assert.True(t, errors.Is(err, lexer.ErrUnexpectedCharacter), "%q", in)
	}
}

func TestParserDeterministic(t *testing.T) {
	in := `(;FF[4]C[root](;B[aa];W[ab])(;B[dd\]];W[ee]))`

	expected, err := ParseString(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*ast.Node, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root, err := Parse([]byte(in))
			if err == nil {
				results[i] = root
			}
		}(i)
	}
	wg.Wait()

	for i := range results {
		assert.True(t, expected.Equal(results[i]))
	}
}

func TestAssembleValue(t *testing.T) {
	testCases := []struct {
		In  []*lexer.Token
		Out string
	}{
		{
			In:  []*lexer.Token{},
			Out: "",
		},
		{
			In: []*lexer.Token{
				lexer.NewToken(lexer.TokenName, "foo", 1, 1),
				lexer.NewToken(lexer.TokenSpace, " ", 1, 4),
				lexer.NewToken(lexer.TokenNewLine, "\n", 1, 5),
				lexer.NewToken(lexer.TokenEscape, "]", 2, 1),
				lexer.NewToken(lexer.TokenEscape, "\n", 2, 3),
				lexer.NewToken(lexer.TokenName, "bar", 3, 1),
			},
			Out: "foo \n]\nbar",
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, assembleValue(testCases[i].In))
	}
}

func TestIsUpperIdentifier(t *testing.T) {
	assert.True(t, isUpperIdentifier("A"))
	assert.True(t, isUpperIdentifier("ABC"))

	assert.False(t, isUpperIdentifier(""))
	assert.False(t, isUpperIdentifier("a"))
	assert.False(t, isUpperIdentifier("AbC"))
	assert.False(t, isUpperIdentifier("A_B"))
	assert.False(t, isUpperIdentifier("A1"))
	assert.False(t, isUpperIdentifier("A B"))
}
