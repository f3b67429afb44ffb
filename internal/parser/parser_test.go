package parser

import (
	"errors"
	"testing"

	"github.com/jacoelho/jed/internal/lexer"
	"github.com/jacoelho/jed/internal/value"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v value.Value)
	}{
		{
			name:  "nested_object",
			input: `{"user":{"name":"Ann","age":30}}`,
			check: func(t *testing.T, v value.Value) {
				user, ok := v.(*value.Object).Get("user")
				if !ok {
					t.Fatal("missing user")
				}
				age, _ := user.(*value.Object).Get("age")
				if age != value.Number(30) {
					t.Errorf("age = %v, want 30", age)
				}
				name, _ := user.(*value.Object).Get("name")
				if name != value.String("Ann") {
					t.Errorf("name = %v, want Ann", name)
				}
			},
		},
		{
			name:  "key_order_preserved",
			input: `{"z": 1, "a": 2, "m": 3}`,
			check: func(t *testing.T, v value.Value) {
				obj := v.(*value.Object)
				want := []string{"z", "a", "m"}
				for i, k := range want {
					if obj.Entries[i].Key != k {
						t.Errorf("entry %d key = %q, want %q", i, obj.Entries[i].Key, k)
					}
				}
			},
		},
		{
			name:  "duplicate_keys_kept",
			input: `{"a": 1, "a": 2}`,
			check: func(t *testing.T, v value.Value) {
				obj := v.(*value.Object)
				if obj.Len() != 2 {
					t.Fatalf("Len() = %d, want 2", obj.Len())
				}
				if got, _ := obj.Get("a"); got != value.Number(1) {
					t.Errorf("Get(a) = %v, want first occurrence 1", got)
				}
			},
		},
		{
			name:  "array_of_leaves",
			input: `[1, -2.5, "s", true, false, null, [], {}]`,
			check: func(t *testing.T, v value.Value) {
				arr := v.(*value.Array)
				wantKinds := []value.Kind{
					value.KindNumber, value.KindNumber, value.KindString, value.KindBool,
					value.KindBool, value.KindNull, value.KindArray, value.KindObject,
				}
				if arr.Len() != len(wantKinds) {
					t.Fatalf("Len() = %d, want %d", arr.Len(), len(wantKinds))
				}
				for i, k := range wantKinds {
					if arr.Items[i].Kind() != k {
						t.Errorf("item %d kind = %v, want %v", i, arr.Items[i].Kind(), k)
					}
				}
				if arr.Items[1] != value.Number(-2.5) {
					t.Errorf("item 1 = %v, want -2.5", arr.Items[1])
				}
			},
		},
		{
			name:  "scalar_document",
			input: "  42  ",
			check: func(t *testing.T, v value.Value) {
				if v != value.Number(42) {
					t.Errorf("value = %v, want 42", v)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, v)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrSyntax},
		{name: "trailing_comma_object", input: `{"a":1,}`, wantErr: ErrSyntax},
		{name: "trailing_comma_array", input: `[1,]`, wantErr: ErrSyntax},
		{name: "missing_colon", input: `{"a" 1}`, wantErr: ErrSyntax},
		{name: "missing_close", input: `{"a":1`, wantErr: ErrSyntax},
		{name: "non_string_key", input: `{1:2}`, wantErr: ErrSyntax},
		{name: "trailing_input", input: `{} {}`, wantErr: ErrSyntax},
		{name: "number_overflow", input: `1e400`, wantErr: ErrSyntax},
		{name: "number_underflow", input: `[1e-400]`, wantErr: ErrSyntax},
		{name: "trailing_unlexable_input", input: `{"a": 1} trailing`, wantErr: lexer.ErrLexical},
		{name: "unterminated_string", input: `{"a":"b`, wantErr: lexer.ErrLexical},
		{name: "comment", input: `{} // c`, wantErr: lexer.ErrLexical},
		{name: "infinity", input: `Infinity`, wantErr: lexer.ErrLexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			var posErr *lexer.Error
			if !errors.As(err, &posErr) {
				t.Fatalf("error type = %T, want *lexer.Error", err)
			}
			if posErr.Line < 1 || posErr.Column < 1 {
				t.Errorf("position = %d:%d, want 1-based", posErr.Line, posErr.Column)
			}
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := Parse("{\n  \"a\": 1,\n}")
	var posErr *lexer.Error
	if !errors.As(err, &posErr) {
		t.Fatalf("error = %v, want *lexer.Error", err)
	}
	if posErr.Line != 3 || posErr.Column != 1 {
		t.Errorf("position = %d:%d, want 3:1", posErr.Line, posErr.Column)
	}
}

func TestBuildIgnoresTrailingInput(t *testing.T) {
	t.Parallel()

	p := New(`{"a": 1} garbage`)
	v, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if v.Kind() != value.KindObject {
		t.Errorf("Build() kind = %v, want object", v.Kind())
	}
	if p.Validate() {
		t.Error("Validate() = true, want false for trailing input")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "object", input: `{"a": {"b": [1, 2, {"c": null}]}}`, want: true},
		{name: "scalar", input: `"text"`, want: true},
		{name: "whitespace_around", input: " \n\t[ ]\r\n", want: true},
		{name: "trailing_comma", input: `{"a":1,}`, want: false},
		{name: "trailing_value", input: `1 2`, want: false},
		{name: "trailing_garbage", input: `{"a": 1} trailing`, want: false},
		{name: "underflow", input: `{"a": 1e-400}`, want: false},
		{name: "zero_exponent", input: `0e-400`, want: true},
		{name: "unknown_character", input: `{"a": @}`, want: false},
		{name: "empty", input: ``, want: false},
		{name: "bare_key", input: `{a: 1}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New(tt.input)
			first := p.Validate()
			second := p.Validate()
			if first != tt.want {
				t.Errorf("Validate() = %v, want %v", first, tt.want)
			}
			if first != second {
				t.Errorf("Validate() not idempotent: %v then %v", first, second)
			}
			if got := Validate(tt.input); got != tt.want {
				t.Errorf("package Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrailingInputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "second_value", input: `{"a": 1} []`, wantErr: ErrSyntax},
		{name: "unlexable", input: `{"a": 1} trailing`, wantErr: lexer.ErrLexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New(tt.input)
			if _, err := p.Build(); err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			err := p.Check()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Check() error = %v, want %v", err, tt.wantErr)
			}
			var posErr *lexer.Error
			if !errors.As(err, &posErr) || posErr.Line != 1 || posErr.Column != 10 {
				t.Errorf("Check() error = %v, want position 1:10", err)
			}
		})
	}
}

func TestValidateAfterBuild(t *testing.T) {
	t.Parallel()

	p := New(`[1, [2, [3]]]`)
	if _, err := p.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := p.Check(); err != nil {
		t.Errorf("Check() after Build() = %v, want nil", err)
	}
	if _, err := p.Build(); err != nil {
		t.Errorf("Build() after Check() = %v, want nil", err)
	}
}
