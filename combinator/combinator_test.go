package combinator

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var digits = TakeWhile1("digit", func(b byte) bool { return b >= '0' && b <= '9' })

var letters = TakeWhile1("letter", func(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
})

var greeting = Whitespaced(Alternative(Literal("hi"), Literal("bye")))

func TestLiteral(t *testing.T) {
	tests := []struct {
		input  string
		status Status
		rest   string
		needed int
	}{
		{"hi there", StatusMatched, " there", 0},
		{"hi", StatusMatched, "", 0},
		{"h", StatusIncomplete, "", 1},
		{"", StatusIncomplete, "", 2},
		{"ho", StatusRejected, "", 0},
		{"bye", StatusRejected, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := Literal("hi").Parse(tt.input)
			if out.Status() != tt.status {
				t.Fatalf("got %v, want %v", out, tt.status)
			}
			switch tt.status {
			case StatusMatched:
				if out.Value() != "hi" {
					t.Errorf("value = %q, want %q", out.Value(), "hi")
				}
				if out.Rest().Rest() != tt.rest {
					t.Errorf("rest = %q, want %q", out.Rest().Rest(), tt.rest)
				}
			case StatusIncomplete:
				if out.Needed() != tt.needed {
					t.Errorf("needed = %d, want %d", out.Needed(), tt.needed)
				}
			case StatusRejected:
				if out.Failure().Pos != 0 {
					t.Errorf("failure pos = %d, want 0", out.Failure().Pos)
				}
			}
		})
	}
}

func TestWhitespaced(t *testing.T) {
	out := Whitespaced(Literal("hi")).Parse(" \t\nhi  there")
	if !out.IsMatched() {
		t.Fatalf("got %v, want match", out)
	}
	if got := out.Rest().Rest(); got != "there" {
		t.Errorf("rest = %q, want %q", got, "there")
	}

	out = Whitespaced(Literal("hi")).Parse("   ")
	if !out.IsIncomplete() {
		t.Errorf("whitespace only: got %v, want Incomplete", out)
	}
}

func TestAlternative(t *testing.T) {
	tests := []struct {
		input  string
		status Status
		value  string
		rest   string
	}{
		{" hi ", StatusMatched, "hi", ""},
		{" bye ", StatusMatched, "bye", ""},
		{"bye", StatusMatched, "bye", ""},
		{" bye hi", StatusMatched, "bye", "hi"},
		{"  hola ", StatusRejected, "", ""},
		{"b", StatusIncomplete, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := greeting.Parse(tt.input)
			if out.Status() != tt.status {
				t.Fatalf("got %v, want %v", out, tt.status)
			}
			if tt.status != StatusMatched {
				return
			}
			if out.Value() != tt.value || out.Rest().Rest() != tt.rest {
				t.Errorf("got (%q, %q), want (%q, %q)", out.Value(), out.Rest().Rest(), tt.value, tt.rest)
			}
		})
	}
}

func TestAlternativeIsOrdered(t *testing.T) {
	out := Alternative(Literal("hi"), Literal("hiya")).Parse("hiya")
	if !out.IsMatched() {
		t.Fatalf("got %v, want match", out)
	}
	if out.Value() != "hi" || out.Rest().Rest() != "ya" {
		t.Errorf("got (%q, %q), want (\"hi\", \"ya\")", out.Value(), out.Rest().Rest())
	}

	out = Alternative(Literal("hiya"), Literal("hi")).Parse("hiya")
	if out.Value() != "hiya" || !out.Rest().IsEmpty() {
		t.Errorf("got %v, want hiya with nothing left", out)
	}
}

func TestAlternativeIncompleteDoesNotHideMatch(t *testing.T) {
	out := Alternative(Literal("hiya"), Literal("h")).Parse("hi")
	if !out.IsMatched() || out.Value() != "h" {
		t.Errorf("got %v, want Matched(h)", out)
	}
}

func TestAlternativeKeepsFurthestFailure(t *testing.T) {
	ab := Recognize(Pair(Literal("a"), Literal("b")))
	out := Alternative(Literal("x"), ab, Literal("y")).Parse("ac")
	if !out.IsRejected() {
		t.Fatalf("got %v, want Rejected", out)
	}
	f := out.Failure()
	if f.Pos != 1 {
		t.Errorf("pos = %d, want 1", f.Pos)
	}
	if diff := cmp.Diff([]string{`"b"`}, f.Expected); diff != "" {
		t.Errorf("expected mismatch (-want +got):\n%s", diff)
	}

	out = Alternative(Literal("x"), Literal("y")).Parse("z")
	if diff := cmp.Diff([]string{`"x"`, `"y"`}, out.Failure().Expected); diff != "" {
		t.Errorf("tied failures should merge (-want +got):\n%s", diff)
	}
	if got := out.Failure().Error(); got != `offset 0: expected "x" or "y"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestPair(t *testing.T) {
	fullGreeting := Pair(greeting, letters)
	v, err := fullGreeting.Parse(" hi Bob  ").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (PairOf[string, string]{"hi", "Bob"}); v != want {
		t.Errorf("got %+v, want %+v", v, want)
	}
}

func TestOptionalAndComplete(t *testing.T) {
	streaming := Pair(greeting, Optional(letters))
	complete := Pair(greeting, Optional(Complete(letters)))

	v, err := streaming.Parse(" hi Bob  ").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Second != Some("Bob") {
		t.Errorf("name = %+v, want Some(Bob)", v.Second)
	}

	v, err = streaming.Parse(" bye ?").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Second.Ok {
		t.Errorf("name = %+v, want None", v.Second)
	}

	out := streaming.Parse(" bye ")
	if !out.IsIncomplete() {
		t.Errorf("streaming at end of input: got %v, want Incomplete", out)
	}
	var incomplete *IncompleteError
	if _, err := out.Result(); !errors.As(err, &incomplete) {
		t.Errorf("Result() error = %v, want *IncompleteError", err)
	}

	v, err = complete.Parse(" bye ").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.First != "bye" || v.Second.Ok {
		t.Errorf("got %+v, want (bye, None)", v)
	}
}

func TestComplete(t *testing.T) {
	out := Complete(Literal("hello")).Parse("hel")
	if !out.IsRejected() {
		t.Fatalf("got %v, want Rejected", out)
	}
	if f := out.Failure(); f.Pos != 3 || f.Expected[0] != MoreInput {
		t.Errorf("failure = %+v, want more input at 3", f)
	}
	if out := Complete(Literal("hello")).Parse("hello"); !out.IsMatched() {
		t.Errorf("got %v, want match", out)
	}
}

func TestSequence(t *testing.T) {
	abc := Sequence(Literal("a"), Literal("b"), Literal("c"))

	out := abc.Parse("abcd")
	if diff := cmp.Diff([]string{"a", "b", "c"}, out.Value()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if out.Rest().Rest() != "d" {
		t.Errorf("rest = %q, want d", out.Rest().Rest())
	}

	if out := abc.Parse("abx"); !out.IsRejected() || out.Failure().Pos != 2 {
		t.Errorf("got %v, want rejection at 2", out)
	}
	if out := abc.Parse("ab"); !out.IsIncomplete() {
		t.Errorf("got %v, want Incomplete", out)
	}
}

func TestTuple3(t *testing.T) {
	point := Tuple3(digits, Literal(","), digits)
	out := point.Parse("20,52;")
	if !out.IsMatched() {
		t.Fatalf("got %v, want match", out)
	}
	want := Triple[string, string, string]{"20", ",", "52"}
	if out.Value() != want {
		t.Errorf("got %+v, want %+v", out.Value(), want)
	}
}

func TestRepeat(t *testing.T) {
	word := Whitespaced(letters)

	tests := []struct {
		name   string
		parser Parser[[]string]
		input  string
		status Status
		want   []string
	}{
		{"repeat0 many", Repeat0(word), "a bc d", StatusMatched, []string{"a", "bc", "d"}},
		{"repeat0 none", Repeat0(word), "12", StatusMatched, nil},
		{"repeat0 empty", Repeat0(word), "", StatusMatched, nil},
		{"repeat1 many", Repeat1(word), "a b 1", StatusMatched, []string{"a", "b"}},
		{"repeat1 none", Repeat1(word), "12", StatusRejected, nil},
		{"repeat1 empty", Repeat1(word), "", StatusIncomplete, nil},
		{"incomplete element", Repeat0(Recognize(Pair(letters, Literal(";")))), "a;b", StatusIncomplete, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.parser.Parse(tt.input)
			if out.Status() != tt.status {
				t.Fatalf("got %v, want %v", out, tt.status)
			}
			if diff := cmp.Diff(tt.want, out.Value()); diff != "" {
				t.Errorf("values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRepeatStopsOnEmptyMatch(t *testing.T) {
	out := Repeat0(Optional(Literal("x"))).Parse("xxy")
	if !out.IsMatched() {
		t.Fatalf("got %v, want match", out)
	}
	if len(out.Value()) != 2 || out.Rest().Rest() != "y" {
		t.Errorf("got %v, want two matches and rest y", out)
	}
}

func TestFold(t *testing.T) {
	number := MapResult(Whitespaced(digits), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	add := func(acc, v float64) float64 { return acc + v }

	sum, err := Fold1(number, 0.0, add).Parse("1 2 3").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 6.0 {
		t.Errorf("sum = %v, want 6", sum)
	}

	sum, err = Fold0(number, 0.0, add).Parse("x").Result()
	if err != nil || sum != 0 {
		t.Errorf("Fold0 on no matches = (%v, %v), want (0, nil)", sum, err)
	}

	if out := Fold1(number, 0.0, add).Parse("x"); !out.IsRejected() {
		t.Errorf("Fold1 on no matches = %v, want Rejected", out)
	}
}

func TestFold1OnEmptyInput(t *testing.T) {
	number := Whitespaced(digits)
	count := Fold1(number, 0, func(n int, _ string) int { return n + 1 })

	for _, input := range []string{"", "   "} {
		if out := count.Parse(input); !out.IsIncomplete() {
			t.Errorf("Fold1(%q) = %v, want Incomplete", input, out)
		}

		out := Complete(count).Parse(input)
		if !out.IsRejected() {
			t.Fatalf("Complete(Fold1(%q)) = %v, want Rejected", input, out)
		}
		if diff := cmp.Diff([]string{MoreInput}, out.Failure().Expected); diff != "" {
			t.Errorf("Complete(Fold1(%q)) expected (-want +got):\n%s", input, diff)
		}
	}
}

func TestFoldLeftIsLeftAssociative(t *testing.T) {
	number := MapResult(Whitespaced(digits), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	minus := Pair(Whitespaced(Literal("-")), number)
	diff := FoldLeft(number, minus, func(acc float64, next PairOf[string, float64]) float64 {
		return acc - next.Second
	})

	v, err := diff.Parse("10 - 3 - 2").Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Errorf("10 - 3 - 2 = %v, want 5", v)
	}
}

func TestDelimited(t *testing.T) {
	parens := Delimited(Literal("("), digits, Literal(")"))

	tests := []struct {
		input  string
		status Status
		value  string
	}{
		{"(12)", StatusMatched, "12"},
		{"(12", StatusIncomplete, ""},
		{"(12]", StatusRejected, ""},
		{"12)", StatusRejected, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := parens.Parse(tt.input)
			if out.Status() != tt.status {
				t.Fatalf("got %v, want %v", out, tt.status)
			}
			if out.Value() != tt.value {
				t.Errorf("value = %q, want %q", out.Value(), tt.value)
			}
		})
	}
}

func TestPrecededTerminated(t *testing.T) {
	if v, _ := Preceded(Literal("$"), digits).Parse("$42").Result(); v != "42" {
		t.Errorf("Preceded = %q, want 42", v)
	}
	if v, _ := Terminated(digits, Literal("%")).Parse("42%").Result(); v != "42" {
		t.Errorf("Terminated = %q, want 42", v)
	}
}

func TestMapResult(t *testing.T) {
	int8Parser := MapResult(digits, func(s string) (int8, error) {
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err
	})

	v, err := int8Parser.Parse("120").Result()
	if err != nil || v != 120 {
		t.Errorf("120 = (%v, %v), want (120, nil)", v, err)
	}

	out := int8Parser.Parse("x1200")
	if !out.IsRejected() || out.Failure().Kind != FailureSyntax {
		t.Errorf("x1200 = %v, want syntax rejection", out)
	}

	out = int8Parser.Parse("1200")
	if !out.IsRejected() {
		t.Fatalf("1200 = %v, want Rejected", out)
	}
	f := out.Failure()
	if f.Kind != FailureNumericConversion || f.Raw != "1200" {
		t.Errorf("failure = %+v, want numeric conversion of 1200", f)
	}
	if !errors.Is(f, strconv.ErrRange) {
		t.Errorf("failure %v should wrap strconv.ErrRange", f)
	}
}

func TestRecognizeAndValue(t *testing.T) {
	signed := Recognize(Pair(Optional(Alternative(Literal("+"), Literal("-"))), digits))
	if v, _ := signed.Parse("+12").Result(); v != "+12" {
		t.Errorf("Recognize = %q, want +12", v)
	}
	if v, _ := signed.Parse("4").Result(); v != "4" {
		t.Errorf("Recognize = %q, want 4", v)
	}
	if v, _ := Value(Literal("yes"), true).Parse("yes").Result(); !v {
		t.Errorf("Value = %v, want true", v)
	}
}

func TestRefAndNested(t *testing.T) {
	var nested Parser[int]
	nested = Alternative(
		Map(Nested(3, Delimited(Literal("("), Ref(&nested), Literal(")"))), func(n int) int { return n + 1 }),
		Value(Literal("x"), 0),
	)

	tests := []struct {
		input  string
		status Status
		depth  int
		kind   FailureKind
	}{
		{"x", StatusMatched, 0, 0},
		{"((x))", StatusMatched, 2, 0},
		{"(((x)))", StatusMatched, 3, 0},
		{"((((x))))", StatusRejected, 0, FailureDepth},
		{"((x)", StatusIncomplete, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := nested.Parse(tt.input)
			if out.Status() != tt.status {
				t.Fatalf("got %v, want %v", out, tt.status)
			}
			switch tt.status {
			case StatusMatched:
				if out.Value() != tt.depth {
					t.Errorf("depth = %d, want %d", out.Value(), tt.depth)
				}
				if out.Rest().Depth() != 0 {
					t.Errorf("remainder depth = %d, want 0", out.Rest().Depth())
				}
			case StatusRejected:
				if out.Failure().Kind != tt.kind {
					t.Errorf("kind = %v, want %v", out.Failure().Kind, tt.kind)
				}
			}
		})
	}
}

func TestParsersAreReusable(t *testing.T) {
	for i := 0; i < 3; i++ {
		out := greeting.Parse(" bye hi")
		if out.Value() != "bye" || out.Rest().Rest() != "hi" {
			t.Fatalf("run %d: got %v", i, out)
		}
	}
}

func TestParsersAreSafeForConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				out := greeting.Parse(" bye hi")
				if out.Value() != "bye" || out.Rest().Rest() != "hi" {
					t.Errorf("goroutine %d run %d: got %v", g, i, out)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFoldStopsOnConversionFailure(t *testing.T) {
	small := MapResult(Whitespaced(digits), func(s string) (int8, error) {
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err
	})

	out := Repeat0(small).Parse("1 2 300 4")
	if !out.IsRejected() {
		t.Fatalf("got %v, want Rejected", out)
	}
	if f := out.Failure(); f.Kind != FailureNumericConversion || f.Pos != 4 {
		t.Errorf("failure = %+v, want numeric conversion at 4", f)
	}
}
