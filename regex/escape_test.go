package regex

import "testing"

func TestEscapeReaderPlainChars(t *testing.T) {
	r := newEscapeReader("ab")
	ec, pos, ok, err := r.next()
	if err != nil || !ok || ec.escaped || ec.char != 'a' || pos != 0 {
		t.Fatalf("first next() = %+v, pos=%d, ok=%v, err=%v", ec, pos, ok, err)
	}
	ec, pos, ok, err = r.next()
	if err != nil || !ok || ec.escaped || ec.char != 'b' || pos != 1 {
		t.Fatalf("second next() = %+v, pos=%d, ok=%v, err=%v", ec, pos, ok, err)
	}
	_, _, ok, err = r.next()
	if err != nil || ok {
		t.Fatalf("third next() = ok=%v, err=%v, want exhausted", ok, err)
	}
}

func TestEscapeReaderEscapedChar(t *testing.T) {
	r := newEscapeReader(`a\*b`)
	r.next() // 'a'
	ec, pos, ok, err := r.next()
	if err != nil || !ok || !ec.escaped || ec.char != '*' || pos != 1 {
		t.Fatalf("escaped next() = %+v, pos=%d, ok=%v, err=%v", ec, pos, ok, err)
	}
}

func TestEscapeReaderDanglingBackslash(t *testing.T) {
	r := newEscapeReader(`a\`)
	r.next() // 'a'
	_, _, _, err := r.next()
	if err == nil {
		t.Fatal("dangling backslash: want error, got nil")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("error type = %T, want *SyntaxError", err)
	}
}
