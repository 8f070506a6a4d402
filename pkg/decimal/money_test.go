package decimal

import (
	"regexp"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" {
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{228416.3636831503, "228416.36"},
		{2.344, "2.34"},
		{-8.126, "-8.13"},
		{0, "0.00"},
		// shortest decimal form 1.005 rounds half away from zero
		{1.005, "1.01"},
	}
	for _, c := range cases {
		if got := RoundCents(c.in).StringFixed(2); got != c.out {
			t.Fatalf("RoundCents(%v) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	m := NewMoney(100)
	if got := m.Annual().String(); got != "1200.00" {
		t.Fatalf("Annual got %s", got)
	}
	if got := m.Annual().Monthly().String(); got != "100.00" {
		t.Fatalf("Monthly after Annual got %s", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)
	if got := a.Add(b).String(); got != "140.00" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "60.00" {
		t.Fatalf("Sub got %s", got)
	}
	if !a.GreaterThan(b) || !b.LessThan(a) || a.Equal(b) {
		t.Fatalf("comparison mismatch")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "0 FCFA"},
		{"999", "999 FCFA"},
		{"1000", "1 000 FCFA"},
		{"228416.36", "228 416,36 FCFA"},
		{"1234567.8", "1 234 567,80 FCFA"},
		{"-8416.4", "-8 416,40 FCFA"},
		{"-0.004", "0 FCFA"},
		{"1000000000", "1 000 000 000 FCFA"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Format(); got != c.out {
			t.Fatalf("Format(%s) got %q want %q", c.in, got, c.out)
		}
	}
}

func TestGroupEnglish(t *testing.T) {
	if got := Group(stddec.NewFromFloat(1234567.891), ",", "."); got != "1,234,567.89" {
		t.Fatalf("Group got %q", got)
	}
}

func TestGroupUsesPlainSeparator(t *testing.T) {
	got := Group(stddec.NewFromFloat(9876543.21), " ", ",")
	if got != "9 876 543,21" {
		t.Fatalf("Group got %q", got)
	}
	if strings.ContainsAny(got, "\u00a0\u202f") {
		t.Fatalf("Group leaked a no-break space: %q", got)
	}
}

func TestGroupBeyondInt64(t *testing.T) {
	d := stddec.RequireFromString("12345678901234567890123.45")
	got := Group(d, " ", ",")
	if !regexp.MustCompile(`^12 345 678 901 234 56\d \d{3} \d{3},45$`).MatchString(got) {
		t.Fatalf("Group got %q", got)
	}
}
