package numeral

import (
	"errors"
	"testing"
)

func TestNumeral_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e string
			want string
		}{
			{"100.5", "0.25", "100.7500000000"},
			{"0.1", "0.2", "0.3000000000"},
			{"-1", "1", "0.0000000000"},
			{"1.5", "-2.25", "-0.7500000000"},
			{"0", "0", "0.0000000000"},
			{"99999999999999999999", "1", "100000000000000000000.0000000000"},
			{"0.00000000001", "0", "0.0000000000"},
			{"0.00000000005", "0", "0.0000000001"},
			{"-0.00000000005", "0", "-0.0000000001"},
			{"0.000000000049", "0", "0.0000000000"},
		}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			got := d.Add(e)
			if got.String() != tt.want {
				t.Errorf("%q.Add(%q) = %q, want %q", d, e, got, tt.want)
			}
			if got.Prec() != d.Prec() {
				t.Errorf("%q.Add(%q).Prec() = %v, want %v", d, e, got.Prec(), d.Prec())
			}
		}
	})

	t.Run("int", func(t *testing.T) {
		d := MustParse("1.25")
		got := d.Add(Int(-3))
		if got.String() != "-1.7500000000" {
			t.Errorf("%q.Add(-3) = %q, want %q", d, got, "-1.7500000000")
		}
	})

	t.Run("immutability", func(t *testing.T) {
		d, e := MustParse("1.1"), MustParse("2.2")
		_ = d.Add(e)
		if d.String() != "1.1" || e.String() != "2.2" {
			t.Errorf("Add changed its operands to %q and %q", d, e)
		}
	})
}

func TestNumeral_AddPrec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e string
			prec int
			want string
		}{
			{"1.005", "0", 2, "1.01"},
			{"-1.005", "0", 2, "-1.01"},
			{"1.004", "0", 2, "1.00"},
			{"2.5", "0", 0, "3"},
			{"-2.5", "0", 0, "-3"},
			{"2.4", "0", 0, "2"},
			{"1", "2", 3, "3.000"},
			{"0.1", "0.2", MaxPrec, "0.3" + zeros(MaxPrec-1)},
		}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			got, err := d.AddPrec(e, tt.prec)
			if err != nil {
				t.Errorf("%q.AddPrec(%q, %v) failed: %v", d, e, tt.prec, err)
				continue
			}
			if got.String() != tt.want || got.Prec() != tt.prec {
				t.Errorf("%q.AddPrec(%q, %v) = [%q %v], want [%q %v]", d, e, tt.prec, got, got.Prec(), tt.want, tt.prec)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d, e := MustParse("1"), MustParse("2")
		for _, prec := range []int{-1, MaxPrec + 1} {
			_, err := d.AddPrec(e, prec)
			if !errors.Is(err, ErrPrecisionRange) {
				t.Errorf("%q.AddPrec(%q, %v) error = %v, want %v", d, e, prec, err, ErrPrecisionRange)
			}
		}
	})
}

func TestNumeral_Sub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e string
			prec int
			want string
		}{
			{"1", "0.9999", 4, "0.0001"},
			{"1", "0.9999", 3, "0.000"},
			{"-0.0001", "0", 2, "0.00"},
			{"100.75", "0.25", 10, "100.5000000000"},
			{"0.3", "0.1", 10, "0.2000000000"},
			{"-5", "-5", 1, "0.0"},
			{"12345678901234567890.5", "0.5", 0, "12345678901234567890"},
		}
		for _, tt := range tests {
			d, e := MustParsePrec(tt.d, tt.prec), MustParse(tt.e)
			got := d.Sub(e)
			if got.String() != tt.want {
				t.Errorf("%q.Sub(%q) = %q, want %q", d, e, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d, e := MustParse("1"), MustParse("2")
		_, err := d.SubPrec(e, -1)
		if !errors.Is(err, ErrPrecisionRange) {
			t.Errorf("%q.SubPrec(%q, -1) error = %v, want %v", d, e, err, ErrPrecisionRange)
		}
	})
}

func TestNumeral_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e string
			prec int
			want string
		}{
			{"1.5", "2", 10, "3.0000000000"},
			{"-0.1", "0.1", 10, "-0.0100000000"},
			{"0.125", "0.5", 2, "0.06"},
			{"0.375", "1", 2, "0.38"},
			{"-0.375", "1", 2, "-0.38"},
			{"0.333", "3", 2, "1.00"},
			{"123456789.123", "1000", 10, "123456789123.0000000000"},
			{"0", "-5.5", 1, "0.0"},
			{"-2", "-3", 0, "6"},
			{"99999999999.99", "99999999999.99", 4, "9999999999998000000000.0001"},
		}
		for _, tt := range tests {
			d, e := MustParsePrec(tt.d, tt.prec), MustParse(tt.e)
			got := d.Mul(e)
			if got.String() != tt.want {
				t.Errorf("%q.Mul(%q) = %q, want %q", d, e, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d, e := MustParse("1"), MustParse("2")
		_, err := d.MulPrec(e, MaxPrec+1)
		if !errors.Is(err, ErrPrecisionRange) {
			t.Errorf("%q.MulPrec(%q, %v) error = %v, want %v", d, e, MaxPrec+1, err, ErrPrecisionRange)
		}
	})
}

func TestNumeral_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d, e string
			prec int
			want string
		}{
			{"10", "4", 10, "2.5000000000"},
			{"10", "-4", 10, "-2.5000000000"},
			{"1", "3", 10, "0.3333333333"},
			{"2", "3", 10, "0.6666666667"},
			{"-2", "3", 10, "-0.6666666667"},
			{"1.5", "0.25", 10, "6.0000000000"},
			{"0.25", "0.5", 10, "0.5000000000"},
			{"1", "8", 2, "0.13"},
			{"-1", "8", 2, "-0.13"},
			{"12.345", "1.5", 10, "8.2300000000"},
			{"0", "7", 0, "0"},
			{"1", "0.001", 0, "1000"},
			{"0.001", "1000", 6, "0.000001"},
			{"0.001", "1000", 5, "0.00000"},
			{"100", "7", 20, "14.28571428571428571429"},
		}
		for _, tt := range tests {
			d, e := MustParsePrec(tt.d, tt.prec), MustParse(tt.e)
			got, err := d.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", d, e, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Quo(%q) = %q, want %q", d, e, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			d, e string
			prec int
			want error
		}{
			{"1", "0", 10, ErrDivisionByZero},
			{"1", "0.000", 10, ErrDivisionByZero},
			{"0", "0", 10, ErrDivisionByZero},
			{"-1.5", "-0", 2, ErrDivisionByZero},
			{"1", "2", -1, ErrPrecisionRange},
		}
		for _, tt := range tests {
			d, e := MustParse(tt.d), MustParse(tt.e)
			_, err := d.QuoPrec(e, tt.prec)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.QuoPrec(%q, %v) error = %v, want %v", d, e, tt.prec, err, tt.want)
			}
		}
	})
}

func TestNumeral_MustQuo(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustQuo(0) did not panic")
			}
		}()
		MustParse("1").MustQuo(Int(0))
	})
}

func TestNumeral_Round(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d     string
			scale int
			want  string
		}{
			{"1.005", 2, "1.01"},
			{"-1.005", 2, "-1.01"},
			{"1.5", 0, "2"},
			{"-0.4", 0, "0"},
			{"1.5", 3, "1.500"},
			{"123456789012345678901.55", 1, "123456789012345678901.6"},
		}
		for _, tt := range tests {
			d := MustParse(tt.d)
			got := d.MustRound(tt.scale)
			if got.String() != tt.want {
				t.Errorf("%q.Round(%v) = %q, want %q", d, tt.scale, got, tt.want)
			}
			if got.Prec() != d.Prec() {
				t.Errorf("%q.Round(%v).Prec() = %v, want %v", d, tt.scale, got.Prec(), d.Prec())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d := MustParse("1")
		_, err := d.Round(-1)
		if !errors.Is(err, ErrPrecisionRange) {
			t.Errorf("%q.Round(-1) error = %v, want %v", d, err, ErrPrecisionRange)
		}
	})
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

func FuzzNumeral_AddSub(f *testing.F) {
	for _, s := range []string{"0", "1", "-1.5", "0.0001", "123456789012345678901234.5", "-99.99"} {
		for _, t := range []string{"0", "2.25", "-0.001", "98765432109876543210"} {
			f.Add(s, t)
		}
	}

	f.Fuzz(
		func(t *testing.T, s, u string) {
			d, err := ParsePrec(s, MaxPrec)
			if err != nil || d.Scale() > MaxPrec {
				t.Skip()
				return
			}
			e, err := Parse(u)
			if err != nil || e.Scale() > MaxPrec {
				t.Skip()
				return
			}
			got := d.Add(e).Sub(e)
			if !got.Equal(d) {
				t.Errorf("%q.Add(%q).Sub(%q) = %q, want %q", d, e, e, got, d)
			}
		},
	)
}
