package phone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKorean(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"seoul nine digits already formatted", "02-123-4567", "02-123-4567"},
		{"seoul ten digits", "0212345678", "02-1234-5678"},
		{"mobile eleven digits", "01012345678", "010-1234-5678"},
		{"mobile ten digits", "0111234567", "011-123-4567"},
		{"mobile with spaces and parens", "(010) 1234 5678", "010-1234-5678"},
		{"service number", "15881234", "1588-1234"},
		{"service number with hyphen", "1600-1234", "1600-1234"},
		{"regional ten digits", "0311234567", "031-123-4567"},
		{"regional eleven digits", "03112345678", "031-1234-5678"},
		{"internet phone", "070.1234.5678", "070-1234-5678"},
		{"seoul too short", "0212345", "0212345"},
		{"seoul eleven digits is not regional", "02123456789", "02123456789"},
		{"mobile too short", "0101234", "0101234"},
		{"mobile twelve digits", "010-1234-56789", "010-1234-56789"},
		{"nine digits regional", "031123456", "031123456"},
		{"eight digits starting with zero", "01234567", "01234567"},
		{"seven digit local", "123-4567", "123-4567"},
		{"empty", "", ""},
		{"letters only", "call me", "call me"},
		{"country code is not stripped", "+82 10-1234-5678", "+82 10-1234-5678"},
		{"fullwidth digits are not digits", "０１０１２３４５６７８", "０１０１２３４５６７８"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatKorean(tc.input))
		})
	}
}

func TestFormatKoreanPreservesDigits(t *testing.T) {
	inputs := []string{
		"021234567", "0212345678",
		"0101234567", "01012345678", "0191234567", "01912345678",
		"0311234567", "06412345678",
		"15881234", "16001234",
	}

	for _, in := range inputs {
		out := FormatKorean(in)
		require.NotEqual(t, in, out, "expected %q to be reformatted", in)
		assert.Equal(t, in, strings.ReplaceAll(out, "-", ""), "digits changed for %q", in)
	}
}

func TestFormatKoreanSeoulOffsets(t *testing.T) {
	for n := 0; n < 1000; n += 37 {
		d := "02" + pad(n, 7)
		out := FormatKorean(d)
		assert.Equal(t, d[0:2]+"-"+d[2:5]+"-"+d[5:9], out)

		d = "02" + pad(n, 8)
		out = FormatKorean(d)
		assert.Equal(t, d[0:2]+"-"+d[2:6]+"-"+d[6:10], out)
	}
}

func TestFormatKoreanUnmatchedReturnsOriginal(t *testing.T) {
	inputs := []string{
		"02) 12-345",
		"(02) 1234567 8 9",
		"010 123",
		" 0 1 0 ",
		"tel: 0311-23",
	}

	for _, in := range inputs {
		assert.Equal(t, in, FormatKorean(in))
	}
}

func TestFormatKoreanIsIdempotentOnCanonicalOutput(t *testing.T) {
	inputs := []string{"021234567", "0212345678", "01012345678", "0101234567", "15881234", "0311234567", "03112345678"}

	for _, in := range inputs {
		once := FormatKorean(in)
		assert.Equal(t, once, FormatKorean(once), "not stable for %q", in)
	}
}

func TestE164(t *testing.T) {
	got, ok := E164("010-1234-5678")
	require.True(t, ok)
	assert.Equal(t, "+821012345678", got)

	_, ok = E164("")
	assert.False(t, ok)

	_, ok = E164("not a number")
	assert.False(t, ok)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***-****-5678", Mask("010-1234-5678"))
	assert.Equal(t, "***4", Mask("1234"))
	assert.Equal(t, "", Mask("   "))
	assert.Equal(t, "abc", Mask("abc"))
}

func pad(n, width int) string {
	s := strings.Repeat("0", width)
	v := []byte(s)
	for i := width - 1; i >= 0 && n > 0; i-- {
		v[i] = byte('0' + n%10)
		n /= 10
	}
	return string(v)
}
