package cnpj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted", "04.252.011/0001-10", "04252011000110"},
		{"already clean", "04252011000110", "04252011000110"},
		{"spaces and letters", " 04 252 011 abc 0001-10 ", "04252011000110"},
		{"no digits", "abc-/.", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"valid formatted", "04.252.011/0001-10", true},
		{"valid unformatted", "04252011000110", true},
		{"valid second sample", "11222333000181", true},
		{"check digit off by one", "04.252.011/0001-11", false},
		{"first check digit wrong", "04252011000120", false},
		{"empty", "", false},
		{"too short", "0425201100011", false},
		{"too long", "042520110001100", false},
		{"thirteen digits with punctuation", "04.252.011/0001-1", false},
		{"letters only", "not a cnpj", false},
		{"all zeros", "00000000000000", false},
		{"all ones", "11111111111111", false},
		{"all nines", "99999999999999", false},
		{"repeated digits formatted", "11.111.111/1111-11", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.candidate))
		})
	}
}

func TestIsValidEveryWrongLength(t *testing.T) {
	// Any digit count other than 14 must fail, no matter the content.
	for n := 0; n < 20; n++ {
		if n == 14 {
			continue
		}
		candidate := strings.Repeat("1234567890", 2)[:n]
		assert.Falsef(t, IsValid(candidate), "length %d must be invalid", n)
	}
}

func TestCheckDigit(t *testing.T) {
	t.Run("first digit weights", func(t *testing.T) {
		dv, err := CheckDigit("042520110001")
		require.NoError(t, err)
		assert.Equal(t, 1, dv)
	})

	t.Run("second digit weights", func(t *testing.T) {
		dv, err := CheckDigit("0425201100011")
		require.NoError(t, err)
		assert.Equal(t, 0, dv)
	})

	t.Run("remainder zero maps to zero", func(t *testing.T) {
		dv, err := CheckDigit("000000000000")
		require.NoError(t, err)
		assert.Equal(t, 0, dv)
	})

	t.Run("remainder one maps to zero", func(t *testing.T) {
		// Weighted sum 12, 12 mod 11 == 1.
		dv, err := CheckDigit("000000000006")
		require.NoError(t, err)
		assert.Equal(t, 0, dv)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := CheckDigit("112223330001")
		require.NoError(t, err)
		second, err := CheckDigit("112223330001")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		for _, base := range []string{"", "04252011", "04252011000110"} {
			_, err := CheckDigit(base)
			assert.Error(t, err, "base %q", base)
		}
	})

	t.Run("rejects non-digit", func(t *testing.T) {
		_, err := CheckDigit("04252011000a")
		assert.Error(t, err)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("strips punctuation", func(t *testing.T) {
		got, err := Normalize("04.252.011/0001-10")
		require.NoError(t, err)
		assert.Equal(t, "04252011000110", got)
	})

	t.Run("left pads with zeros", func(t *testing.T) {
		got, err := Normalize("1")
		require.NoError(t, err)
		assert.Equal(t, "00000000000001", got)
	})

	t.Run("all nines fits", func(t *testing.T) {
		got, err := Normalize("99999999999999")
		require.NoError(t, err)
		assert.Equal(t, "99999999999999", got)
	})

	t.Run("does not check the checksum", func(t *testing.T) {
		got, err := Normalize("04252011000199")
		require.NoError(t, err)
		assert.Equal(t, "04252011000199", got)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, input := range []string{"1", "04.252.011/0001-10", "42"} {
			once, err := Normalize(input)
			require.NoError(t, err)
			twice, err := Normalize(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})

	t.Run("no digits", func(t *testing.T) {
		for _, input := range []string{"", "abc", "-/."} {
			_, err := Normalize(input)
			assert.ErrorIs(t, err, ErrNoDigits, "input %q", input)
		}
	})

	t.Run("uint64 overflow", func(t *testing.T) {
		_, err := Normalize(strings.Repeat("9", 21))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("more than 14 significant digits", func(t *testing.T) {
		_, err := Normalize("123456789012345")
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "04.252.011/0001-10", Format("04252011000110"))
	assert.Equal(t, "04.252.011/0001-10", Format("04.252.011/0001-10"))

	// Wrong length passes through untouched.
	assert.Equal(t, "123", Format("123"))
	assert.Equal(t, "", Format(""))
}

func TestRootBranchType(t *testing.T) {
	assert.Equal(t, "04252011", Root("04.252.011/0001-10"))
	assert.Equal(t, "0001", Branch("04252011000110"))
	assert.Equal(t, "MATRIZ", Type("04252011000110"))
	assert.Equal(t, "FILIAL", Type("04252011000299"))
	assert.Equal(t, "INVALID", Type("123"))

	assert.Equal(t, "", Root("123"))
	assert.Equal(t, "", Branch("123"))
}

func TestSameRoot(t *testing.T) {
	assert.True(t, SameRoot("04252011000110", "04.252.011/0002-99"))
	assert.False(t, SameRoot("04252011000110", "11222333000181"))
	assert.False(t, SameRoot("123", "123"))
}

func TestExtractFromText(t *testing.T) {
	text := `Fornecedor A: 04.252.011/0001-10
Fornecedor B: 11222333000181
Repetido: 04252011000110
Sequencial: 11111111111111
Invalido: 12345678901234`

	got := ExtractFromText(text)
	assert.Equal(t, []string{"04252011000110", "11222333000181"}, got)
}

func TestExtractFromTextEmpty(t *testing.T) {
	assert.Empty(t, ExtractFromText("nenhum documento aqui"))
}

func TestAnalyze(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		info := Analyze("04.252.011/0001-10")
		assert.Equal(t, "04.252.011/0001-10", info.Original)
		assert.Equal(t, "04252011000110", info.Digits)
		assert.True(t, info.Valid)
		assert.Equal(t, "04.252.011/0001-10", info.Formatted)
		assert.Equal(t, "MATRIZ", info.Type)
		assert.Equal(t, "04252011", info.Root)
		assert.Equal(t, "0001", info.Branch)
	})

	t.Run("invalid", func(t *testing.T) {
		info := Analyze("123")
		assert.False(t, info.Valid)
		assert.Equal(t, "123", info.Digits)
		assert.Empty(t, info.Formatted)
		assert.Empty(t, info.Type)
	})
}

func TestGenerate(t *testing.T) {
	got := Generate()
	assert.Len(t, got, 14)
	assert.True(t, IsValid(got))
	assert.Equal(t, "11222333000181", got)
}
