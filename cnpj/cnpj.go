// Package cnpj validates, formats and normalizes Brazilian CNPJ numbers.
//
// A CNPJ has 14 digits; the last two are check digits computed from the
// preceding twelve with a weighted modulo-11 checksum. All functions are
// pure and safe for concurrent use.
package cnpj

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Check digit weight tables, applied positionally left to right.
var (
	firstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

var nonDigits = regexp.MustCompile(`\D`)

var (
	// ErrNoDigits is returned by Normalize when the input contains no digits.
	ErrNoDigits = errors.New("cnpj: input contains no digits")

	// ErrOutOfRange is returned by Normalize when the digit string cannot be
	// represented as a 14-digit number.
	ErrOutOfRange = errors.New("cnpj: value out of range")
)

// Sanitize removes every non-digit character, preserving digit order.
func Sanitize(cnpj string) string {
	return nonDigits.ReplaceAllString(cnpj, "")
}

// IsValid reports whether the candidate is a structurally valid CNPJ.
// Punctuation is ignored. Empty input, wrong length, repeated-digit
// sequences and checksum mismatches all return false; IsValid never
// returns an error for bad user input.
func IsValid(candidate string) bool {
	digits := Sanitize(candidate)
	if len(digits) != 14 {
		return false
	}

	// Reject trivial sequences like 00000000000000
	if allSameDigit(digits) {
		return false
	}

	dv1, err := CheckDigit(digits[:12])
	if err != nil {
		return false
	}
	dv2, err := CheckDigit(digits[:12] + strconv.Itoa(dv1))
	if err != nil {
		return false
	}

	return digits == digits[:12]+strconv.Itoa(dv1)+strconv.Itoa(dv2)
}

// CheckDigit calculates a single CNPJ check digit for a base of exactly
// 12 or 13 digits. Any other length, or a non-digit in the base, is a
// misuse of the internal contract and returns an error.
func CheckDigit(base string) (int, error) {
	var weights []int
	switch len(base) {
	case 12:
		weights = firstWeights
	case 13:
		weights = secondWeights
	default:
		return 0, fmt.Errorf("cnpj: check digit base must have 12 or 13 digits, got %d", len(base))
	}

	sum := 0
	for i := 0; i < len(base); i++ {
		c := base[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("cnpj: check digit base contains non-digit %q", c)
		}
		sum += int(c-'0') * weights[i]
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0, nil
	}
	return 11 - remainder, nil
}

// Normalize strips punctuation and left-pads the result with zeros to the
// canonical 14-digit form. It does not verify the checksum.
//
// The digit string is parsed as an unsigned 64-bit integer. Inputs with no
// digits return ErrNoDigits; inputs that overflow uint64 or carry more than
// 14 significant digits return ErrOutOfRange. Normalize is idempotent for
// every input it accepts.
func Normalize(candidate string) (string, error) {
	digits := Sanitize(candidate)
	if digits == "" {
		return "", ErrNoDigits
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrOutOfRange, digits)
	}

	normalized := fmt.Sprintf("%014d", n)
	if len(normalized) != 14 {
		return "", fmt.Errorf("%w: %q has more than 14 significant digits", ErrOutOfRange, digits)
	}
	return normalized, nil
}

// Format renders a CNPJ as XX.XXX.XXX/XXXX-XX. The input is returned
// unchanged when it does not carry exactly 14 digits.
func Format(cnpj string) string {
	digits := Sanitize(cnpj)
	if len(digits) != 14 {
		return cnpj
	}
	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
}

// Root returns the first 8 digits, shared by every branch of the same
// company. Empty when the input does not carry exactly 14 digits.
func Root(cnpj string) string {
	digits := Sanitize(cnpj)
	if len(digits) != 14 {
		return ""
	}
	return digits[:8]
}

// Branch returns the branch ordinal (digits 9-12).
func Branch(cnpj string) string {
	digits := Sanitize(cnpj)
	if len(digits) != 14 {
		return ""
	}
	return digits[8:12]
}

// Type returns MATRIZ for head offices (branch 0001), FILIAL for branches
// and INVALID when the input does not carry exactly 14 digits.
func Type(cnpj string) string {
	switch Branch(cnpj) {
	case "":
		return "INVALID"
	case "0001":
		return "MATRIZ"
	default:
		return "FILIAL"
	}
}

// SameRoot reports whether two CNPJs belong to the same company.
func SameRoot(a, b string) bool {
	rootA, rootB := Root(a), Root(b)
	return rootA != "" && rootA == rootB
}

var (
	formattedPattern   = regexp.MustCompile(`\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}`)
	unformattedPattern = regexp.MustCompile(`\b\d{14}\b`)
)

// ExtractFromText finds every structurally valid CNPJ in free text, both in
// the punctuated form and as bare 14-digit runs. Results are sanitized and
// deduplicated, in order of first appearance.
func ExtractFromText(text string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, pattern := range []*regexp.Regexp{formattedPattern, unformattedPattern} {
		for _, match := range pattern.FindAllString(text, -1) {
			digits := Sanitize(match)
			if !seen[digits] && IsValid(digits) {
				seen[digits] = true
				found = append(found, digits)
			}
		}
	}

	return found
}

// Info holds the result of analyzing a single candidate.
type Info struct {
	Original  string `json:"original"`
	Digits    string `json:"digits"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
	Type      string `json:"type"`
	Root      string `json:"root"`
	Branch    string `json:"branch"`
}

// Analyze runs the full validation pipeline over one candidate and returns
// everything the caller may want to report about it. Formatted, Root and
// Branch are only filled for valid CNPJs.
func Analyze(candidate string) Info {
	digits := Sanitize(candidate)
	info := Info{
		Original: candidate,
		Digits:   digits,
		Valid:    IsValid(digits),
	}

	if info.Valid {
		info.Formatted = Format(digits)
		info.Type = Type(digits)
		info.Root = Root(digits)
		info.Branch = Branch(digits)
	}

	return info
}

// Generate returns a structurally valid CNPJ built from a fixed base, for
// tests and examples.
func Generate() string {
	const base = "112223330001"

	dv1, _ := CheckDigit(base)
	dv2, _ := CheckDigit(base + strconv.Itoa(dv1))

	return base + strconv.Itoa(dv1) + strconv.Itoa(dv2)
}

func allSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
