package symbols

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/unicode/norm"

	currency "go-currency-converter"
)

//go:embed currencies.json
var defaultData []byte

// Entry currency metadata as found in the data file.
// The first symbol is the one used for display.
type Entry struct {
	Code    string   `json:"code" validate:"required,len=3,alpha,uppercase"`
	Name    string   `json:"name"`
	Symbols []string `json:"symbols" validate:"dive,required"`
}

// Table maps currency symbols to codes. A Table is immutable once built and safe for
// concurrent reads.
type Table struct {
	// codes unambiguous symbol -> code
	codes map[string]currency.Code

	// ambiguous symbol -> every code listing it, sorted
	ambiguous map[string][]currency.Code

	// canonical code -> display symbol
	canonical map[currency.Code]string

	names map[currency.Code]string
}

// Default loads the table shipped with the package
func Default() (*Table, error) {
	return Load(bytes.NewReader(defaultData))
}

// LoadFile loads a table from a JSON data file
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols file: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return t, nil
}

// Load reads a JSON array of entries
func Load(r io.Reader) (*Table, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding symbols: %w", err)
	}
	return New(entries)
}

// New builds a Table. Every invalid entry is reported, not just the first.
// A symbol listed for more than one code is ambiguous: it is kept out of Lookup and
// reported by Ambiguous instead.
func New(entries []Entry) (*Table, error) {
	validate := validator.New()

	var result *multierror.Error
	seen := map[currency.Code]bool{}
	owners := map[string][]currency.Code{}

	t := &Table{
		codes:     map[string]currency.Code{},
		ambiguous: map[string][]currency.Code{},
		canonical: map[currency.Code]string{},
		names:     map[currency.Code]string{},
	}

	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			result = multierror.Append(result, fmt.Errorf("entry %d (%q): %w", i, e.Code, err))
			continue
		}
		code := currency.Code(e.Code)
		if seen[code] {
			result = multierror.Append(result, fmt.Errorf("entry %d: duplicate code %v", i, code))
			continue
		}
		seen[code] = true

		t.names[code] = e.Name
		for j, s := range e.Symbols {
			s = normalize(s)
			if j == 0 {
				t.canonical[code] = s
			}
			if !contains(owners[s], code) {
				owners[s] = append(owners[s], code)
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid symbols data: %w", err)
	}

	for s, codes := range owners {
		if len(codes) == 1 {
			t.codes[s] = codes[0]
			continue
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		t.ambiguous[s] = codes
	}

	return t, nil
}

// Lookup the code of an unambiguous symbol. Symbols are case-sensitive.
func (t *Table) Lookup(symbol string) (currency.Code, bool) {
	code, ok := t.codes[normalize(symbol)]
	return code, ok
}

// Ambiguous the candidate codes of a symbol listed for several currencies, nil otherwise
func (t *Table) Ambiguous(symbol string) []currency.Code {
	return t.ambiguous[normalize(symbol)]
}

// AmbiguousSymbols every ambiguous symbol with its candidates
func (t *Table) AmbiguousSymbols() map[string][]currency.Code {
	out := make(map[string][]currency.Code, len(t.ambiguous))
	for s, codes := range t.ambiguous {
		out[s] = append([]currency.Code(nil), codes...)
	}
	return out
}

// Canonical the display symbol of a code
func (t *Table) Canonical(code currency.Code) (string, bool) {
	s, ok := t.canonical[code]
	return s, ok
}

// Name the English name of a code, empty if unknown
func (t *Table) Name(code currency.Code) string {
	return t.names[code]
}

// Codes every code present in the data, sorted
func (t *Table) Codes() []currency.Code {
	codes := make([]currency.Code, 0, len(t.names))
	for code := range t.names {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// normalize brings a symbol to NFC so composed and decomposed glyphs compare equal
func normalize(s string) string {
	return norm.NFC.String(s)
}

func contains(codes []currency.Code, code currency.Code) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
