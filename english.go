package wordnum

// This file holds the English word tables. All entries live in static
// in-memory data; the lexicon is built and registered once at init.

// englishWords is the full English vocabulary. Hyphenated compounds like
// "twenty-three" are not listed: the tokenizer splits on hyphens, so they
// arrive as two words.
var englishWords = map[string]Entry{
	// units
	"zero":  {KindUnit, 0},
	"one":   {KindUnit, 1},
	"two":   {KindUnit, 2},
	"three": {KindUnit, 3},
	"four":  {KindUnit, 4},
	"five":  {KindUnit, 5},
	"six":   {KindUnit, 6},
	"seven": {KindUnit, 7},
	"eight": {KindUnit, 8},
	"nine":  {KindUnit, 9},

	// teens
	"ten":       {KindTeen, 10},
	"eleven":    {KindTeen, 11},
	"twelve":    {KindTeen, 12},
	"thirteen":  {KindTeen, 13},
	"fourteen":  {KindTeen, 14},
	"fifteen":   {KindTeen, 15},
	"sixteen":   {KindTeen, 16},
	"seventeen": {KindTeen, 17},
	"eighteen":  {KindTeen, 18},
	"nineteen":  {KindTeen, 19},

	// tens
	"twenty":  {KindTen, 20},
	"thirty":  {KindTen, 30},
	"forty":   {KindTen, 40},
	"fifty":   {KindTen, 50},
	"sixty":   {KindTen, 60},
	"seventy": {KindTen, 70},
	"eighty":  {KindTen, 80},
	"ninety":  {KindTen, 90},

	// magnitudes
	"hundred":  {KindHundred, 100},
	"thousand": {KindMagnitude, 1_000},
	"million":  {KindMagnitude, 1_000_000},
	"billion":  {KindMagnitude, 1_000_000_000},
	"trillion": {KindMagnitude, 1_000_000_000_000},

	// ordinal units, teens and tens
	"first":       {KindOrdinalUnit, 1},
	"second":      {KindOrdinalUnit, 2},
	"third":       {KindOrdinalUnit, 3},
	"fourth":      {KindOrdinalUnit, 4},
	"fifth":       {KindOrdinalUnit, 5},
	"sixth":       {KindOrdinalUnit, 6},
	"seventh":     {KindOrdinalUnit, 7},
	"eighth":      {KindOrdinalUnit, 8},
	"ninth":       {KindOrdinalUnit, 9},
	"tenth":       {KindOrdinalUnit, 10},
	"eleventh":    {KindOrdinalUnit, 11},
	"twelfth":     {KindOrdinalUnit, 12},
	"thirteenth":  {KindOrdinalUnit, 13},
	"fourteenth":  {KindOrdinalUnit, 14},
	"fifteenth":   {KindOrdinalUnit, 15},
	"sixteenth":   {KindOrdinalUnit, 16},
	"seventeenth": {KindOrdinalUnit, 17},
	"eighteenth":  {KindOrdinalUnit, 18},
	"nineteenth":  {KindOrdinalUnit, 19},
	"twentieth":   {KindOrdinalUnit, 20},
	"thirtieth":   {KindOrdinalUnit, 30},
	"fortieth":    {KindOrdinalUnit, 40},
	"fiftieth":    {KindOrdinalUnit, 50},
	"sixtieth":    {KindOrdinalUnit, 60},
	"seventieth":  {KindOrdinalUnit, 70},
	"eightieth":   {KindOrdinalUnit, 80},
	"ninetieth":   {KindOrdinalUnit, 90},

	// ordinal magnitudes
	"hundredth":  {KindOrdinalMagnitude, 100},
	"thousandth": {KindOrdinalMagnitude, 1_000},
	"millionth":  {KindOrdinalMagnitude, 1_000_000},
	"billionth":  {KindOrdinalMagnitude, 1_000_000_000},
	"trillionth": {KindOrdinalMagnitude, 1_000_000_000_000},

	// structural words
	"point": {KindPoint, 0},
	"and":   {KindAnd, 0},
}

func init() {
	RegisterLocale(English, NewLexicon(englishWords))
}
