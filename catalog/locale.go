package catalog

// Locale is the API "culture" a catalog entry is translated into.
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleIT Locale = "it"
	LocaleDE Locale = "de"
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
	LocaleNL Locale = "nl"
	LocaleZH Locale = "zh"
	LocaleRU Locale = "ru"
	LocaleSV Locale = "sv"
	LocaleAR Locale = "ar"
	LocaleHE Locale = "he"
	LocaleNB Locale = "nb"
	LocalePT Locale = "pt"
	LocaleFA Locale = "fa"
	LocaleLB Locale = "lb"
	LocaleKM Locale = "km"
	LocaleTR Locale = "tr"
	LocaleLO Locale = "lo"
)

// Locales lists every culture supported by the API, in the order the API documents them.
var Locales = []Locale{
	LocaleFR, LocaleIT, LocaleDE, LocaleES, LocaleEN, LocaleNL, LocaleZH, LocaleRU, LocaleSV,
	LocaleAR, LocaleHE, LocaleNB, LocalePT, LocaleFA, LocaleLB, LocaleKM, LocaleTR, LocaleLO,
}

// Valid reports whether l is a supported culture.
func (l Locale) Valid() bool {
	for _, known := range Locales {
		if known == l {
			return true
		}
	}
	return false
}

func (l Locale) String() string { return string(l) }
