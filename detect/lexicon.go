// detect/lexicon.go
package detect

// Static lexicons. Both sets are initialized once and never mutated, so
// they are safe for unlimited concurrent reads. Membership is set-based:
// a word carries the same weight no matter how common it is.
//
// Some short forms ("to", "me", "do", "hi") legitimately appear in both
// lexicons; such tokens increment both hit counts.

// hindiLexicon holds romanized-Hindi function and high-frequency content
// words as they appear in casual journaling text.
var hindiLexicon = map[string]bool{
	// presence / copula
	"hai": true, "haan": true, "han": true, "hain": true,
	// pronouns and possessives
	"mujhe": true, "mujhse": true,
	"mera": true, "meri": true, "mere": true,
	"tera": true, "teri": true, "tere": true,
	"apna": true, "apni": true, "apne": true,
	"hum": true, "tum": true, "aap": true,
	"woh": true, "ye": true, "yeh": true, "voh": true,
	"sab": true, "sabhi": true,
	// time words
	"aaj": true, "kal": true,
	// negation
	"nahi": true, "na": true, "nahin": true,
	// qualifiers
	"thoda": true, "thode": true, "theek": true, "theekhai": true,
	"accha": true, "achha": true, "bahut": true, "bilkul": true,
	// address terms
	"yaar": true, "bhai": true, "dost": true,
	// question words
	"kya": true, "kaise": true, "kyun": true, "kahan": true,
	"kab": true, "kaun": true, "kisko": true, "kiska": true,
	// emotion nouns
	"dil": true, "pyar": true, "ishq": true, "mohabbat": true,
	"dosti": true, "friendship": true,
	// verb forms
	"lag": true, "lagta": true, "lagti": true, "lagte": true,
	"raha": true, "rahi": true, "rahe": true, "rah": true,
	"kar": true, "karna": true, "karne": true, "kiya": true,
	"kiye": true, "karo": true, "karenge": true,
	"ja": true, "jana": true, "jane": true, "jao": true,
	"jayenge": true, "gayi": true, "gaye": true,
	"de": true, "dena": true, "dene": true, "diya": true,
	"diye": true, "do": true, "denge": true,
	"le": true, "lena": true, "lene": true, "liya": true,
	"liye": true, "lo": true, "lenge": true,
	"khana": true, "khane": true, "khaya": true, "khaye": true,
	"khao": true, "khayenge": true,
	"sona": true, "sone": true, "soya": true, "soye": true,
	"soo": true, "soyenge": true,
	"chalo": true, "chal": true, "chalte": true,
	"aate": true, "aayenge": true, "aaya": true, "aye": true,
	"dekh": true, "dekhte": true, "dekhna": true, "dekho": true,
	"dekhenge": true, "dekha": true, "dekhe": true,
	"bol": true, "bolte": true, "bolna": true, "bolo": true,
	"bolenge": true, "bola": true, "bole": true,
	"sun": true, "sunte": true, "sunna": true, "suno": true,
	"sunenge": true, "suna": true, "sune": true,
	"samajh": true, "samajhte": true, "samajhna": true, "samjho": true,
	"samjhenge": true, "samjha": true, "samjhe": true,
	// postpositions and particles
	"mein": true, "me": true, "ko": true, "se": true, "pe": true,
	"par": true, "ke": true, "ka": true, "ki": true,
	"bhi": true, "to": true, "hi": true, "tak": true,
	// conjunctions
	"aur": true, "ya": true, "lekin": true, "magar": true,
	"kyunki": true, "isliye": true, "warna": true,
}

// englishStopwords holds common English function words.
var englishStopwords = map[string]bool{
	"the": true, "is": true, "was": true, "at": true, "and": true,
	"to": true, "a": true, "an": true, "in": true, "on": true,
	"of": true, "for": true, "with": true, "as": true, "by": true,
	"from": true, "or": true, "but": true, "not": true, "be": true,
	"are": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "can": true, "shall": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "me": true, "him": true, "her": true,
	"us": true, "them": true, "my": true, "your": true, "his": true,
	"its": true, "our": true, "their": true,
	"what": true, "where": true, "when": true, "why": true, "how": true,
	"who": true, "whom": true, "whose": true, "which": true,
	"whoever": true, "whatever": true, "whenever": true,
	"wherever": true, "however": true, "whichever": true,
	"if": true, "then": true, "else": true, "whether": true,
	"while": true, "until": true, "because": true, "since": true,
	"though": true, "although": true, "unless": true,
	"today": true, "tomorrow": true, "yesterday": true, "now": true,
	"here": true, "there": true, "hello": true, "hi": true, "hey": true,
	"am": true, "go": true, "going": true, "come": true, "coming": true,
	"ok": true, "okay": true, "sorry": true, "please": true,
	"thanks": true, "thank": true, "yes": true, "no": true,
}

// HindiLexiconSize returns the number of entries in the Hindi lexicon.
func HindiLexiconSize() int {
	return len(hindiLexicon)
}

// EnglishStopwordsSize returns the number of entries in the English
// stopword set.
func EnglishStopwordsSize() int {
	return len(englishStopwords)
}

// InHindiLexicon reports membership of a lowercase word form.
func InHindiLexicon(word string) bool {
	return hindiLexicon[word]
}

// InEnglishStopwords reports membership of a lowercase word form.
func InEnglishStopwords(word string) bool {
	return englishStopwords[word]
}
