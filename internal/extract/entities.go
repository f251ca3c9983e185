package extract

import (
	"strings"

	"github.com/reqscribe/reqscribe/internal/model"
)

// Extractor pulls an (actor, action, object, benefit) tuple out of a
// requirement sentence. It is best-effort: when no clear verb phrase is
// found it degrades to a generic placeholder action instead of failing,
// and when no role noun is present the actor defaults to "user". Both
// defaults are deliberate policies, recorded on the tuple.
type Extractor struct {
	roles       map[string]string // surface form -> normalized singular
	rolePhrases []string          // multi-word roles, checked as substrings
	markers     []string          // modal/infinitive prefixes, longest first
	delegations []string          // "allow users to"-style indirections
	verbs       map[string]bool
	stopWords   map[string]bool
	benefitCues []string
}

// NewExtractor creates an extractor with the built-in vocabularies
func NewExtractor() *Extractor {
	return &Extractor{
		roles: map[string]string{
			"user": "user", "users": "user",
			"admin": "admin", "admins": "admin",
			"administrator": "administrator", "administrators": "administrator",
			"manager": "manager", "managers": "manager",
			"customer": "customer", "customers": "customer",
			"employee": "employee", "employees": "employee",
			"client": "client", "clients": "client",
			"vendor": "vendor", "vendors": "vendor",
			"analyst": "analyst", "analysts": "analyst",
		},
		rolePhrases: []string{"support team", "product owner", "business analyst"},
		markers: []string{
			"must be able to", "should be able to", "need to be able to",
			"needs to be able to", "want to be able to", "will be able to",
			"would like to be able to", "be able to", "would like to",
			"wants to", "want to", "needs to", "need to", "has to",
			"have to", "should", "must", "shall", "will", "can",
		},
		delegations: []string{
			"allow users to", "allow the user to", "allow a user to",
			"enable users to", "enable the user to", "let users",
		},
		verbs: wordSet(
			"create", "add", "build", "implement", "make", "provide",
			"support", "generate", "update", "edit", "modify", "delete",
			"remove", "view", "see", "manage", "access", "submit",
			"approve", "reject", "track", "monitor", "search", "filter",
			"sort", "export", "import", "find", "send", "receive",
			"display", "show", "upload", "download", "register", "login",
			"assign", "schedule", "notify", "review", "print", "archive",
			"ensure", "enable", "allow", "perform",
		),
		stopWords: wordSet(
			// adverbs and qualifiers that end the object phrase
			"quickly", "easily", "efficiently", "securely", "automatically",
			"immediately", "reliably", "seamlessly", "directly",
			// connectives and prepositions
			"using", "with", "by", "via", "through", "from", "for",
			"when", "where", "if", "like", "during", "after", "before",
			"based", "so", "because", "and", "or", "within",
		),
		benefitCues: []string{"so that", "in order to"},
	}
}

// Extract derives the tuple for one requirement sentence
func (e *Extractor) Extract(text string) model.Tuple {
	clause, benefit := e.splitBenefit(text)
	lower := strings.ToLower(clause)

	tuple := model.Tuple{
		Actor:   model.DefaultActor,
		Benefit: benefit,
	}

	// Locate the modal marker; everything before it is the subject.
	subject, predicate := e.splitMarker(lower)

	if actor, ok := e.findRole(subject); ok {
		tuple.Actor = actor
	} else if actor, ok := e.findRole(lower); ok {
		tuple.Actor = actor
	}

	// "The system should allow users to update ..." delegates the real
	// action; strip the indirection and keep the delegated verb.
	for _, d := range e.delegations {
		if rest, ok := strings.CutPrefix(predicate, d+" "); ok {
			predicate = rest
			break
		}
	}

	action, object, ok := e.splitPredicate(predicate)
	if !ok {
		tuple.Action = model.PlaceholderAction
		tuple.Degraded = true
		return tuple
	}

	tuple.Action = action
	tuple.Object = object
	return tuple
}

// splitBenefit removes the rationale clause and returns it separately
func (e *Extractor) splitBenefit(text string) (clause, benefit string) {
	lower := strings.ToLower(text)
	for _, cue := range e.benefitCues {
		if idx := strings.Index(lower, cue); idx >= 0 {
			benefit = strings.TrimSpace(text[idx+len(cue):])
			benefit = strings.TrimRight(benefit, ".!? ")
			return strings.TrimSpace(text[:idx]), benefit
		}
	}
	return text, ""
}

// splitMarker splits a lowered clause at the first modal/infinitive
// marker. With no marker the whole clause is the predicate (imperative
// phrasing).
func (e *Extractor) splitMarker(lower string) (subject, predicate string) {
	for _, m := range e.markers {
		padded := " " + m + " "
		if idx := strings.Index(" "+lower+" ", padded); idx >= 0 {
			subject = strings.TrimSpace(lower[:idx])
			predicate = strings.TrimSpace(lower[idx+len(padded)-1:])
			return subject, predicate
		}
	}
	return "", strings.TrimSpace(lower)
}

// splitPredicate separates the leading verb from its object. The object
// runs until the first adverb, preposition, or connective. Returns
// ok=false when no verb can be identified.
func (e *Extractor) splitPredicate(predicate string) (action, object string, ok bool) {
	words := splitWords(predicate)
	if len(words) == 0 {
		return "", "", false
	}

	verbIdx := -1
	if e.verbs[words[0]] {
		verbIdx = 0
	} else {
		// The verb may be buried ("the team wants the ability to export
		// data"); take the first known action verb.
		for i, w := range words {
			if e.verbs[w] {
				verbIdx = i
				break
			}
		}
	}
	if verbIdx < 0 {
		return "", "", false
	}

	var objWords []string
	for _, w := range words[verbIdx+1:] {
		if e.stopWords[w] {
			break
		}
		objWords = append(objWords, w)
	}

	return words[verbIdx], strings.Join(objWords, " "), true
}

// findRole returns the normalized role noun in the text, if any.
// Multi-word roles take precedence over single nouns.
func (e *Extractor) findRole(lower string) (string, bool) {
	for _, phrase := range e.rolePhrases {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	for _, w := range splitWords(lower) {
		if role, ok := e.roles[w]; ok {
			return role, true
		}
	}
	return "", false
}

func splitWords(lower string) []string {
	fields := strings.Fields(lower)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := strings.Trim(f, ".,;:!?\"'()[]"); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
