package signals

import (
	"regexp"
)

// Pattern tables are plain data: each concern is a fixed list compiled once
// at init. Matching is case-insensitive; the extractor also receives
// normalized text, but raw text is accepted so casing-sensitive checks
// (template markers, shouting) still work.

// EmotionalWords are charged terms counted for emotional density and the
// truth estimator's emotional penalty.
var EmotionalWords = []string{
	"outrage", "outrageous", "shocking", "shocked", "disgusting", "disgusted",
	"terrifying", "terrified", "horrifying", "horrific", "devastating",
	"destroyed", "obliterated", "slammed", "eviscerated", "furious", "fury",
	"rage", "enraged", "infuriating", "appalling", "appalled", "sickening",
	"vile", "evil", "corrupt", "traitor", "treason", "betrayal", "disaster",
	"catastrophe", "catastrophic", "nightmare", "insane", "crazy", "unhinged",
	"deranged", "pathetic", "disgrace", "disgraceful", "scandal", "scandalous",
	"explosive", "bombshell", "meltdown", "chaos", "carnage",
}

var (
	// AttackPatterns match direct personal attacks and slurs against
	// interlocutors rather than arguments.
	AttackPatterns = compile([]string{
		`\byou people\b`,
		`\b(?:idiot|idiots|moron|morons|imbecile)\b`,
		`\bstupid (?:people|person|take|opinion)\b`,
		`\b(?:libtard|sheeple|snowflake|bootlicker|shill|shills)\b`,
		`\byou(?:'re| are) (?:a |an |all )?(?:idiot|fool|clown|joke|sheep)\b`,
		`\b(?:brain-?dead|braindead)\b`,
		`\bwake up,? (?:people|america|everyone)\b`,
	})

	// BadFaithPatterns match rhetorical moves associated with bad-faith
	// argumentation.
	BadFaithPatterns = compile([]string{
		`\b(?:i'm|im) just asking questions\b`,
		`\bjust asking questions\b`,
		`\bdo your own research\b`,
		`\bthey don'?t want you to know\b`,
		`\bthe media won'?t (?:tell|show) you\b`,
		`\bopen your eyes\b`,
		`\bconnect the dots\b`,
		`\bit'?s all a (?:lie|hoax|psyop)\b`,
	})

	// BaitPatterns match engagement-farming calls to action.
	BaitPatterns = compile([]string{
		`\bshare (?:this |if |before )`,
		`\bretweet if\b`,
		`\blike (?:and share|if you agree)\b`,
		`\btag (?:a|someone|a friend)\b`,
		`\bwho else (?:thinks|agrees|remembers)\b`,
		`\bam i the only one\b`,
		`\bfollow (?:me |us )?for more\b`,
		`\bsmash that\b`,
		`\bcomment below\b`,
		`\bbefore (?:it'?s|this is|they) delete`,
	})

	// PromotionalPatterns match sales and self-promotion language.
	PromotionalPatterns = compile([]string{
		`\bbuy now\b`,
		`\blimited time (?:offer|only|deal)?\b`,
		`\b(?:\d+%|huge|massive) (?:off|discount)\b`,
		`\buse (?:my |the )?(?:promo |discount )?code\b`,
		`\blink in (?:my )?bio\b`,
		`\bdm me\b`,
		`\bcheck out my\b`,
		`\bsubscribe to my\b`,
		`\bsign up (?:now|today|here)\b`,
		`\bfree shipping\b`,
	})

	// WhataboutPatterns match deflection by counter-accusation.
	WhataboutPatterns = compile([]string{
		`\bbut what about\b`,
		`\bwhat about (?:the|when|all)\b`,
		`\bwhataboutism\b`,
		`\bwhere was (?:the|this|your) outrage\b`,
		`\byet (?:nobody|no one) (?:talks?|talked|cares?) about\b`,
		`\bfunny how (?:nobody|no one) mentions\b`,
		`\bbut (?:the other side|they) did\b`,
	})

	// TemplatePatterns match placeholder tokens left behind by fill-in
	// templating.
	TemplatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\[[A-Z][A-Z_ ]{1,30}\]`),
		regexp.MustCompile(`\{\{[^}]{1,40}\}\}`),
		regexp.MustCompile(`%[A-Z][A-Z_]{1,30}%`),
		regexp.MustCompile(`(?i)\bINSERT\s+[A-Z_ ]{1,30}\s+HERE\b`),
	}

	// AffiliatePatterns match tracking parameters and known link
	// shorteners.
	AffiliatePatterns = compile([]string{
		`[?&]utm_(?:source|medium|campaign|term|content)=`,
		`[?&](?:ref|affid|aff_id|affiliate)=`,
		`[?&]tag=[\w-]+-2[0-2]\b`,
		`\bbit\.ly/\w+`,
		`\btinyurl\.com/\w+`,
		`\bamzn\.to/\w+`,
		`\bgoo\.gl/\w+`,
		`\bshorturl\.at/\w+`,
	})

	// FirstPersonPatterns match reflective first-person phrasing.
	FirstPersonPatterns = compile([]string{
		`\bi (?:think|believe|feel|suspect|wonder)\b`,
		`\bin my (?:experience|opinion|view)\b`,
		`\bpersonally\b`,
		`\bi (?:remember|recall|noticed|learned)\b`,
		`\bmy (?:take|sense|guess) is\b`,
	})

	// HedgingPatterns match uncertainty acknowledgment and hedging.
	HedgingPatterns = compile([]string{
		`\b(?:might|perhaps|possibly|arguably|presumably)\b`,
		`\bit seems\b`,
		`\bi (?:could|may|might) be wrong\b`,
		`\bnot (?:entirely |quite )?sure\b`,
		`\bhard to say\b`,
		`\bi don'?t know (?:if|whether)\b`,
	})

	// BalancePatterns match viewpoint-balancing connectives.
	BalancePatterns = compile([]string{
		`\bon the other hand\b`,
		`\bthat said\b`,
		`\bto be fair\b`,
		`\bhowever\b`,
		`\balthough\b`,
		`\bwhile (?:i|it'?s true)\b`,
		`\bboth sides\b`,
	})

	// CitationPatterns match citation-style phrasing and inline links.
	CitationPatterns = compile([]string{
		`\baccording to\b`,
		`\b(?:a |the )?stud(?:y|ies) (?:found|shows?|showed|suggests?)\b`,
		`\bresearch (?:shows?|suggests?|indicates?)\b`,
		`\b(?:reported|published) (?:by|in)\b`,
		`\bper the\b`,
		`https?://\S+`,
	})

	// ClickbaitPatterns match headline bait counted against the truth
	// score.
	ClickbaitPatterns = compile([]string{
		`\byou won'?t believe\b`,
		`\bdoctors hate\b`,
		`\bwhat happens next\b`,
		`\bnumber \d+ will\b`,
		`\bthis one (?:weird )?trick\b`,
		`\bbreaking[:!]`,
		`\bgone viral\b`,
		`\bthe truth about\b`,
		`\bthey don'?t want you to see\b`,
	})

	// StatisticPattern matches numeric/statistic phrasing.
	StatisticPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:%|percent|points?|million|billion)\b`)

	// QuotePattern matches a long quoted span.
	QuotePattern = regexp.MustCompile(`[“"][^”"]{40,}[”"]`)

	// RhetoricalQuestionPatterns disqualify a question from counting as
	// genuine when it is really bait or deflection.
	RhetoricalQuestionPatterns = compile([]string{
		`\bam i the only one\b`,
		`\bwho else\b`,
		`\bwhat about\b`,
		`\bcoincidence\b`,
		`\bmakes you think\b`,
	})
)

// compile builds case-insensitive regexps from raw pattern strings. The
// tables above are trusted literals, so MustCompile is fine.
func compile(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// countMatches sums non-overlapping matches of every pattern in the list.
func countMatches(text string, patterns []*regexp.Regexp) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}

// anyMatch reports whether any pattern in the list matches.
func anyMatch(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
