package usecase

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/football-chatbot/internal/platform/textnorm"
)

type Intent string

const (
	IntentStandings     Intent = "standings"
	IntentTeamStats     Intent = "team_stats"
	IntentRecentMatches Intent = "recent_matches"
	IntentNextMatches   Intent = "next_matches"
	IntentHeadToHead    Intent = "head_to_head"
	IntentLiveMatches   Intent = "live_matches"
	IntentTopScorers    Intent = "top_scorers"
	IntentLeagueInfo    Intent = "league_info"
	IntentGeneral       Intent = "general"
)

type Command string

const (
	CommandNone        Command = ""
	CommandHelp        Command = "help"
	CommandListLeagues Command = "list_leagues"
	CommandCacheClear  Command = "cache_clear"
	CommandCacheStats  Command = "cache_stats"
	CommandBotStats    Command = "bot_stats"
)

type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentRules is evaluated in declaration order; on equal scores the earlier
// intent wins. Patterns run against textnorm.Words output, so they are written
// lower-case and without accents.
var intentRules = []intentRule{
	{IntentLiveMatches, compileAll(
		`\bao vivo\b`,
		`\bem direto\b`,
		`\ba decorrer\b`,
		`\bneste momento\b`,
		`\blive\b`,
		`\bright now\b`,
	)},
	{IntentHeadToHead, compileAll(
		`\bvs\b`,
		`\bversus\b`,
		`\bcontra\b`,
		`\bx\b`,
		`\bagainst\b`,
		`\bhistorico\b`,
		`\bconfrontos?\b`,
		`\bhead to head\b`,
		`\bh2h\b`,
	)},
	{IntentRecentMatches, compileAll(
		`\bultimos jogos\b`,
		`\bultimo jogo\b`,
		`\bjogos recentes\b`,
		`\bforma recente\b`,
		`\bultimas partidas\b`,
		`\bresultados?\b`,
		`\blast (matches|games|match|game)\b`,
		`\brecent (matches|games|form)\b`,
		`\bresults?\b`,
	)},
	{IntentNextMatches, compileAll(
		`\bproximos? jogos?\b`,
		`\bproximas? partidas?\b`,
		`\bquando joga\b`,
		`\bcalendario\b`,
		`\bagenda\b`,
		`\bnext (matches|games|match|game)\b`,
		`\bupcoming\b`,
		`\bwhen do(es)? .+ play\b`,
	)},
	{IntentTopScorers, compileAll(
		`\bmelhor(es)? marcador(es)?\b`,
		`\bgoleador(es)?\b`,
		`\bartilheir[oa]s?\b`,
		`\bquem marcou mais\b`,
		`\bscorers?\b`,
		`\bgolden boot\b`,
	)},
	{IntentStandings, compileAll(
		`\bclassificacao\b`,
		`\btabela\b`,
		`\bposicao\b`,
		`\branking\b`,
		`\bquem esta em primeiro\b`,
		`\blider(anca)?\b`,
		`\bstandings?\b`,
		`\btable\b`,
		`\bposition\b`,
		`\bleader\b`,
	)},
	{IntentTeamStats, compileAll(
		`\bestatisticas?\b`,
		`\bnumeros\b`,
		`\bdesempenho\b`,
		`\bcomo (esta|vai|anda)\b`,
		`\bforma\b`,
		`\bstats\b`,
		`\bstatistics\b`,
		`\bperformance\b`,
		`\bhow (is|are)\b`,
	)},
	{IntentLeagueInfo, compileAll(
		`\binformac(ao|oes) (da|sobre a) liga\b`,
		`\bsobre a liga\b`,
		`\bmedia de golos\b`,
		`\bcompetic(ao|oes)\b`,
		`\bleague info\b`,
		`\babout the league\b`,
		`\baverage goals\b`,
	)},
}

type commandRule struct {
	command Command
	// phrases match on word boundaries of textnorm.Words output.
	phrases []string
	// slash commands match as plain substrings of textnorm.Fold output.
	slash []string
}

// commandRules are checked in order before any intent scoring.
var commandRules = []commandRule{
	{
		command: CommandCacheClear,
		phrases: []string{"limpar cache", "limpar a cache", "limpa a cache", "clear cache"},
		slash:   []string{"/cache clear", "/limpar"},
	},
	{
		command: CommandCacheStats,
		phrases: []string{"estado da cache", "estatisticas da cache", "cache stats"},
		slash:   []string{"/cache"},
	},
	{
		command: CommandBotStats,
		phrases: []string{"estatisticas do bot", "bot stats", "pedidos usados", "requests usados", "requests used"},
		slash:   []string{"/stats"},
	},
	{
		command: CommandListLeagues,
		phrases: []string{
			"listar ligas", "ligas disponiveis", "que ligas tens", "que ligas conheces",
			"que ligas existem", "que ligas ha", "list leagues", "available leagues",
		},
		slash: []string{"/ligas", "/leagues"},
	},
	{
		command: CommandHelp,
		phrases: []string{"ajuda", "help", "o que podes fazer", "o que sabes fazer", "comandos"},
		slash:   []string{"/start", "/help"},
	},
}

type IntentClassifier struct {
	rules    []intentRule
	commands []commandRule
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		rules:    intentRules,
		commands: commandRules,
	}
}

// Command matches the special-command triggers against the raw question.
func (c *IntentClassifier) Command(question string) Command {
	folded := textnorm.Fold(question)
	if folded == "" {
		return CommandNone
	}
	words := textnorm.Words(folded)
	for _, rule := range c.commands {
		for _, trigger := range rule.slash {
			if strings.Contains(folded, trigger) {
				return rule.command
			}
		}
		for _, phrase := range rule.phrases {
			if textnorm.ContainsWord(words, phrase) {
				return rule.command
			}
		}
	}
	return CommandNone
}

// Classify returns the intent with the strictly highest score, the earliest declared
// one on ties, or IntentGeneral when nothing matched.
func (c *IntentClassifier) Classify(question string) Intent {
	text := textnorm.Words(question)

	best := IntentGeneral
	bestScore := 0
	for _, rule := range c.rules {
		score := rule.score(text)
		if score > bestScore {
			best = rule.intent
			bestScore = score
		}
	}
	return best
}

// Scores exposes every category's score, mostly for debug logging.
func (c *IntentClassifier) Scores(question string) map[Intent]int {
	text := textnorm.Words(question)
	out := make(map[Intent]int, len(c.rules))
	for _, rule := range c.rules {
		out[rule.intent] = rule.score(text)
	}
	return out
}

func (r intentRule) score(text string) int {
	if text == "" {
		return 0
	}
	total := 0
	for _, re := range r.patterns {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
