package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
	"github.com/riskibarqy/football-chatbot/internal/platform/textnorm"
)

// TeamSearcher looks teams up upstream when the static registry has no match.
type TeamSearcher interface {
	SearchTeams(ctx context.Context, name string) ([]team.Team, error)
}

// phraseRule extracts a team-name candidate from a question.
type phraseRule struct {
	name string
	re   *regexp.Regexp
}

// phraseRules are tried in order; the first that matches supplies the candidate.
var phraseRules = []phraseRule{
	{"stats_of", regexp.MustCompile(`\b(?:estatisticas?|stats|numeros|desempenho|forma|statistics|performance)\s+(?:do|da|de|dos|das|of|for)\s+(.+)`)},
	{"how_is", regexp.MustCompile(`\b(?:como (?:esta|vai|anda)|how (?:is|are))\s+(?:(?:o|a|os|as|the)\s+)?(.+)`)},
	{"versus", regexp.MustCompile(`^(.+?)\s+(?:vs|versus|contra|x|against)\s+(.+)$`)},
	{"position_of", regexp.MustCompile(`\b(?:posicao|position|lugar)\s+(?:do|da|de|of)\s+(.+)`)},
	{"matches_of", regexp.MustCompile(`\b(?:ultimos jogos|ultimo jogo|jogos recentes|proximos jogos|proximo jogo|ultimas partidas|resultados|last matches|next matches|results)\s+(?:do|da|de|dos|das|of|for)\s+(.+)`)},
	{"in_table", regexp.MustCompile(`^(.+?)\s+(?:na|no|in the|on the)\s+(?:tabela|classificacao|table|standings)\b`)},
}

var connectorSplit = regexp.MustCompile(`\s+(?:vs|versus|contra|x|against)\s+`)

// candidateStopwords are stripped from both ends of an extracted candidate.
var candidateStopwords = map[string]bool{
	"o": true, "a": true, "os": true, "as": true, "do": true, "da": true, "de": true,
	"dos": true, "das": true, "no": true, "na": true, "em": true, "e": true, "the": true,
	"of": true, "in": true, "this": true, "esta": true, "epoca": true, "temporada": true,
	"season": true, "hoje": true, "agora": true, "entre": true, "jogo": true, "jogos": true,
	"historico": true, "confrontos": true, "confronto": true, "h2h": true, "tabela": true,
	"classificacao": true, "table": true, "stats": true, "estatisticas": true, "liga": true,
	"league": true, "team": true, "equipa": true, "clube": true, "time": true,
}

type indexedTeam struct {
	team    team.Team
	aliases []string
	order   int
}

type indexedLeague struct {
	league league.League
	key    string
	name   string
}

type indexedLeagueAlias struct {
	alias    string
	leagueID int
}

// EntityResolver maps free text onto registry leagues and teams. It is read-only
// after construction.
type EntityResolver struct {
	leagues       []indexedLeague
	leaguesByID   map[int]league.League
	leagueAliases []indexedLeagueAlias
	teams         []indexedTeam
	teamsByLeague map[int][]indexedTeam
	searcher      TeamSearcher
	logger        *logging.Logger
}

func NewEntityResolver(
	leagues []league.League,
	aliases []league.Alias,
	teams []team.Team,
	searcher TeamSearcher,
	logger *logging.Logger,
) *EntityResolver {
	if logger == nil {
		logger = logging.Default()
	}

	r := &EntityResolver{
		leaguesByID:   make(map[int]league.League, len(leagues)),
		teamsByLeague: make(map[int][]indexedTeam),
		searcher:      searcher,
		logger:        logger,
	}
	for _, l := range leagues {
		r.leagues = append(r.leagues, indexedLeague{
			league: l,
			key:    textnorm.Words(l.Key),
			name:   textnorm.Words(l.Name),
		})
		r.leaguesByID[l.ID] = l
	}
	for _, a := range aliases {
		alias := textnorm.Words(a.Alias)
		if alias == "" {
			continue
		}
		r.leagueAliases = append(r.leagueAliases, indexedLeagueAlias{alias: alias, leagueID: a.LeagueID})
	}
	for i, t := range teams {
		item := indexedTeam{team: t, order: i}
		for _, alias := range t.Aliases {
			if folded := textnorm.Words(alias); folded != "" {
				item.aliases = append(item.aliases, folded)
			}
		}
		r.teams = append(r.teams, item)
		r.teamsByLeague[t.LeagueID] = append(r.teamsByLeague[t.LeagueID], item)
	}

	return r
}

func (r *EntityResolver) LeagueByID(leagueID int) (league.League, bool) {
	l, ok := r.leaguesByID[leagueID]
	return l, ok
}

// ResolveLeague checks the alias table first, then league keys and display names.
// The first hit wins.
func (r *EntityResolver) ResolveLeague(text string) (league.League, bool) {
	words := textnorm.Words(text)
	if words == "" {
		return league.League{}, false
	}

	for _, a := range r.leagueAliases {
		if textnorm.ContainsWord(words, a.alias) {
			if l, ok := r.leaguesByID[a.leagueID]; ok {
				return l, true
			}
		}
	}
	for _, l := range r.leagues {
		if textnorm.ContainsWord(words, l.key) || textnorm.ContainsWord(words, l.name) {
			return l.league, true
		}
	}

	return league.League{}, false
}

// ResolveTeam runs phrase extraction, then falls back to the whole text, then to
// an upstream search for the extracted candidate.
func (r *EntityResolver) ResolveTeam(ctx context.Context, text string, leagueID int) (team.Team, bool) {
	return r.resolveTeam(ctx, textnorm.Words(text), leagueID, false)
}

// resolveTeam searches upstream for the cleaned text itself when bare is set and no
// phrase rule produced a candidate.
func (r *EntityResolver) resolveTeam(ctx context.Context, words string, leagueID int, bare bool) (team.Team, bool) {
	if words == "" {
		return team.Team{}, false
	}

	candidate := r.cleanCandidate(ExtractTeamCandidate(words))
	if candidate != "" {
		if t, ok := r.matchStatic(candidate, leagueID).Resolve(); ok {
			return t, true
		}
	}

	if t, ok := r.matchStatic(words, leagueID).Resolve(); ok {
		return t, true
	}

	if candidate == "" && bare {
		candidate = r.cleanCandidate(words)
	}
	if candidate == "" || len(candidate) < 3 || r.isLeagueName(candidate) {
		return team.Team{}, false
	}
	return r.searchUpstream(ctx, candidate).Resolve()
}

// ResolveTeamPair finds two distinct teams for a head-to-head question. Registry
// teams are scanned first; otherwise each side of the connector is resolved on its
// own, with an upstream search as the last step.
func (r *EntityResolver) ResolveTeamPair(ctx context.Context, text string, leagueID int) (team.Team, team.Team, error) {
	words := textnorm.Words(text)
	if words == "" {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: empty question", ErrEntityNotResolved)
	}

	if found := r.scanTeams(words); len(found) >= 2 {
		return found[0], found[1], nil
	}

	parts := connectorSplit.Split(words, 2)
	if len(parts) != 2 {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: no team connector", ErrEntityNotResolved)
	}
	first, ok := r.resolveTeam(ctx, parts[0], leagueID, true)
	if !ok {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: first team %q", ErrEntityNotResolved, parts[0])
	}
	second, ok := r.resolveTeam(ctx, parts[1], leagueID, true)
	if !ok {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: second team %q", ErrEntityNotResolved, parts[1])
	}
	if second.ID == first.ID {
		return team.Team{}, team.Team{}, fmt.Errorf("%w: same team twice", ErrEntityNotResolved)
	}
	return first, second, nil
}

// ExtractTeamCandidate applies phraseRules to folded text. Within the first matching
// rule, capture groups are scanned from last to first and the longest non-empty one
// is kept; a later group wins on equal length.
func ExtractTeamCandidate(words string) string {
	for _, rule := range phraseRules {
		groups := rule.re.FindStringSubmatch(words)
		if groups == nil {
			continue
		}
		best := ""
		for i := len(groups) - 1; i >= 1; i-- {
			g := strings.TrimSpace(groups[i])
			if len(g) > len(best) {
				best = g
			}
		}
		if best != "" {
			return best
		}
	}
	return ""
}

// matchStatic resolves a candidate against the registry, scoped league first.
func (r *EntityResolver) matchStatic(candidate string, leagueID int) team.Match {
	if leagueID > 0 {
		if scoped, ok := r.teamsByLeague[leagueID]; ok {
			if m := matchCandidate(candidate, scoped); m.Kind != team.MatchNotFound {
				return m
			}
		}
	}
	return matchCandidate(candidate, r.teams)
}

// matchCandidate tries exact alias equality, then the longest alias contained in
// the candidate, then aliases that contain the candidate.
func matchCandidate(candidate string, teams []indexedTeam) team.Match {
	if candidate == "" {
		return team.NotFound()
	}

	for _, t := range teams {
		for _, alias := range t.aliases {
			if alias == candidate {
				return team.Single(t.team)
			}
		}
	}

	var best *indexedTeam
	bestLen := 0
	for i := range teams {
		for _, alias := range teams[i].aliases {
			if len(alias) > bestLen && textnorm.ContainsWord(candidate, alias) {
				best = &teams[i]
				bestLen = len(alias)
			}
		}
	}
	if best != nil {
		return team.Single(best.team)
	}

	if len(candidate) < 3 {
		return team.NotFound()
	}
	var partial []team.Team
	for _, t := range teams {
		for _, alias := range t.aliases {
			if textnorm.ContainsWord(alias, candidate) {
				partial = append(partial, t.team)
				break
			}
		}
	}
	return team.Candidates(partial)
}

// scanTeams lists distinct registry teams in the order their aliases appear. At one
// position the longest alias wins, and a longer alias hides the shorter ones inside it.
func (r *EntityResolver) scanTeams(words string) []team.Team {
	type hit struct {
		pos, end int
		length   int
		order    int
		team     team.Team
	}

	var hits []hit
	for _, t := range r.teams {
		for _, alias := range t.aliases {
			offset := 0
			for {
				idx := textnorm.IndexWord(words[offset:], alias)
				if idx < 0 {
					break
				}
				pos := offset + idx
				hits = append(hits, hit{pos: pos, end: pos + len(alias), length: len(alias), order: t.order, team: t.team})
				offset = pos + len(alias)
				if offset >= len(words) {
					break
				}
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		if hits[i].length != hits[j].length {
			return hits[i].length > hits[j].length
		}
		return hits[i].order < hits[j].order
	})

	var out []team.Team
	seen := make(map[int]bool)
	coveredUntil := -1
	for _, h := range hits {
		if h.pos < coveredUntil {
			continue
		}
		coveredUntil = h.end
		if seen[h.team.ID] {
			continue
		}
		seen[h.team.ID] = true
		out = append(out, h.team)
	}
	return out
}

func (r *EntityResolver) searchUpstream(ctx context.Context, candidate string) team.Match {
	if r.searcher == nil {
		return team.NotFound()
	}

	found, err := r.searcher.SearchTeams(ctx, candidate)
	if err != nil {
		r.logger.DebugContext(ctx, "team search did not resolve candidate", "candidate", candidate, "error", err)
		return team.NotFound()
	}
	for i := range found {
		found[i].Dynamic = true
	}
	return team.Candidates(found)
}

func (r *EntityResolver) isLeagueName(candidate string) bool {
	_, ok := r.ResolveLeague(candidate)
	return ok
}

// cleanCandidate drops stopwords and league spellings from both ends of a candidate.
func (r *EntityResolver) cleanCandidate(candidate string) string {
	if candidate == "" {
		return ""
	}
	for _, a := range r.leagueAliases {
		candidate = strings.TrimSpace(strings.TrimSuffix(candidate, " "+a.alias))
	}

	tokens := strings.Fields(candidate)
	for len(tokens) > 0 && candidateStopwords[tokens[0]] {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && candidateStopwords[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}
