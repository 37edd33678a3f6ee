package memory

import (
	"fmt"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
)

const (
	LeagueIDPrimeiraLiga  = 94
	LeagueIDLigaPortugal2 = 95
	LeagueIDPremierLeague = 39
	LeagueIDLaLiga        = 140
	LeagueIDSerieA        = 135
	LeagueIDBundesliga    = 78
	LeagueIDLigue1        = 61
	LeagueIDEredivisie    = 88
	LeagueIDBrasileirao   = 71
	LeagueIDMLS           = 253
	LeagueIDChampions     = 2
	LeagueIDEuropaLeague  = 3
)

const (
	mediaLeagueURL   = "https://media.api-sports.io/football/leagues/%d.png"
	mediaFlagURL     = "https://media.api-sports.io/flags/%s.svg"
	mediaTeamLogoURL = "https://media.api-sports.io/football/teams/%d.png"
)

// SeedLeagues returns the league registry in display order, all set to season.
func SeedLeagues(season int) []league.League {
	mk := func(id int, key, name, country, flag string, major bool) league.League {
		l := league.League{
			ID:      id,
			Key:     key,
			Name:    name,
			Country: country,
			Emblem:  fmt.Sprintf(mediaLeagueURL, id),
			Season:  season,
			Major:   major,
		}
		if flag != "" {
			l.Flag = fmt.Sprintf(mediaFlagURL, flag)
		}
		return l
	}

	ligaPortugal2 := mk(LeagueIDLigaPortugal2, "liga portugal 2", "Liga Portugal 2", "Portugal", "pt", false)
	ligaPortugal2.Zones = &league.StandingZones{ContinentalA: 2, ContinentalB: 3, Relegation: 2}
	mls := mk(LeagueIDMLS, "mls", "Major League Soccer", "USA", "us", false)
	mls.Zones = &league.StandingZones{ContinentalA: 1, ContinentalB: 9, Relegation: 0}

	return []league.League{
		mk(LeagueIDPrimeiraLiga, "primeira liga", "Liga Portugal", "Portugal", "pt", true),
		mk(LeagueIDPremierLeague, "premier league", "Premier League", "England", "gb-eng", true),
		mk(LeagueIDLaLiga, "la liga", "La Liga", "Spain", "es", true),
		mk(LeagueIDSerieA, "serie a", "Serie A", "Italy", "it", true),
		mk(LeagueIDBundesliga, "bundesliga", "Bundesliga", "Germany", "de", true),
		mk(LeagueIDLigue1, "ligue 1", "Ligue 1", "France", "fr", true),
		mk(LeagueIDEredivisie, "eredivisie", "Eredivisie", "Netherlands", "nl", true),
		mk(LeagueIDBrasileirao, "brasileirao", "Brasileirão Série A", "Brazil", "br", true),
		ligaPortugal2,
		mls,
		mk(LeagueIDChampions, "champions league", "UEFA Champions League", "World", "", false),
		mk(LeagueIDEuropaLeague, "europa league", "UEFA Europa League", "World", "", false),
	}
}

// SeedLeagueAliases is ordered: longer or more specific spellings come first.
func SeedLeagueAliases() []league.Alias {
	return []league.Alias{
		{Alias: "liga portugal 2", LeagueID: LeagueIDLigaPortugal2},
		{Alias: "segunda liga", LeagueID: LeagueIDLigaPortugal2},
		{Alias: "liga portugal", LeagueID: LeagueIDPrimeiraLiga},
		{Alias: "primeira liga", LeagueID: LeagueIDPrimeiraLiga},
		{Alias: "liga portuguesa", LeagueID: LeagueIDPrimeiraLiga},
		{Alias: "liga betclic", LeagueID: LeagueIDPrimeiraLiga},
		{Alias: "liga nos", LeagueID: LeagueIDPrimeiraLiga},
		{Alias: "premier league", LeagueID: LeagueIDPremierLeague},
		{Alias: "liga inglesa", LeagueID: LeagueIDPremierLeague},
		{Alias: "premier", LeagueID: LeagueIDPremierLeague},
		{Alias: "epl", LeagueID: LeagueIDPremierLeague},
		{Alias: "la liga", LeagueID: LeagueIDLaLiga},
		{Alias: "laliga", LeagueID: LeagueIDLaLiga},
		{Alias: "liga espanhola", LeagueID: LeagueIDLaLiga},
		{Alias: "brasileirao", LeagueID: LeagueIDBrasileirao},
		{Alias: "serie a brasil", LeagueID: LeagueIDBrasileirao},
		{Alias: "campeonato brasileiro", LeagueID: LeagueIDBrasileirao},
		{Alias: "liga brasileira", LeagueID: LeagueIDBrasileirao},
		{Alias: "serie a", LeagueID: LeagueIDSerieA},
		{Alias: "liga italiana", LeagueID: LeagueIDSerieA},
		{Alias: "calcio", LeagueID: LeagueIDSerieA},
		{Alias: "bundesliga", LeagueID: LeagueIDBundesliga},
		{Alias: "liga alema", LeagueID: LeagueIDBundesliga},
		{Alias: "ligue 1", LeagueID: LeagueIDLigue1},
		{Alias: "liga francesa", LeagueID: LeagueIDLigue1},
		{Alias: "eredivisie", LeagueID: LeagueIDEredivisie},
		{Alias: "liga holandesa", LeagueID: LeagueIDEredivisie},
		{Alias: "major league soccer", LeagueID: LeagueIDMLS},
		{Alias: "mls", LeagueID: LeagueIDMLS},
		{Alias: "champions league", LeagueID: LeagueIDChampions},
		{Alias: "liga dos campeoes", LeagueID: LeagueIDChampions},
		{Alias: "champions", LeagueID: LeagueIDChampions},
		{Alias: "ucl", LeagueID: LeagueIDChampions},
		{Alias: "europa league", LeagueID: LeagueIDEuropaLeague},
		{Alias: "liga europa", LeagueID: LeagueIDEuropaLeague},
	}
}

// SeedTeams returns the popular-teams registry in lookup order.
func SeedTeams() []team.Team {
	mk := func(id, leagueID int, name, country, venue string, aliases ...string) team.Team {
		return team.Team{
			ID:       id,
			Name:     name,
			Aliases:  aliases,
			LeagueID: leagueID,
			Country:  country,
			Venue:    venue,
			Logo:     fmt.Sprintf(mediaTeamLogoURL, id),
		}
	}

	return []team.Team{
		mk(211, LeagueIDPrimeiraLiga, "Benfica", "Portugal", "Estádio da Luz", "benfica", "slb", "sl benfica", "águias", "encarnados"),
		mk(212, LeagueIDPrimeiraLiga, "FC Porto", "Portugal", "Estádio do Dragão", "porto", "fc porto", "fcp", "dragões"),
		mk(228, LeagueIDPrimeiraLiga, "Sporting CP", "Portugal", "Estádio José Alvalade", "sporting", "sporting cp", "scp", "leões"),
		mk(227, LeagueIDPrimeiraLiga, "SC Braga", "Portugal", "Estádio Municipal de Braga", "braga", "sc braga", "minhotos", "arsenalistas"),
		mk(230, LeagueIDPrimeiraLiga, "Vitória SC", "Portugal", "Estádio D. Afonso Henriques", "vitória guimarães", "vitória sc", "vitória", "vsc", "guimarães"),
		mk(217, LeagueIDPrimeiraLiga, "Gil Vicente", "Portugal", "Estádio Cidade de Barcelos", "gil vicente", "gilistas"),
		mk(242, LeagueIDPrimeiraLiga, "Famalicão", "Portugal", "Estádio Municipal 22 de Junho", "famalicão", "fc famalicão"),
		mk(226, LeagueIDPrimeiraLiga, "Rio Ave", "Portugal", "Estádio dos Arcos", "rio ave"),
		mk(762, LeagueIDPrimeiraLiga, "Casa Pia", "Portugal", "Estádio Pina Manique", "casa pia", "gansos"),
		mk(4716, LeagueIDPrimeiraLiga, "Estoril", "Portugal", "Estádio António Coimbra da Mota", "estoril", "estoril praia", "canarinhos"),

		mk(33, LeagueIDPremierLeague, "Manchester United", "England", "Old Trafford", "manchester united", "man united", "man utd"),
		mk(50, LeagueIDPremierLeague, "Manchester City", "England", "Etihad Stadium", "manchester city", "man city"),
		mk(40, LeagueIDPremierLeague, "Liverpool", "England", "Anfield", "liverpool"),
		mk(42, LeagueIDPremierLeague, "Arsenal", "England", "Emirates Stadium", "arsenal", "gunners"),
		mk(49, LeagueIDPremierLeague, "Chelsea", "England", "Stamford Bridge", "chelsea"),
		mk(47, LeagueIDPremierLeague, "Tottenham", "England", "Tottenham Hotspur Stadium", "tottenham", "spurs", "tottenham hotspur"),
		mk(34, LeagueIDPremierLeague, "Newcastle", "England", "St. James' Park", "newcastle", "newcastle united", "magpies"),
		mk(66, LeagueIDPremierLeague, "Aston Villa", "England", "Villa Park", "aston villa", "villa"),
		mk(48, LeagueIDPremierLeague, "West Ham", "England", "London Stadium", "west ham", "hammers"),
		mk(39, LeagueIDPremierLeague, "Wolves", "England", "Molineux Stadium", "wolves", "wolverhampton"),

		mk(541, LeagueIDLaLiga, "Real Madrid", "Spain", "Santiago Bernabéu", "real madrid", "madrid", "merengues"),
		mk(529, LeagueIDLaLiga, "Barcelona", "Spain", "Estadi Olímpic Lluís Companys", "barcelona", "barça", "barca", "blaugrana"),
		mk(530, LeagueIDLaLiga, "Atletico Madrid", "Spain", "Metropolitano", "atletico madrid", "atlético de madrid", "atletico", "colchoneros"),
		mk(536, LeagueIDLaLiga, "Sevilla", "Spain", "Ramón Sánchez-Pizjuán", "sevilla"),
		mk(543, LeagueIDLaLiga, "Real Betis", "Spain", "Benito Villamarín", "real betis", "betis"),
		mk(548, LeagueIDLaLiga, "Real Sociedad", "Spain", "Reale Arena", "real sociedad", "sociedad"),
		mk(531, LeagueIDLaLiga, "Athletic Club", "Spain", "San Mamés", "athletic bilbao", "athletic club", "athletic"),
		mk(532, LeagueIDLaLiga, "Valencia", "Spain", "Mestalla", "valencia"),
		mk(533, LeagueIDLaLiga, "Villarreal", "Spain", "Estadio de la Cerámica", "villarreal", "submarino amarelo"),
		mk(547, LeagueIDLaLiga, "Girona", "Spain", "Montilivi", "girona"),

		mk(496, LeagueIDSerieA, "Juventus", "Italy", "Allianz Stadium", "juventus", "juve", "vecchia signora"),
		mk(505, LeagueIDSerieA, "Inter", "Italy", "San Siro", "inter milan", "internazionale", "inter"),
		mk(489, LeagueIDSerieA, "AC Milan", "Italy", "San Siro", "ac milan", "milan", "rossoneri"),
		mk(492, LeagueIDSerieA, "Napoli", "Italy", "Stadio Diego Armando Maradona", "napoli", "nápoles"),
		mk(497, LeagueIDSerieA, "AS Roma", "Italy", "Stadio Olimpico", "as roma", "roma"),
		mk(487, LeagueIDSerieA, "Lazio", "Italy", "Stadio Olimpico", "lazio"),
		mk(499, LeagueIDSerieA, "Atalanta", "Italy", "Gewiss Stadium", "atalanta"),
		mk(502, LeagueIDSerieA, "Fiorentina", "Italy", "Artemio Franchi", "fiorentina", "viola"),
		mk(500, LeagueIDSerieA, "Bologna", "Italy", "Renato Dall'Ara", "bologna"),
		mk(503, LeagueIDSerieA, "Torino", "Italy", "Stadio Olimpico Grande Torino", "torino"),

		mk(157, LeagueIDBundesliga, "Bayern München", "Germany", "Allianz Arena", "bayern munique", "bayern munich", "bayern münchen", "bayern"),
		mk(165, LeagueIDBundesliga, "Borussia Dortmund", "Germany", "Signal Iduna Park", "borussia dortmund", "dortmund", "bvb"),
		mk(168, LeagueIDBundesliga, "Bayer Leverkusen", "Germany", "BayArena", "bayer leverkusen", "leverkusen"),
		mk(173, LeagueIDBundesliga, "RB Leipzig", "Germany", "Red Bull Arena", "rb leipzig", "leipzig"),
		mk(169, LeagueIDBundesliga, "Eintracht Frankfurt", "Germany", "Deutsche Bank Park", "eintracht frankfurt", "frankfurt"),
		mk(172, LeagueIDBundesliga, "VfB Stuttgart", "Germany", "MHPArena", "vfb stuttgart", "stuttgart"),
		mk(161, LeagueIDBundesliga, "VfL Wolfsburg", "Germany", "Volkswagen Arena", "wolfsburg"),
		mk(163, LeagueIDBundesliga, "Borussia Mönchengladbach", "Germany", "Borussia-Park", "monchengladbach", "gladbach"),
		mk(160, LeagueIDBundesliga, "SC Freiburg", "Germany", "Europa-Park Stadion", "freiburg"),
		mk(182, LeagueIDBundesliga, "Union Berlin", "Germany", "Stadion An der Alten Försterei", "union berlin"),

		mk(85, LeagueIDLigue1, "Paris Saint Germain", "France", "Parc des Princes", "paris saint germain", "paris sg", "psg"),
		mk(81, LeagueIDLigue1, "Marseille", "France", "Stade Vélodrome", "olympique de marselha", "marseille", "marselha"),
		mk(80, LeagueIDLigue1, "Lyon", "France", "Groupama Stadium", "olympique lyonnais", "lyon"),
		mk(91, LeagueIDLigue1, "Monaco", "France", "Stade Louis II", "monaco", "mónaco"),
		mk(79, LeagueIDLigue1, "Lille", "France", "Decathlon Arena", "lille", "losc"),
		mk(84, LeagueIDLigue1, "Nice", "France", "Allianz Riviera", "ogc nice"),
		mk(116, LeagueIDLigue1, "Lens", "France", "Stade Bollaert-Delelis", "lens", "rc lens"),
		mk(94, LeagueIDLigue1, "Rennes", "France", "Roazhon Park", "rennes", "stade rennais"),
		mk(83, LeagueIDLigue1, "Nantes", "France", "Stade de la Beaujoire", "nantes"),
		mk(95, LeagueIDLigue1, "Strasbourg", "France", "Stade de la Meinau", "strasbourg", "estrasburgo"),

		mk(194, LeagueIDEredivisie, "Ajax", "Netherlands", "Johan Cruijff ArenA", "ajax"),
		mk(197, LeagueIDEredivisie, "PSV Eindhoven", "Netherlands", "Philips Stadion", "psv eindhoven", "psv"),
		mk(209, LeagueIDEredivisie, "Feyenoord", "Netherlands", "De Kuip", "feyenoord"),
		mk(201, LeagueIDEredivisie, "AZ Alkmaar", "Netherlands", "AFAS Stadion", "az alkmaar"),
		mk(415, LeagueIDEredivisie, "Twente", "Netherlands", "De Grolsch Veste", "twente", "fc twente"),
		mk(207, LeagueIDEredivisie, "Utrecht", "Netherlands", "Stadion Galgenwaard", "utrecht", "fc utrecht"),

		mk(127, LeagueIDBrasileirao, "Flamengo", "Brazil", "Maracanã", "flamengo", "mengão"),
		mk(121, LeagueIDBrasileirao, "Palmeiras", "Brazil", "Allianz Parque", "palmeiras", "verdão"),
		mk(131, LeagueIDBrasileirao, "Corinthians", "Brazil", "Neo Química Arena", "corinthians", "timão"),
		mk(126, LeagueIDBrasileirao, "Sao Paulo", "Brazil", "Morumbi", "são paulo", "sao paulo", "tricolor paulista"),
		mk(128, LeagueIDBrasileirao, "Santos", "Brazil", "Vila Belmiro", "santos", "peixe"),
		mk(124, LeagueIDBrasileirao, "Fluminense", "Brazil", "Maracanã", "fluminense"),
		mk(130, LeagueIDBrasileirao, "Gremio", "Brazil", "Arena do Grêmio", "grêmio", "gremio"),
		mk(119, LeagueIDBrasileirao, "Internacional", "Brazil", "Beira-Rio", "internacional", "colorado"),
		mk(1062, LeagueIDBrasileirao, "Atletico-MG", "Brazil", "Arena MRV", "atlético mineiro", "atletico mineiro", "galo"),
		mk(120, LeagueIDBrasileirao, "Botafogo", "Brazil", "Estádio Nilton Santos", "botafogo", "fogão"),

		mk(9568, LeagueIDMLS, "Inter Miami", "USA", "Chase Stadium", "inter miami", "miami"),
		mk(1605, LeagueIDMLS, "Los Angeles Galaxy", "USA", "Dignity Health Sports Park", "la galaxy", "los angeles galaxy", "galaxy"),
		mk(1616, LeagueIDMLS, "Los Angeles FC", "USA", "BMO Stadium", "los angeles fc", "lafc"),
	}
}
