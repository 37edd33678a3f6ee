package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

const (
	genericErrorMessage = "😓 Ocorreu um erro inesperado ao responder. Tenta reformular a pergunta ou escreve **ajuda** para ver exemplos."
	emptyQuestionReply  = "🤔 Não recebi nenhuma pergunta. Escreve **ajuda** para ver exemplos."

	helpMessage = "🤖 **O que posso fazer**\n\n" +
		"📊 Classificações: \"classificação da premier league\"\n" +
		"📈 Estatísticas: \"como está o benfica\", \"estatísticas do porto\"\n" +
		"📅 Últimos jogos: \"últimos jogos do sporting\"\n" +
		"🗓️ Próximos jogos: \"próximos jogos do braga\"\n" +
		"⚔️ Confrontos: \"benfica vs porto\"\n" +
		"🔴 Ao vivo: \"jogos ao vivo\"\n" +
		"⚽ Marcadores: \"melhores marcadores da la liga\"\n" +
		"🏟️ Liga: \"informações sobre a liga bundesliga\"\n\n" +
		"⚙️ Comandos: **listar ligas**, **estatísticas do bot**, **estado da cache**, **limpar cache**"
)

// QuestionRecorder receives one observation per answered question.
type QuestionRecorder interface {
	ObserveQuestion(intent string, duration time.Duration)
}

type ChatInput struct {
	Question string
	LeagueID int
}

type ChatReply struct {
	Response     string
	Intent       Intent
	Command      Command
	RequestsUsed int
	Timestamp    time.Time
}

// ChatService is the chat entry point. Answer always returns a reply string.
type ChatService struct {
	classifier *IntentClassifier
	resolver   *EntityResolver
	composer   *ResponseComposer
	leagues    league.Repository
	cache      CacheManager
	monitor    DataSourceMonitor
	recorder   QuestionRecorder
	logger     *logging.Logger
	now        func() time.Time
}

func NewChatService(
	classifier *IntentClassifier,
	resolver *EntityResolver,
	composer *ResponseComposer,
	leagues league.Repository,
	cacheManager CacheManager,
	monitor DataSourceMonitor,
	recorder QuestionRecorder,
	logger *logging.Logger,
) *ChatService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatService{
		classifier: classifier,
		resolver:   resolver,
		composer:   composer,
		leagues:    leagues,
		cache:      cacheManager,
		monitor:    monitor,
		recorder:   recorder,
		logger:     logger,
		now:        time.Now,
	}
}

// RequestsUsed is the read-only metering accessor for the daily upstream budget.
func (s *ChatService) RequestsUsed() int {
	if s.monitor == nil {
		return 0
	}
	return s.monitor.Status().RequestsMade
}

func (s *ChatService) Answer(ctx context.Context, input ChatInput) (reply ChatReply) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatService.Answer")
	defer span.End()

	start := s.now()
	reply.Intent = IntentGeneral
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.ErrorContext(ctx, "chat answer panicked", "panic", fmt.Sprint(rec), "question", input.Question)
			reply.Response = genericErrorMessage
		}
		reply.RequestsUsed = s.RequestsUsed()
		reply.Timestamp = s.now()
		if s.recorder != nil {
			label := string(reply.Intent)
			if reply.Command != CommandNone {
				label = "command_" + string(reply.Command)
			}
			s.recorder.ObserveQuestion(label, s.now().Sub(start))
		}
	}()

	question := strings.TrimSpace(input.Question)
	if question == "" {
		reply.Response = emptyQuestionReply
		return reply
	}

	if cmd := s.classifier.Command(question); cmd != CommandNone {
		reply.Command = cmd
		reply.Response = s.runCommand(ctx, cmd)
		return reply
	}

	var (
		intent    Intent
		resolved  league.League
		hasLeague bool
		found     team.Team
		hasTeam   bool
	)
	teamScope := input.LeagueID
	var wg conc.WaitGroup
	wg.Go(func() {
		intent = s.classifier.Classify(question)
	})
	wg.Go(func() {
		resolved, hasLeague = s.resolver.ResolveLeague(question)
		scope := teamScope
		if hasLeague {
			scope = resolved.ID
		}
		found, hasTeam = s.resolver.ResolveTeam(ctx, question, scope)
	})
	if recovered := wg.WaitAndRecover(); recovered != nil {
		s.logger.ErrorContext(ctx, "chat analysis panicked", "error", recovered.AsError(), "question", question)
		reply.Response = genericErrorMessage
		return reply
	}

	reply.Intent = intent
	reply.Response = s.composer.Compose(ctx, intent, Entities{
		Question:   question,
		League:     resolved,
		HasLeague:  hasLeague,
		Team:       found,
		HasTeam:    hasTeam,
		LeagueHint: input.LeagueID,
	})

	s.logger.InfoContext(ctx, "chat question answered",
		"intent", intent,
		"league_id", resolved.ID,
		"team_id", found.ID,
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	return reply
}

func (s *ChatService) runCommand(ctx context.Context, cmd Command) string {
	switch cmd {
	case CommandHelp:
		return helpMessage
	case CommandListLeagues:
		if s.leagues == nil {
			return genericErrorMessage
		}
		leagues, err := s.leagues.List(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "list leagues for chat failed", "error", err)
			return genericErrorMessage
		}
		return ComposeLeagueList(leagues)
	case CommandCacheClear:
		if s.cache == nil {
			return "ℹ️ A cache não está ativa."
		}
		removed, err := s.cache.Clear(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "clear cache from chat failed", "error", err)
			return "😕 Não consegui limpar a cache por completo. Tenta novamente."
		}
		return fmt.Sprintf("🧹 Cache limpa: %d entradas removidas.", removed)
	case CommandCacheStats:
		if s.cache == nil {
			return "ℹ️ A cache não está ativa."
		}
		st := s.cache.Stats()
		return fmt.Sprintf("🗄️ **Cache**\nTotal: %d\nAtivas: %d\nExpiradas: %d", st.Total, st.Active, st.Expired)
	case CommandBotStats:
		return s.botStats()
	default:
		return helpMessage
	}
}

func (s *ChatService) botStats() string {
	return render(func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString("🤖 **Estatísticas do bot**\n\n")
		if s.monitor != nil {
			st := s.monitor.Status()
			fmt.Fprintf(buf, "📡 Pedidos à API hoje: %d/%d (restam %d)\n", st.RequestsMade, st.RequestLimit, st.Remaining)
			fmt.Fprintf(buf, "🩺 Estado da fonte de dados: %s\n", st.State)
			if !st.WindowResetsAt.IsZero() {
				fmt.Fprintf(buf, "🔄 Limite renovado em: %s UTC\n", st.WindowResetsAt.UTC().Format(dateTimeLayout))
			}
		}
		if s.cache != nil {
			cs := s.cache.Stats()
			fmt.Fprintf(buf, "🗄️ Cache: %d entradas (%d ativas, %d expiradas)\n", cs.Total, cs.Active, cs.Expired)
		}
	})
}
