// Package economy owns player sessions and runs every engine operation
// against them. Each operation loads the session under the player's lock,
// applies one all-or-nothing rule from the domain packages, commits the new
// snapshot and only then publishes events and schedules persistence.
package economy

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/activity"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/bank"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/combat"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/forge"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/league"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/narrative"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// ActivityStatus reports the in-flight activity against the clock
type ActivityStatus struct {
	Activity  *domain.ActivityState `json:"activity,omitempty"`
	Remaining time.Duration         `json:"remaining"`
	Complete  bool                  `json:"complete"`
}

// Completion is a finished activity together with its narration. Boss is
// flavor for boss encounters; the outcome was already rolled.
type Completion struct {
	activity.Result
	Boss      *domain.Enemy `json:"boss,omitempty"`
	Narrative string        `json:"narrative"`
}

// Service defines every player-facing engine operation
type Service interface {
	CreatePlayer(ctx context.Context, name, avatar string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	SpendStatPoint(ctx context.Context, playerID string, stat domain.StatType) (*domain.Player, error)
	Equip(ctx context.Context, playerID, itemID string, slot domain.Slot) (*domain.Player, error)
	Unequip(ctx context.Context, playerID string, slot domain.Slot) (*domain.Player, error)

	Shop() []ShopEntry
	Buy(ctx context.Context, playerID, key string, quantity int) (*domain.Player, Trade, error)
	Sell(ctx context.Context, playerID, itemID string) (*domain.Player, Trade, error)
	DeleteItem(ctx context.Context, playerID, itemID string) (*domain.Player, error)
	UseItem(ctx context.Context, playerID, itemID string) (*domain.Player, Use, error)
	Upgrade(ctx context.Context, playerID, itemID string, useLuck bool) (*domain.Player, forge.Outcome, error)

	Locations() []activity.Location
	StartActivity(ctx context.Context, playerID, location string) (*domain.Player, error)
	ActivityStatus(ctx context.Context, playerID string) (ActivityStatus, error)
	CompleteActivity(ctx context.Context, playerID string) (*domain.Player, Completion, error)
	AutoCompleteActivity(ctx context.Context, playerID string) error
	PendingActivities(ctx context.Context) ([]repository.PendingActivity, error)

	FightEnemy(ctx context.Context, playerID string) (*domain.Player, DuelOutcome, error)
	FindOpponents(ctx context.Context, playerID string) ([]domain.RankEntry, error)
	Rankings(ctx context.Context, n int) ([]domain.RankEntry, error)
	Challenge(ctx context.Context, playerID, opponentID string) (*domain.Player, DuelOutcome, error)
	Report(ctx context.Context, playerID, reportID string) (domain.CombatReport, error)

	Deposit(ctx context.Context, playerID string, amount int) (*domain.Player, bank.Receipt, error)
	ClaimDeposit(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error)
	CancelDeposit(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error)
	CollectIncome(ctx context.Context, playerID string) (*domain.Player, int, error)

	MarkMessageRead(ctx context.Context, playerID, messageID string) (*domain.Player, error)
	Shutdown(ctx context.Context) error
}

// Deps wires the service to its collaborators. Repo, Saver, Scheduler and
// Matchmaker are required; the rest fall back to defaults.
type Deps struct {
	Repo       repository.Player
	Saver      Saver
	Bus        event.Bus
	RankWriter repository.RankWriter
	Scheduler  *activity.Scheduler
	Matchmaker *league.Matchmaker
	Narrative  narrative.Service
	Resolver   *combat.Resolver

	SessionCacheSize int
	SessionTTL       time.Duration

	Rnd func() float64
	Now func() time.Time
}

type service struct {
	repo       repository.Player
	saver      Saver
	bus        event.Bus
	rankWriter repository.RankWriter
	scheduler  *activity.Scheduler
	matchmaker *league.Matchmaker
	narrative  narrative.Service
	resolver   *combat.Resolver
	sessions   *sessions
	rnd        func() float64
	now        func() time.Time

	rankMu     sync.Mutex
	rankLoaded bool
	lastRank   int
}

// NewService creates a new economy service
func NewService(d Deps) Service {
	if d.Rnd == nil {
		d.Rnd = rand.Float64
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Resolver == nil {
		d.Resolver = combat.NewResolver(d.Rnd)
	}
	if d.Narrative == nil {
		d.Narrative = narrative.NewService(nil, 0)
	}
	if d.Scheduler == nil {
		d.Scheduler = activity.NewScheduler(nil, nil, d.Rnd)
	}
	return &service{
		repo:       d.Repo,
		saver:      d.Saver,
		bus:        d.Bus,
		rankWriter: d.RankWriter,
		scheduler:  d.Scheduler,
		matchmaker: d.Matchmaker,
		narrative:  d.Narrative,
		resolver:   d.Resolver,
		sessions:   newSessions(d.Repo, d.Saver, d.SessionCacheSize, d.SessionTTL),
		rnd:        d.Rnd,
		now:        d.Now,
	}
}

// mutate runs fn against the live snapshot under the player's lock and commits
// its result. fn must not modify its argument. A failing fn leaves the session
// untouched.
func (s *service) mutate(ctx context.Context, playerID string, fn func(p *domain.Player) (*domain.Player, error)) (*domain.Player, error) {
	unlock := s.sessions.lock(playerID)
	defer unlock()

	cur, err := s.sessions.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	next, err := fn(cur)
	if err != nil {
		return nil, err
	}
	s.commit(ctx, next)
	return next.Clone(), nil
}

// commit installs next as the live snapshot and hands it to persistence.
// The caller must hold the player's lock.
func (s *service) commit(ctx context.Context, next *domain.Player) {
	next.UpdatedAt = s.now()
	s.sessions.put(next)
	s.saver.Schedule(next)

	if s.rankWriter != nil {
		if err := s.rankWriter.UpsertEntry(ctx, next.RankEntry()); err != nil {
			logger.FromContext(ctx).Warn(LogMsgRankWriteFailed, "player_id", next.ID, "error", err)
		}
	}
}

func (s *service) publish(ctx context.Context, eventType, playerID string, payload any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewPlayerEvent(eventType, playerID, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", eventType, "player_id", playerID, "error", err)
	}
}

func (s *service) publishLevelUp(ctx context.Context, p *domain.Player, levels int) {
	if levels <= 0 {
		return
	}
	s.publish(ctx, domain.EventTypePlayerLeveledUp, p.ID, domain.LevelUpPayload{
		PlayerID: p.ID,
		OldLevel: p.Level - levels,
		NewLevel: p.Level,
	})
}

// ==================== Character ====================

func (s *service) CreatePlayer(ctx context.Context, name, avatar string) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	rank, err := s.nextRank(ctx)
	if err != nil {
		return nil, err
	}

	p := character.NewPlayer(uuid.NewString(), name, s.now())
	p.Avatar = avatar
	p.Rank = rank

	unlock := s.sessions.lock(p.ID)
	s.commit(ctx, p)
	unlock()

	logger.FromContext(ctx).Info(LogMsgPlayerCreated, "player_id", p.ID, "name", p.Name)
	s.publish(ctx, domain.EventTypePlayerCreated, p.ID, domain.GoldPayload{PlayerID: p.ID, Gold: p.Gold})
	return p.Clone(), nil
}

// nextRank places a new player at the bottom of the ladder. Snapshots are
// written lazily, so positions handed out but not yet saved are tracked here.
func (s *service) nextRank(ctx context.Context) (int, error) {
	s.rankMu.Lock()
	defer s.rankMu.Unlock()

	if !s.rankLoaded {
		maxRank, err := s.repo.MaxRank(ctx)
		if err != nil {
			return 0, fmt.Errorf(ErrMsgMaxRankFmt, err)
		}
		s.lastRank = maxRank
		s.rankLoaded = true
	}
	s.lastRank++
	return s.lastRank, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	unlock := s.sessions.lock(playerID)
	defer unlock()

	p, err := s.sessions.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

func (s *service) SpendStatPoint(ctx context.Context, playerID string, stat domain.StatType) (*domain.Player, error) {
	return s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		return character.SpendStatPoint(p, stat)
	})
}

func (s *service) Equip(ctx context.Context, playerID, itemID string, slot domain.Slot) (*domain.Player, error) {
	return s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		return character.Equip(p, itemID, slot)
	})
}

func (s *service) Unequip(ctx context.Context, playerID string, slot domain.Slot) (*domain.Player, error) {
	return s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		return character.Unequip(p, slot)
	})
}

// ==================== Market ====================

func (s *service) Shop() []ShopEntry {
	return append([]ShopEntry(nil), Shop...)
}

func (s *service) Buy(ctx context.Context, playerID, key string, quantity int) (*domain.Player, Trade, error) {
	var trade Trade
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, trade, err = Buy(p, key, quantity)
		return next, err
	})
	if err != nil {
		return nil, Trade{}, err
	}

	logger.FromContext(ctx).Info(LogMsgItemPurchased, "player_id", playerID, "item", key, "quantity", quantity, "cost", trade.Gold)
	s.publish(ctx, domain.EventTypeItemBought, playerID, domain.ItemTradePayload{
		PlayerID: playerID, ItemKey: trade.Key, ItemName: trade.Name, Gold: trade.Gold,
	})
	return p, trade, nil
}

func (s *service) Sell(ctx context.Context, playerID, itemID string) (*domain.Player, Trade, error) {
	var trade Trade
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, trade, err = Sell(p, itemID)
		return next, err
	})
	if err != nil {
		return nil, Trade{}, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSold, "player_id", playerID, "item", trade.Name, "gold", trade.Gold)
	s.publish(ctx, domain.EventTypeItemSold, playerID, domain.ItemTradePayload{
		PlayerID: playerID, ItemKey: trade.Key, ItemName: trade.Name, Gold: trade.Gold,
	})
	return p, trade, nil
}

func (s *service) DeleteItem(ctx context.Context, playerID, itemID string) (*domain.Player, error) {
	var item domain.Item
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, item, err = Discard(p, itemID)
		return next, err
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgItemDeleted, "player_id", playerID, "item", item.Name)
	return p, nil
}

func (s *service) UseItem(ctx context.Context, playerID, itemID string) (*domain.Player, Use, error) {
	var use Use
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, use, err = Consume(p, itemID)
		return next, err
	})
	if err != nil {
		return nil, Use{}, err
	}

	logger.FromContext(ctx).Info(LogMsgItemUsed, "player_id", playerID, "item", use.ItemKey)
	s.publish(ctx, domain.EventTypeItemUsed, playerID, domain.ItemUsedPayload{PlayerID: playerID, ItemKey: use.ItemKey})
	return p, use, nil
}

func (s *service) Upgrade(ctx context.Context, playerID, itemID string, useLuck bool) (*domain.Player, forge.Outcome, error) {
	var out forge.Outcome
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, out, err = forge.Attempt(p, itemID, useLuck, s.rnd)
		return next, err
	})
	if err != nil {
		return nil, forge.Outcome{}, err
	}

	logger.FromContext(ctx).Info(LogMsgUpgradeAttempted,
		"player_id", playerID, "item_id", itemID, "success", out.Success, "cost", out.Cost, "luck", out.UsedLuckCharge)
	s.publish(ctx, domain.EventTypeItemUpgraded, playerID, domain.UpgradePayload{
		PlayerID:       playerID,
		ItemID:         itemID,
		Rarity:         out.Before.Rarity,
		Success:        out.Success,
		Cost:           out.Cost,
		NewLevel:       out.After.UpgradeLevel,
		UsedLuckCharge: out.UsedLuckCharge,
	})
	return p, out, nil
}

// ==================== Activities ====================

func (s *service) Locations() []activity.Location {
	return s.scheduler.Catalog().All()
}

func (s *service) StartActivity(ctx context.Context, playerID, location string) (*domain.Player, error) {
	now := s.now()
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		return s.scheduler.Start(p, location, now)
	})
	if err != nil {
		return nil, err
	}

	act := p.Activity
	logger.FromContext(ctx).Info(LogMsgActivityStarted, "player_id", playerID, "location", act.LocationName, "end_time", act.EndTime)
	s.publish(ctx, domain.EventTypeActivityStarted, playerID, domain.ActivityStartedPayload{
		PlayerID:     playerID,
		LocationName: act.LocationName,
		IsBoss:       act.IsBoss,
		EndTime:      act.EndTime,
	})
	return p, nil
}

func (s *service) ActivityStatus(ctx context.Context, playerID string) (ActivityStatus, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return ActivityStatus{}, err
	}
	now := s.now()
	return ActivityStatus{
		Activity:  p.Activity,
		Remaining: activity.Remaining(p.Activity, now),
		Complete:  activity.IsComplete(p.Activity, now),
	}, nil
}

// CompleteActivity applies the rewards first. Narration runs outside the
// player's lock and is filed as an inbox message in a second commit, so a
// slow narrative service never delays or blocks the rewards.
func (s *service) CompleteActivity(ctx context.Context, playerID string) (*domain.Player, Completion, error) {
	now := s.now()
	var res activity.Result
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, res, err = s.scheduler.Complete(p, now)
		return next, err
	})
	if err != nil {
		return nil, Completion{}, err
	}

	logger.FromContext(ctx).Info(LogMsgActivityCompleted,
		"player_id", playerID, "location", res.Location, "won", res.Won, "xp", res.XP, "gold", res.Gold)

	itemName := ""
	if res.Item != nil {
		itemName = res.Item.Name
	}
	s.publish(ctx, domain.EventTypeActivityCompleted, playerID, domain.ActivityCompletedPayload{
		PlayerID:     playerID,
		LocationName: res.Location,
		IsBoss:       res.IsBoss,
		Won:          res.Won,
		XP:           res.XP,
		Gold:         res.Gold,
		ItemName:     itemName,
	})
	s.publishLevelUp(ctx, p, res.LevelsUp)

	var boss *domain.Enemy
	if res.IsBoss {
		e := s.narrative.DescribeEnemy(ctx, s.resolver.GenerateEnemy(res.Level, true))
		boss = &e
	}
	text := s.narrative.Narrate(ctx, res.Location, outcomeOf(res), narrative.RewardSummary{
		XP: res.XP, Gold: res.Gold, ItemName: itemName,
	})
	if boss != nil {
		text = boss.Description + " " + text
	}
	subject := SubjectExpedition
	if res.IsBoss {
		subject = SubjectBoss
	}
	msg := domain.Message{ID: uuid.NewString(), Subject: subject, Body: text, SentAt: now}

	withMsg, err := s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		next := p.Clone()
		next.Messages = appendCapped(next.Messages, msg, MaxMessages)
		return next, nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgMessageAppendFail, "player_id", playerID, "error", err)
		withMsg = p
	}
	return withMsg, Completion{Result: res, Boss: boss, Narrative: text}, nil
}

func outcomeOf(res activity.Result) string {
	switch {
	case !res.Won:
		return narrative.OutcomeDefeat
	case res.IsBoss:
		return narrative.OutcomeVictory
	default:
		return narrative.OutcomeComplete
	}
}

// AutoCompleteActivity is the deadline-timer entry point. A player who already
// collected the activity by hand is not an error.
func (s *service) AutoCompleteActivity(ctx context.Context, playerID string) error {
	_, _, err := s.CompleteActivity(ctx, playerID)
	if errors.Is(err, domain.ErrNoActivity) {
		return nil
	}
	return err
}

func (s *service) PendingActivities(ctx context.Context) ([]repository.PendingActivity, error) {
	return s.repo.ListPendingActivities(ctx)
}

// ==================== Combat ====================

func (s *service) FightEnemy(ctx context.Context, playerID string) (*domain.Player, DuelOutcome, error) {
	cur, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, DuelOutcome{}, err
	}
	if cur.IsBusy() {
		return nil, DuelOutcome{}, fmt.Errorf("arena: %w", domain.ErrPlayerBusy)
	}
	enemy := s.narrative.DescribeEnemy(ctx, s.resolver.GenerateEnemy(cur.Level, false))

	now := s.now()
	var out DuelOutcome
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, out, err = FightArena(p, enemy, s.resolver, s.rnd, now)
		return next, err
	})
	if err != nil {
		return nil, DuelOutcome{}, err
	}

	logger.FromContext(ctx).Info(LogMsgArenaFight,
		"player_id", playerID, "enemy", enemy.Name, "won", out.Report.Won, "turns", len(out.Report.Rounds))
	s.publishDuel(ctx, p, out)
	return p, out, nil
}

func (s *service) FindOpponents(ctx context.Context, playerID string) ([]domain.RankEntry, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.matchmaker.Opponents(ctx, p)
}

func (s *service) Rankings(ctx context.Context, n int) ([]domain.RankEntry, error) {
	if n <= 0 {
		n = DefaultRankingsLength
	}
	return s.matchmaker.Rankings(ctx, n)
}

// Challenge holds both players' locks for the whole duel so the rank swap and
// gold transfer land on both sides or neither. The ladder may trail live
// sessions, so eligibility is checked again against the loaded opponent.
func (s *service) Challenge(ctx context.Context, playerID, opponentID string) (*domain.Player, DuelOutcome, error) {
	unlock := s.sessions.lockPair(playerID, opponentID)
	defer unlock()

	cur, err := s.sessions.load(ctx, playerID)
	if err != nil {
		return nil, DuelOutcome{}, err
	}
	if cur.IsBusy() {
		return nil, DuelOutcome{}, fmt.Errorf("challenge: %w", domain.ErrPlayerBusy)
	}
	if _, err := s.matchmaker.IsEligible(ctx, cur, opponentID); err != nil {
		return nil, DuelOutcome{}, err
	}
	opponent, err := s.sessions.load(ctx, opponentID)
	if err != nil {
		return nil, DuelOutcome{}, err
	}
	if !league.Eligible(opponent.RankEntry(), league.BuildQuery(cur, 0)) {
		return nil, DuelOutcome{}, fmt.Errorf(ErrMsgStaleOpponentFmt, opponentID, opponent.Rank, domain.ErrOpponentNotEligible)
	}

	next, out, err := Challenge(cur, opponent, s.resolver, s.now())
	if err != nil {
		return nil, DuelOutcome{}, err
	}
	s.commit(ctx, next)

	logger.FromContext(ctx).Info(LogMsgChallengeResolved,
		"player_id", playerID, "opponent_id", opponentID, "won", out.Report.Won, "new_rank", out.NewRank, "stolen", out.GoldStolen)

	if out.Report.Won || out.GoldStolen > 0 {
		o := opponent.Clone()
		if out.Report.Won {
			o.Rank = out.OldRank
		} else {
			o.Gold += out.GoldStolen
		}
		s.commit(ctx, o)
	}

	p := next.Clone()
	s.publishDuel(ctx, p, out)
	return p, out, nil
}

func (s *service) publishDuel(ctx context.Context, p *domain.Player, out DuelOutcome) {
	s.publish(ctx, domain.EventTypeCombatFinished, p.ID, domain.CombatFinishedPayload{
		PlayerID: p.ID,
		Kind:     out.Report.Kind,
		Opponent: out.Report.Opponent,
		Won:      out.Report.Won,
		Turns:    len(out.Report.Rounds),
		Gold:     out.Report.GoldDelta,
	})
	s.publishLevelUp(ctx, p, out.LevelsUp)
}

func (s *service) Report(ctx context.Context, playerID, reportID string) (domain.CombatReport, error) {
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return domain.CombatReport{}, err
	}
	for _, r := range p.Reports {
		if r.ID == reportID {
			return r, nil
		}
	}
	return domain.CombatReport{}, fmt.Errorf("report %s: %w", reportID, domain.ErrReportNotFound)
}

// ==================== Bank ====================

func (s *service) Deposit(ctx context.Context, playerID string, amount int) (*domain.Player, bank.Receipt, error) {
	now := s.now()
	return s.vaultOp(ctx, playerID, domain.EventTypeBankDeposited, LogMsgDepositCreated,
		func(p *domain.Player) (*domain.Player, bank.Receipt, error) { return bank.Deposit(p, amount, now) })
}

func (s *service) ClaimDeposit(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error) {
	now := s.now()
	return s.vaultOp(ctx, playerID, domain.EventTypeBankClaimed, LogMsgDepositClaimed,
		func(p *domain.Player) (*domain.Player, bank.Receipt, error) { return bank.Claim(p, depositID, now) })
}

func (s *service) CancelDeposit(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error) {
	now := s.now()
	return s.vaultOp(ctx, playerID, domain.EventTypeBankCancelled, LogMsgDepositCancelled,
		func(p *domain.Player) (*domain.Player, bank.Receipt, error) { return bank.Cancel(p, depositID, now) })
}

func (s *service) vaultOp(ctx context.Context, playerID, eventType, logMsg string,
	op func(p *domain.Player) (*domain.Player, bank.Receipt, error),
) (*domain.Player, bank.Receipt, error) {
	var rcpt bank.Receipt
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (next *domain.Player, err error) {
		next, rcpt, err = op(p)
		return next, err
	})
	if err != nil {
		return nil, bank.Receipt{}, err
	}

	amount := rcpt.Deposit.Amount
	if rcpt.Credited > 0 {
		amount = rcpt.Credited
	}
	logger.FromContext(ctx).Info(logMsg, "player_id", playerID, "deposit_id", rcpt.Deposit.ID, "amount", amount)
	s.publish(ctx, eventType, playerID, domain.BankPayload{
		PlayerID:  playerID,
		DepositID: rcpt.Deposit.ID,
		Amount:    amount,
		Fee:       rcpt.Commission,
	})
	return p, rcpt, nil
}

// CollectIncome credits the whole gold accrued since the last collection.
// The unpaid fraction of an hour stays on the clock for the next one.
func (s *service) CollectIncome(ctx context.Context, playerID string) (*domain.Player, int, error) {
	now := s.now()
	gained := 0
	var unchanged *domain.Player
	p, err := s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		var mark time.Time
		gained, mark = league.Accrue(p.Level, p.LastIncomeAt, now)
		if gained == 0 {
			unchanged = p.Clone()
			return nil, errNothingAccrued
		}
		next := p.Clone()
		next.Gold += gained
		next.LastIncomeAt = mark
		return next, nil
	})
	if errors.Is(err, errNothingAccrued) {
		return unchanged, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	logger.FromContext(ctx).Info(LogMsgIncomeCollected, "player_id", playerID, "gold", gained)
	s.publish(ctx, domain.EventTypeIncomeCollected, playerID, domain.GoldPayload{PlayerID: playerID, Gold: gained})
	return p, gained, nil
}

var errNothingAccrued = errors.New("no income accrued")

// ==================== Inbox ====================

func (s *service) MarkMessageRead(ctx context.Context, playerID, messageID string) (*domain.Player, error) {
	return s.mutate(ctx, playerID, func(p *domain.Player) (*domain.Player, error) {
		for i := range p.Messages {
			if p.Messages[i].ID == messageID {
				next := p.Clone()
				next.Messages[i].Read = true
				return next, nil
			}
		}
		return nil, fmt.Errorf("message %s: %w", messageID, domain.ErrMessageNotFound)
	})
}

// ==================== Lifecycle ====================

func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown, "sessions", s.sessions.len())

	if err := s.saver.Flush(ctx); err != nil {
		return fmt.Errorf(ErrMsgShutdownFmt, err)
	}
	log.Info(LogMsgShutdownDone)
	return nil
}
