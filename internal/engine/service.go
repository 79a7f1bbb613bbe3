package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gitbuddy/internal/gitrepo"
	"gitbuddy/internal/storage"
)

// Service owns the pet record, the event history and the repository
// observer, and exposes one method per user action. All mutation goes
// through it so the level invariant and day rollover hold everywhere.
type Service struct {
	store     *storage.Store
	history   *storage.HistoryRepo
	obs       gitrepo.Observer
	committer gitrepo.Committer
	seed      SeedMode

	petName string
}

func NewService(store *storage.Store, history *storage.HistoryRepo, obs gitrepo.Observer, committer gitrepo.Committer, seed SeedMode, petName string) *Service {
	if petName == "" {
		petName = "Byte"
	}
	return &Service{
		store:     store,
		history:   history,
		obs:       obs,
		committer: committer,
		seed:      seed,
		petName:   petName,
	}
}

func (s *Service) Store() *storage.Store         { return s.store }
func (s *Service) History() *storage.HistoryRepo { return s.history }
func (s *Service) Observer() gitrepo.Observer    { return s.obs }

// Pet loads the pet record, creating it on first run (or when the
// stored record was corrupt). Absence decay and day rollover are
// applied here so every action sees current state.
func (s *Service) Pet() (*storage.PetState, error) {
	p, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if p == nil {
		p = storage.NewPetState(s.petName, now)
		if err := s.store.Save(p); err != nil {
			return nil, err
		}
		return p, nil
	}

	ApplyDecay(p, now)
	p.RolloverDaily(now)
	p.Level = LevelForXP(p.XP)
	return p, nil
}

// save stamps the visit time and persists immediately.
func (s *Service) save(p *storage.PetState) error {
	p.LastVisit = time.Now()
	p.Level = LevelForXP(p.XP)
	return s.store.Save(p)
}

func (s *Service) logEvent(ctx context.Context, kind string, xp int, detail string) {
	if s.history == nil {
		return
	}
	// History is best-effort; a broken log must not fail the action.
	_, _ = s.history.Insert(ctx, kind, time.Now(), xp, detail)
}

// ActionResult is what every pet action reports back for rendering.
type ActionResult struct {
	Pet             *storage.PetState
	XPGained        int
	LeveledUp       bool
	NewAchievements []AchievementDef
	ChallengeDone   *ChallengeDef
}

// applyProgress runs the detect-then-apply cycle shared by all
// actions: unlock newly true achievements (granting their rewards),
// then advance the daily challenge and grant its reward once.
func (s *Service) applyProgress(p *storage.PetState, data gitrepo.RepoData, res *ActionResult) {
	now := time.Now()

	for _, def := range CheckAchievements(p, data, now) {
		p.Unlock(def.ID)
		if AddXP(p, def.XPReward) {
			res.LeveledUp = true
		}
		res.XPGained += def.XPReward
		res.NewAchievements = append(res.NewAchievements, def)
	}

	daily := DailyChallengeFor(p, now, s.seed)
	p.DailyChallenge = &daily
	if cr, ok := CheckChallengeProgress(p, data); ok {
		// Progress and completion only move forward. A regressing
		// tracker (a clean tree getting dirty again) must not
		// un-record a completion and re-arm the reward.
		if cr.Progress > p.DailyChallenge.Progress {
			p.DailyChallenge.Progress = cr.Progress
		}
		if cr.Completed {
			p.DailyChallenge.Completed = true
		}
		if cr.JustCompleted {
			if AddXP(p, cr.Def.XPReward) {
				res.LeveledUp = true
			}
			res.XPGained += cr.Def.XPReward
			def := cr.Def
			res.ChallengeDone = &def
		}
	}
}

// ScanResult is an ActionResult plus the health report that caused it.
type ScanResult struct {
	ActionResult
	Health  RepoHealth
	Decayed int
}

// Scan observes the repository, scores it, and folds the score into
// the pet: HP tracks the health score (never below the floor), the
// scan itself earns a little XP.
func (s *Service) Scan(ctx context.Context) (*ScanResult, error) {
	p, err := s.Pet()
	if err != nil {
		return nil, err
	}

	data := gitrepo.Collect(ctx, s.obs)
	health := ScoreRepo(data)

	res := &ScanResult{Health: health}
	res.Pet = p

	if health.IsRepo {
		p.HP = int(health.TotalScore)
		if p.HP < HPFloor {
			p.HP = HPFloor
		}
		if data.DirtyFiles == 0 {
			p.CleanTreeCount++
		}
		if data.StreakDays > p.LongestStreak {
			p.LongestStreak = data.StreakDays
		}
	}

	p.TotalScans++
	p.Daily.Scans++
	p.MarkSessionAction("scan")
	if AddXP(p, XPScan) {
		res.LeveledUp = true
	}
	res.XPGained += XPScan

	s.applyProgress(p, data, &res.ActionResult)
	if err := s.save(p); err != nil {
		return nil, err
	}
	s.logEvent(ctx, storage.EventScan, XPScan, fmt.Sprintf("score=%.0f", health.TotalScore))
	return res, nil
}

// Feed gives the pet a meal. The pet only eats staged changes; an
// empty index is an in-character refusal, not a failure.
func (s *Service) Feed(ctx context.Context) (*ActionResult, error) {
	if !s.obs.IsRepo(ctx) {
		return nil, ErrNotARepo
	}
	if s.obs.StagedDiffSummary(ctx).Empty() {
		return nil, ErrNothingStaged
	}

	p, err := s.Pet()
	if err != nil {
		return nil, err
	}

	res := &ActionResult{Pet: p}
	p.TotalFeeds++
	p.Daily.Feeds++
	p.MarkSessionAction("feed")
	RaiseHP(p, 10)
	if AddXP(p, XPFeed) {
		res.LeveledUp = true
	}
	res.XPGained += XPFeed

	s.applyProgress(p, gitrepo.Collect(ctx, s.obs), res)
	if err := s.save(p); err != nil {
		return nil, err
	}
	s.logEvent(ctx, storage.EventFeed, XPFeed, "")
	return res, nil
}

// Play is a free morale action: a little XP, a little HP, no
// repository requirements.
func (s *Service) Play(ctx context.Context) (*ActionResult, error) {
	p, err := s.Pet()
	if err != nil {
		return nil, err
	}

	res := &ActionResult{Pet: p}
	p.TotalPlays++
	p.MarkSessionAction("play")
	RaiseHP(p, 2)
	if AddXP(p, XPPlay) {
		res.LeveledUp = true
	}
	res.XPGained += XPPlay

	s.applyProgress(p, gitrepo.Collect(ctx, s.obs), res)
	if err := s.save(p); err != nil {
		return nil, err
	}
	s.logEvent(ctx, storage.EventPlay, XPPlay, "")
	return res, nil
}

// CommitResult is an ActionResult plus the generated commit message.
type CommitResult struct {
	ActionResult
	Message      string
	FilesChanged int
}

// SmartCommit commits the staged changes with a message generated from
// the diff summary.
func (s *Service) SmartCommit(ctx context.Context, extra string) (*CommitResult, error) {
	if !s.obs.IsRepo(ctx) {
		return nil, ErrNotARepo
	}
	diff := s.obs.StagedDiffSummary(ctx)
	if diff.Empty() {
		return nil, ErrNothingStaged
	}

	message := BuildCommitMessage(diff, extra)
	if s.committer != nil {
		if err := s.committer.Commit(ctx, message); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
	}

	p, err := s.Pet()
	if err != nil {
		return nil, err
	}

	res := &CommitResult{Message: message, FilesChanged: len(diff.Files)}
	res.Pet = p
	p.TotalSmartCommits++
	p.Daily.Commits++
	p.MarkSessionAction("commit")
	RaiseHP(p, 5)
	if AddXP(p, XPSmartCommit) {
		res.LeveledUp = true
	}
	res.XPGained += XPSmartCommit

	s.applyProgress(p, gitrepo.Collect(ctx, s.obs), &res.ActionResult)
	if err := s.save(p); err != nil {
		return nil, err
	}
	s.logEvent(ctx, storage.EventCommit, XPSmartCommit, message)
	return res, nil
}

// BuildCommitMessage derives a short conventional-style message from
// the staged diff. The user's extra text wins as the subject when
// present.
func BuildCommitMessage(diff gitrepo.DiffSummary, extra string) string {
	if strings.TrimSpace(extra) != "" {
		return strings.TrimSpace(extra)
	}

	verb := "update"
	if diff.TotalDeleted > diff.TotalAdded*2 {
		verb = "clean up"
	} else if diff.TotalAdded > 0 && diff.TotalDeleted == 0 {
		verb = "add"
	}

	if len(diff.Files) == 1 {
		return fmt.Sprintf("%s %s", verb, diff.Files[0].Path)
	}
	return fmt.Sprintf("%s %d files (+%d/-%d)", verb, len(diff.Files), diff.TotalAdded, diff.TotalDeleted)
}

// FinishFocus records a completed focus session of the given length.
func (s *Service) FinishFocus(ctx context.Context, minutes int) (*ActionResult, error) {
	if minutes < 1 {
		minutes = 1
	}

	p, err := s.Pet()
	if err != nil {
		return nil, err
	}

	res := &ActionResult{Pet: p}
	p.Focus.Count++
	p.Focus.TotalMinutes += minutes
	p.Daily.FocusMinutes += minutes
	today := time.Now().Format(storage.DayFormat)
	if p.Focus.Best == nil || minutes > p.Focus.Best.Minutes {
		p.Focus.Best = &storage.BestFocus{Minutes: minutes, Date: today}
	}
	p.MarkSessionAction("focus")

	xp := minutes * XPPerFocusMinute
	if AddXP(p, xp) {
		res.LeveledUp = true
	}
	res.XPGained += xp

	s.applyProgress(p, gitrepo.Collect(ctx, s.obs), res)
	if err := s.save(p); err != nil {
		return nil, err
	}
	s.logEvent(ctx, storage.EventFocus, xp, fmt.Sprintf("%dm", minutes))
	return res, nil
}

// Challenge returns today's challenge record with progress refreshed,
// persisting any rollover or reward exactly like the other actions.
func (s *Service) Challenge(ctx context.Context) (*ActionResult, *storage.DailyChallengeState, error) {
	p, err := s.Pet()
	if err != nil {
		return nil, nil, err
	}

	res := &ActionResult{Pet: p}
	s.applyProgress(p, gitrepo.Collect(ctx, s.obs), res)
	if err := s.save(p); err != nil {
		return nil, nil, err
	}
	return res, p.DailyChallenge, nil
}

// Reset deletes the pet record for a fresh start.
func (s *Service) Reset() (bool, error) {
	return s.store.Reset()
}
