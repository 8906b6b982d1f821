package engine

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"FinSentinel/internal/analyzer"
	"FinSentinel/internal/forecast"
	"FinSentinel/internal/health"
	"FinSentinel/internal/inbox"
	"FinSentinel/internal/insight"
	"FinSentinel/internal/model"
	"FinSentinel/internal/notifier"
	"FinSentinel/internal/recorder"
	"FinSentinel/internal/series"
	"FinSentinel/internal/store"
)

// historyLookbackDays is how far back transactions feed the per-category
// spending patterns.
const historyLookbackDays = 90

// Result is the immutable snapshot one analysis run publishes. A fresh run
// supersedes the previous result wholesale; nothing is merged.
type Result struct {
	Correlation *model.CorrelationResult
	Forecasts   map[string]*model.BudgetForecast
	Health      model.FinancialHealthScore
	Insights    []model.Insight
	Suggestions []model.Insight
	GeneratedAt time.Time
}

// Options configures an Engine.
type Options struct {
	WindowDays           int
	CadenceGate          time.Duration
	CooldownWindow       time.Duration
	PeriodStartDay       int
	NotificationsEnabled bool
	Now                  func() time.Time // test hook; defaults to time.Now
}

// Engine runs the full analysis pipeline: assemble, detect, trend, forecast,
// score, generate, rank. One invocation runs to completion before its result
// is published; concurrent invocations serialize.
type Engine struct {
	store    store.Store
	recorder recorder.Recorder
	notifier notifier.Notifier
	inbox    *inbox.Manager
	cooldown *insight.Cooldown
	opts     Options

	runMu sync.Mutex

	mu      sync.RWMutex
	lastRun time.Time
	latest  *Result
}

// New creates an Engine.
func New(st store.Store, rec recorder.Recorder, nt notifier.Notifier, ib *inbox.Manager, opts Options) *Engine {
	if opts.WindowDays <= 0 {
		opts.WindowDays = series.DefaultWindowDays
	}
	if opts.CadenceGate <= 0 {
		opts.CadenceGate = 30 * time.Minute
	}
	if opts.PeriodStartDay <= 0 {
		opts.PeriodStartDay = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		store:    st,
		recorder: rec,
		notifier: nt,
		inbox:    ib,
		cooldown: insight.NewCooldown(opts.CooldownWindow),
		opts:     opts,
	}
}

// Latest returns the most recently published result, or nil before the first
// run.
func (e *Engine) Latest() *Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}

// AnalyzeIfDue runs the pipeline unless a run completed within the cadence
// gate. Returns the latest result either way.
func (e *Engine) AnalyzeIfDue(ctx context.Context) (*Result, error) {
	e.mu.RLock()
	due := e.lastRun.IsZero() || e.opts.Now().Sub(e.lastRun) >= e.opts.CadenceGate
	latest := e.latest
	e.mu.RUnlock()

	if !due {
		return latest, nil
	}
	return e.analyze(ctx, false)
}

// ForceAnalyze bypasses the cadence gate. Used when the active accounting
// period changes, since period boundaries invalidate prior aggregates.
func (e *Engine) ForceAnalyze(ctx context.Context) (*Result, error) {
	return e.analyze(ctx, true)
}

// Analyze runs the full pipeline immediately.
func (e *Engine) Analyze(ctx context.Context) (*Result, error) {
	return e.analyze(ctx, false)
}

func (e *Engine) analyze(ctx context.Context, forced bool) (*Result, error) {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	now := e.opts.Now()
	res, runRec := e.runPipeline(ctx, now, forced)
	if res == nil {
		// Cancelled between stages: the run's output is discarded, not retried.
		return nil, ctx.Err()
	}

	e.mu.Lock()
	e.lastRun = now
	e.latest = res
	e.mu.Unlock()

	if e.inbox != nil {
		e.inbox.Add(res.Insights...)
	}
	if err := e.recorder.RecordRun(runRec); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	e.deliver(ctx, res.Insights, now)
	if forced {
		e.deliverDigest(ctx, res)
	}

	return res, nil
}

// runPipeline executes the pure stages. A store failure degrades the whole
// run to the single fallback insight rather than partial output.
func (e *Engine) runPipeline(ctx context.Context, now time.Time, forced bool) (*Result, *recorder.RunRecord) {
	degraded := func() (*Result, *recorder.RunRecord) {
		insights := insight.Generate(insight.Inputs{}, now)
		res := &Result{
			Insights:    insights,
			Suggestions: insight.TopSuggestions(insights),
			GeneratedAt: now,
		}
		return res, &recorder.RunRecord{InsightCount: len(insights), SuggestionCount: len(res.Suggestions), Forced: forced}
	}

	windowStart := now.AddDate(0, 0, -(e.opts.WindowDays - 1))
	historyStart := now.AddDate(0, 0, -historyLookbackDays)

	tasks, err := e.store.ListTasks(windowStart, now.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("[ERROR] list tasks: %v, degrading to fallback insight", err)
		return degraded()
	}
	txs, err := e.store.ListTransactions(historyStart, now)
	if err != nil {
		log.Printf("[ERROR] list transactions: %v, degrading to fallback insight", err)
		return degraded()
	}
	totals, err := e.store.PeriodTotals(e.periodStart(now), now)
	if err != nil {
		log.Printf("[ERROR] period totals: %v, degrading to fallback insight", err)
		return degraded()
	}
	budgets, err := e.store.ListBudgets()
	if err != nil {
		log.Printf("[ERROR] list budgets: %v, degrading to fallback insight", err)
		return degraded()
	}
	if ctx.Err() != nil {
		return nil, nil
	}

	points := series.NewAssembler(e.opts.WindowDays).Assemble(tasks, txs, now)
	corr := analyzer.Analyze(points, now)
	if ctx.Err() != nil {
		return nil, nil
	}

	forecasts := forecast.ForecastAll(txs, now)
	if ctx.Err() != nil {
		return nil, nil
	}

	score := health.Score(health.Inputs{
		Totals: totals,
		Series: points,
		Txs:    txs,
		Trend:  corr.Trend,
	}, now)

	insights := insight.Generate(insight.Inputs{
		Correlation:  corr,
		Forecasts:    forecasts,
		Budgets:      budgets,
		Health:       &score,
		Totals:       totals,
		OverdueTasks: countOverdue(tasks, now),
	}, now)

	res := &Result{
		Correlation: corr,
		Forecasts:   forecasts,
		Health:      score,
		Insights:    insights,
		Suggestions: insight.TopSuggestions(insights),
		GeneratedAt: now,
	}

	return res, &recorder.RunRecord{
		Correlation:       corr.Coefficient,
		OverallConfidence: corr.OverallConfidence,
		HealthOverall:     score.Overall,
		HealthGrade:       score.Grade,
		InsightCount:      len(insights),
		SuggestionCount:   len(res.Suggestions),
		ForecastCount:     len(forecasts),
		Forced:            forced,
	}
}

// deliver forwards un-suppressed insights to the notification channel. The
// insights stay in the inbox regardless of delivery outcome.
func (e *Engine) deliver(ctx context.Context, insights []model.Insight, now time.Time) {
	if !e.opts.NotificationsEnabled {
		return
	}
	for _, ins := range insight.Rank(insights) {
		if !e.cooldown.Allow(ins, now) {
			continue
		}
		delivered := true
		if err := e.notifier.Send(ctx, notifier.FromInsight(ins)); err != nil {
			log.Printf("[ERROR] send notification: %v", err)
			delivered = false
		}
		if err := e.recorder.RecordDelivery(&recorder.DeliveryRecord{
			InsightType: string(ins.Type),
			CategoryID:  ins.RelatedCategoryID,
			Priority:    string(ins.Priority),
			Confidence:  ins.ConfidenceScore,
			Delivered:   delivered,
		}); err != nil {
			log.Printf("[ERROR] record delivery: %v", err)
		}
	}
}

// deliverDigest sends the period-rollover summary: health plus per-category
// forecasts. Digests are not subject to the per-insight cooldown.
func (e *Engine) deliverDigest(ctx context.Context, res *Result) {
	if !e.opts.NotificationsEnabled {
		return
	}
	body := notifier.FormatHealthSummary(res.Health)
	if len(res.Forecasts) > 0 {
		lines := make([]string, 0, len(res.Forecasts))
		for _, fc := range res.Forecasts {
			lines = append(lines, notifier.FormatForecast(fc))
		}
		sort.Strings(lines)
		body += "\n\n" + strings.Join(lines, "\n")
	}
	if len(res.Suggestions) > 0 {
		body += "\n\n" + notifier.FormatSuggestions(res.Suggestions)
	}
	n := &notifier.Notification{
		Title:    "New period summary",
		Body:     body,
		Priority: model.PriorityLow,
	}
	if err := e.notifier.Send(ctx, n); err != nil {
		log.Printf("[ERROR] send period digest: %v", err)
	}
}

// periodStart returns the beginning of the active accounting period.
func (e *Engine) periodStart(now time.Time) time.Time {
	start := time.Date(now.Year(), now.Month(), e.opts.PeriodStartDay, 0, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, -1, 0)
	}
	return start
}

func countOverdue(tasks []model.Task, now time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.DueDate != nil && t.DueDate.Before(now) && !t.IsCompleted {
			n++
		}
	}
	return n
}
