package services

import (
	"github.com/Nemoeiei/calories-guard/models"
	"go.uber.org/zap"
)

type eventDeps struct {
	rt  *RealtimeHub
	log *zap.Logger
}

var _events eventDeps

// InitEventDeps wires the realtime hub once at startup. Emitters become
// no-ops when nothing is wired, so tests don't need a hub.
func InitEventDeps(rt *RealtimeHub, log *zap.Logger) {
	_events = eventDeps{rt: rt, log: log}
}

// EmitAchievement announces a freshly earned achievement. Safe to call anywhere.
func EmitAchievement(userID uint, a *models.Achievement) {
	if _events.log != nil {
		_events.log.Info("achievement earned",
			zap.Uint("user_id", userID),
			zap.String("achievement", a.Name),
		)
	}
	if _events.rt != nil {
		_events.rt.Broadcast(userID, map[string]any{
			"kind":        "achievement.earned",
			"achievement": a,
		})
	}
}

// EmitGoalMet announces that a day's calorie goal was met.
func EmitGoalMet(userID uint, summary *models.DailySummary) {
	if _events.rt != nil {
		_events.rt.Broadcast(userID, map[string]any{
			"kind":    "goal.met",
			"summary": summary,
		})
	}
}
