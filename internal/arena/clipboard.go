package arena

import (
	"github.com/atotto/clipboard"

	"github.com/esmelusina/AgentFSMExample/internal/game"
)

const reportLines = 30

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// copyReport puts the selected agent's debug report on the clipboard.
func (a *Arena) copyReport() {
	ag := a.selectedAgent()
	if ag == nil {
		return
	}
	report := game.DebugReport(ag, a.world.ThoughtLog, a.world.CurrentTick(), reportLines)
	if err := a.copyText(report); err != nil {
		a.logger.Warn("copy debug report", "agent", ag.Label(), "err", err)
		return
	}
	a.logger.Info("debug report copied", "agent", ag.Label(), "bytes", len(report))
}
